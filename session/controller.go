package session

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifestep/model"
	"github.com/sheikhrachel/lifestep/utils"
)

const (
	keyQuit      = 'q'
	keySave      = 'w'
	keyMultiStep = 'n'
	keyInterrupt = '\x03' // Ctrl-C in raw mode
	keyEOT       = '\x04' // Ctrl-D in raw mode
)

const menu = "Press q to quit, w to save to disk,\n" +
	"n to iterate multple times, or any other\n" +
	"key to continue to the next generation.\n" +
	"---------------------------------------\n"

// Input supplies keystrokes and typed lines
type Input interface {
	ReadKey() (rune, error)
	ReadLine() (string, error)
}

// Store loads and persists boards by name
type Store interface {
	Load(name string) (*model.Board, error)
	Save(name string, b *model.Board) error
}

// Renderer displays a board
type Renderer interface {
	Display(b *model.Board) error
}

// Controller drives the interactive load, render, command loop over one board
type Controller struct {
	input    Input
	store    Store
	renderer Renderer
	out      io.Writer
	logger   log.Logger
	config   utils.Config
	stats    *utils.Stats
}

// NewController wires a controller; prompts and messages are written to out
func NewController(
	input Input,
	store Store,
	renderer Renderer,
	out io.Writer,
	logger log.Logger,
	config utils.Config,
) *Controller {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Controller{
		input:    input,
		store:    store,
		renderer: renderer,
		out:      out,
		logger:   logger,
		config:   config,
		stats:    utils.NewStats(),
	}
}

// Stats returns the statistics of the current session
func (c *Controller) Stats() *utils.Stats {
	return c.stats
}

// Run prompts for a board file, loads it and processes commands until quit, end of input,
// or ctx is done. Load failures are returned; save failures are reported and the loop goes on.
func (c *Controller) Run(ctx context.Context) error {
	board, err := c.load()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Beginning with grid size %d, %d.\n", board.Height(), board.Width())

	if err = c.show(board, 0); err != nil {
		return err
	}

	generation := 0
	for {
		if ctx.Err() != nil {
			c.quit(board)
			return nil
		}

		fmt.Fprint(c.out, menu)
		key, err := c.input.ReadKey()
		if errors.Is(err, io.EOF) {
			c.quit(board)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "[Run] failed to read command")
		}

		switch key {
		case keyQuit, keyInterrupt, keyEOT:
			c.quit(board)
			return nil
		case keySave:
			err = c.save(board)
		case keyMultiStep:
			board, generation, err = c.multiStep(ctx, board, generation)
		default:
			board, generation, err = c.step(board, generation)
		}
		if errors.Is(err, io.EOF) {
			c.quit(board)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Controller) load() (*model.Board, error) {
	fmt.Fprint(c.out, "Enter Starter File: ")
	name, err := c.input.ReadLine()
	if err != nil {
		return nil, errors.Wrap(err, "[load] failed to read starter file name")
	}
	name = strings.TrimSpace(name)

	board, err := c.store.Load(name)
	if err != nil {
		return nil, errors.Wrapf(err, "[load] failed to load starter file: %+v", name)
	}
	level.Info(c.logger).Log("msg", "board loaded", "file", name,
		"height", board.Height(), "width", board.Width())
	return board, nil
}

func (c *Controller) show(board *model.Board, generation int) error {
	population := board.CountLivingCells()
	c.stats.Update(generation, population, board.Hash())
	level.Debug(c.logger).Log("msg", "generation", "generation", generation,
		"population", population, "status", c.stats.Status)

	if err := c.renderer.Display(board); err != nil {
		return errors.Wrap(err, "[show] failed to render board")
	}
	if c.config.ShowStats {
		fmt.Fprintf(c.out, "Gen: %d | Living: %d | Avg Pop: %.1f | Status: %s\n\n",
			c.stats.Generation, c.stats.Population, c.stats.AveragePopulation, c.stats.Status)
	}
	return nil
}

func (c *Controller) step(board *model.Board, generation int) (*model.Board, int, error) {
	next := board.NextGeneration()
	if err := c.show(next, generation+1); err != nil {
		return board, generation, err
	}
	return next, generation + 1, nil
}

func (c *Controller) multiStep(ctx context.Context, board *model.Board, generation int) (*model.Board, int, error) {
	fmt.Fprint(c.out, "How many iterations? ")
	line, err := c.input.ReadLine()
	if err != nil {
		return board, generation, err
	}

	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || count < 0 {
		fmt.Fprintf(c.out, "Invalid iteration count: %q\n", strings.TrimSpace(line))
		return board, generation, nil
	}
	if limit := c.config.MaxIterations; limit > 0 && count > limit {
		fmt.Fprintf(c.out, "Limiting to %d iterations.\n", limit)
		count = limit
	}

	fmt.Fprintf(c.out, "Iterating %d times.\n", count)
	for range count {
		if ctx.Err() != nil {
			break
		}
		if board, generation, err = c.step(board, generation); err != nil {
			return board, generation, err
		}
	}
	return board, generation, nil
}

func (c *Controller) save(board *model.Board) error {
	fmt.Fprint(c.out, "Enter a filename: ")
	name, err := c.input.ReadLine()
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Fprintln(c.out, "No filename given, board not saved.")
		return nil
	}

	if err = c.store.Save(name, board); err != nil {
		level.Error(c.logger).Log("msg", "failed to save board", "file", name, "err", err)
		fmt.Fprintf(c.out, "Failed to save board: %v\n", err)
		return nil
	}
	level.Info(c.logger).Log("msg", "board saved", "file", name, "generation", c.stats.Generation)
	fmt.Fprintf(c.out, "Saved board to %s.\n", name)
	return nil
}

func (c *Controller) quit(board *model.Board) {
	fmt.Fprintln(c.out, "Quitting")
	level.Info(c.logger).Log("msg", "session ended", "generations", c.stats.Generation,
		"population", board.CountLivingCells(), "avg_population", c.stats.AveragePopulation,
		"runtime", c.stats.Runtime())
}
