package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	cellAlive = "1 "
	cellDead  = "0 "
	cellVoid  = "-1"
)

// TextRenderer prints a board as rows of cell state codes
type TextRenderer struct {
	Out io.Writer
}

// NewTextRenderer returns a renderer writing to out
func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{Out: out}
}

// Display renders the board: a leading blank line, one row per line, and a trailing blank line
func (r *TextRenderer) Display(b *Board) error {
	w := bufio.NewWriter(r.Out)
	w.WriteString("\n")
	for row := range b.height {
		for col := range b.width {
			w.WriteString(cellCode(b.cells[row][col]))
		}
		w.WriteString("\n")
	}
	w.WriteString("\n")
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write board")
	}
	return nil
}

func cellCode(c Cell) string {
	switch c {
	case Dead:
		return cellDead
	case Alive:
		return cellAlive
	default:
		return cellVoid
	}
}
