package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifestep/rules"
)

// Cell is the state of a single board position
type Cell int

const (
	// Void is a displayable state that never lives and is never produced by NextGeneration
	Void  Cell = -1
	Dead  Cell = 0
	Alive Cell = 1
)

// Valid reports whether c is one of the known cell states
func (c Cell) Valid() bool {
	return c == Void || c == Dead || c == Alive
}

// Board represents a finite rectangular game board indexed [row][col]
type Board struct {
	height int
	width  int
	cells  [][]Cell
}

// NewBoard creates a board of the given dimensions with every cell dead
func NewBoard(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewBoard] height=%d width=%d", height, width)
	}
	return newBoard(height, width), nil
}

func newBoard(height, width int) *Board {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{
		height: height,
		width:  width,
		cells:  cells,
	}
}

// NewBoardFromRows builds a board from row-major cell values, validating that
// the grid matches the declared dimensions and holds only known states.
func NewBoardFromRows(height, width int, rows [][]Cell) (*Board, error) {
	b, err := NewBoard(height, width)
	if err != nil {
		return nil, err
	}
	if len(rows) != height {
		return nil, errors.Wrapf(ErrMalformedInput, "[NewBoardFromRows] got %d rows, want %d", len(rows), height)
	}
	for row, values := range rows {
		if len(values) != width {
			return nil, errors.Wrapf(ErrMalformedInput,
				"[NewBoardFromRows] row %d has %d cells, want %d", row, len(values), width)
		}
		for col, c := range values {
			if !c.Valid() {
				return nil, errors.Wrapf(ErrInvalidCell, "[NewBoardFromRows] value %d at (%d, %d)", c, row, col)
			}
			b.cells[row][col] = c
		}
	}
	return b, nil
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Get returns the state of a cell, Dead when off the board
func (b *Board) Get(row, col int) Cell {
	if !IsOnBoard(row, col, b.height, b.width) {
		return Dead
	}
	return b.cells[row][col]
}

// Set sets the state of a cell, ignoring positions off the board
func (b *Board) Set(row, col int, c Cell) {
	if IsOnBoard(row, col, b.height, b.width) {
		b.cells[row][col] = c
	}
}

// Rows returns a copy of the cell grid
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.height)
	for i, r := range b.cells {
		rows[i] = append([]Cell(nil), r...)
	}
	return rows
}

// IsOnBoard reports whether (row, col) lies within a height x width grid
func IsOnBoard(row, col, height, width int) bool {
	return row >= 0 && col >= 0 && row < height && col < width
}

// NeighborCount counts live cells in the Moore neighborhood of (row, col)
func (b *Board) NeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if IsOnBoard(r, c, b.height, b.width) && b.cells[r][c] == Alive {
				count++
			}
		}
	}
	return count
}

// NextGeneration returns a new board holding the next generation; b is not modified.
// Only Dead and Alive are ever written.
func (b *Board) NextGeneration() *Board {
	next := newBoard(b.height, b.width)
	for row := range b.height {
		for col := range b.width {
			if rules.ApplyConwayRules(b.NeighborCount(row, col), b.cells[row][col] == Alive) {
				next.cells[row][col] = Alive
			}
		}
	}
	return next
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for row := range b.height {
		for col := range b.width {
			if b.cells[row][col] == Alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.height != other.height || b.width != other.width {
		return false
	}
	for row := range b.height {
		for col := range b.width {
			if b.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the dimensions and cell states
func (b *Board) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.height, b.width)
	for row := range b.height {
		for col := range b.width {
			h.Write([]byte{byte(b.cells[row][col] + 1)})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
