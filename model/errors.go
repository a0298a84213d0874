package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a board is created with a non-positive height or width
	ErrInvalidDimension = errors.New("invalid board dimension")
	// ErrMalformedInput is returned when board data does not match its declared shape
	ErrMalformedInput = errors.New("malformed board input")
	// ErrInvalidCell is returned for a cell value outside the known states
	ErrInvalidCell = errors.New("invalid cell state")
)
