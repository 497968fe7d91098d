package world

import "errors"

var (
	// ErrInvalidDirection is returned when a value is not one of the four cardinal directions.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrOutOfBounds is returned when a grid access addresses a cell outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidLayout is returned when a layout cannot form a rectangular grid.
	ErrInvalidLayout = errors.New("invalid layout")
)
