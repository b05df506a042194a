package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrBadDigit indicates a character that is not a decimal digit in a digit row.
	ErrBadDigit = errors.New("gridgraph: cell must be a single decimal digit")
	// ErrCellOutOfBounds indicates a coordinate outside the grid.
	ErrCellOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNoPath indicates no path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
