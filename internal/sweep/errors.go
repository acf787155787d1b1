package sweep

import "errors"

var (
	// ErrEmptyGrid indicates a grid or voltage set with no points.
	ErrEmptyGrid = errors.New("sweep: grid has no points")

	// ErrZeroField indicates a zero input field, for which normalized
	// transfer quantities are undefined.
	ErrZeroField = errors.New("sweep: input field is zero")

	// ErrDimensionMismatch indicates table columns of different lengths.
	ErrDimensionMismatch = errors.New("sweep: column lengths differ")
)
