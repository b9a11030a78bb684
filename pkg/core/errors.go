package core

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds reports a coordinate outside [0,H)x[0,W).
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrInvalidSize reports a grid constructed with a non-positive dimension.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
)

func outOfBounds(row, col, w, h int) error {
	return errors.Wrapf(ErrOutOfBounds, "cell (%d,%d) in %dx%d grid", row, col, w, h)
}
