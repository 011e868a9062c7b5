package nn

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrEmptyBatch    = errors.New("empty batch")
)

// ShapeError reports an input whose length does not match what a module expects.
type ShapeError struct {
	Op   string // Operation that rejected the input (e.g., "L0-N2", "mse")
	Want int    // Expected length
	Got  int    // Actual length
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: expected %d values, got %d", e.Op, e.Want, e.Got)
}

// Unwrap returns ErrShapeMismatch so callers can use errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func shapeError(op string, want, got int) error {
	return errors.WithStack(&ShapeError{Op: op, Want: want, Got: got})
}
