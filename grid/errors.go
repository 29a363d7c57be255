// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ..." for consistency. Methods wrap
// these with call-site context via %w; callers match with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a shape with no axes, more than MaxRank
	// axes, or a non-positive axis size.
	ErrInvalidDimensions = errors.New("grid: dimensions must be 1..3 positive sizes")

	// ErrOutOfRange indicates that a coordinate is outside the grid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between two grids,
	// e.g., AddScaled with a differently sized operand.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrDivideByZero indicates Div was asked to divide by zero.
	ErrDivideByZero = errors.New("grid: division by zero")
)

// denseErrorf wraps an error with the Dense method name and coordinates.
func denseErrorf(method string, x, y, z int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d,%d): %w", method, x, y, z, err)
}
