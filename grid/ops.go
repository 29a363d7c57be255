// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Element-wise arithmetic used by the noise accumulate/normalize steps.
//   - All loops run over the flat buffer in linear order (deterministic).
//
// Design:
//   - Kernels delegate to gonum/floats; shape checks stay here so floats
//     never sees mismatched slices (it panics on them).

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Fill sets every cell to v.
// Complexity: O(n).
func (d *Dense) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Scale multiplies every cell by c in place.
// Complexity: O(n).
func (d *Dense) Scale(c float64) {
	floats.Scale(c, d.data)
}

// AddScaled performs d += alpha*o element-wise.
// Returns ErrDimensionMismatch when the shapes differ.
// Complexity: O(n).
func (d *Dense) AddScaled(alpha float64, o *Dense) error {
	if !d.SameShape(o) {
		return fmt.Errorf("Dense.AddScaled: %w", ErrDimensionMismatch)
	}
	floats.AddScaled(d.data, alpha, o.data)

	return nil
}

// Div divides every cell by c in place.
// Returns ErrDivideByZero for c == 0 and leaves the grid untouched.
// Complexity: O(n).
func (d *Dense) Div(c float64) error {
	if c == 0 {
		return fmt.Errorf("Dense.Div: %w", ErrDivideByZero)
	}
	for i := range d.data {
		d.data[i] /= c
	}

	return nil
}

// Stats is a one-pass description of a grid's values.
type Stats struct {
	Min, Max     float64
	Mean, StdDev float64
}

// Summary returns min, max, mean and (unbiased) standard deviation.
// StdDev is 0 for a single-cell grid.
// Complexity: O(n).
func (d *Dense) Summary() Stats {
	s := Stats{
		Min:  floats.Min(d.data),
		Max:  floats.Max(d.data),
		Mean: stat.Mean(d.data, nil),
	}
	if len(d.data) > 1 {
		s.StdDev = stat.StdDev(d.data, nil)
	}

	return s
}
