// SPDX-License-Identifier: MIT

// Package grid - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly buffer with the explicit index formula x + y*W + z*W*L.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loops deterministic (x fastest, then y, then z).
//
// AI-Hints:
//   - Hot paths should read Strides() once and operate on Data() directly.
//   - Use Walk(Region) to visit a clipped sub-block without computing offsets by hand.

package grid

import (
	"fmt"
	"strings"
)

// MaxRank is the largest number of declared axes a Dense supports.
const MaxRank = 3

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxIndex = "Index"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtLayer    = "# z=%d\n"
)

// Dense is a concrete row-major grid of float64 values.
//   - dims holds (width, length, height); undeclared axes are 1.
//   - rank is the number of declared axes (1..MaxRank).
//   - data is a flat buffer of length width*length*height.
type Dense struct {
	dims [MaxRank]int // axis sizes, unused trailing axes = 1
	rank int          // declared axes count
	data []float64    // contiguous storage, len == dims[0]*dims[1]*dims[2]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a zero grid with the given axis sizes.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate 1 ≤ len(dims) ≤ MaxRank and every size > 0.
//   - Stage 2: pad undeclared axes with 1 and allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n), Space O(n) where n is the product of dims.
func NewDense(dims ...int) (*Dense, error) {
	if err := ValidateDims(dims); err != nil {
		return nil, err
	}
	d := &Dense{rank: len(dims), dims: [MaxRank]int{1, 1, 1}}
	for i, v := range dims {
		d.dims[i] = v
	}
	d.data = make([]float64, d.dims[0]*d.dims[1]*d.dims[2])

	return d, nil
}

// ValidateDims reports whether dims is a legal Dense shape.
// Returns ErrInvalidDimensions (wrapped with the offending shape) otherwise.
func ValidateDims(dims []int) error {
	if len(dims) == 0 || len(dims) > MaxRank {
		return fmt.Errorf("shape %v: %w", dims, ErrInvalidDimensions)
	}
	for _, v := range dims {
		if v <= 0 {
			return fmt.Errorf("shape %v: %w", dims, ErrInvalidDimensions)
		}
	}

	return nil
}

// Rank returns the number of declared axes.
func (d *Dense) Rank() int { return d.rank }

// Dims returns a copy of the declared axis sizes (len == Rank()).
func (d *Dense) Dims() []int {
	out := make([]int, d.rank)
	copy(out, d.dims[:d.rank])

	return out
}

// Shape returns all three axis sizes, with undeclared axes reported as 1.
func (d *Dense) Shape() [MaxRank]int { return d.dims }

// Width returns the size of axis 0.
func (d *Dense) Width() int { return d.dims[0] }

// Length returns the size of axis 1 (1 when undeclared).
func (d *Dense) Length() int { return d.dims[1] }

// Height returns the size of axis 2 (1 when undeclared).
func (d *Dense) Height() int { return d.dims[2] }

// Size returns the total number of cells.
func (d *Dense) Size() int { return len(d.data) }

// Strides returns the linear step of each axis: (1, W, W*L).
func (d *Dense) Strides() [MaxRank]int {
	return [MaxRank]int{1, d.dims[0], d.dims[0] * d.dims[1]}
}

// Data exposes the flat backing buffer. Writes are visible through the grid;
// the slice must not be appended to.
func (d *Dense) Data() []float64 { return d.data }

// offset computes x + y*W + z*W*L or returns ErrOutOfRange.
func (d *Dense) offset(x, y, z int) (int, error) {
	if x < 0 || x >= d.dims[0] || y < 0 || y >= d.dims[1] || z < 0 || z >= d.dims[2] {
		return 0, ErrOutOfRange
	}

	return x + y*d.dims[0] + z*d.dims[0]*d.dims[1], nil
}

// Index returns the linear offset of (x, y, z).
// Unused axes must be addressed with 0.
// Complexity: O(1).
func (d *Dense) Index(x, y, z int) (int, error) {
	off, err := d.offset(x, y, z)
	if err != nil {
		return 0, denseErrorf(ctxIndex, x, y, z, err)
	}

	return off, nil
}

// At returns the value at (x, y, z) or ErrOutOfRange.
// Complexity: O(1).
func (d *Dense) At(x, y, z int) (float64, error) {
	off, err := d.offset(x, y, z)
	if err != nil {
		return 0, denseErrorf(ctxAt, x, y, z, err)
	}

	return d.data[off], nil
}

// Set stores v at (x, y, z) or returns ErrOutOfRange.
// Complexity: O(1).
func (d *Dense) Set(x, y, z int, v float64) error {
	off, err := d.offset(x, y, z)
	if err != nil {
		return denseErrorf(ctxSet, x, y, z, err)
	}
	d.data[off] = v

	return nil
}

// SameShape reports whether d and o have identical axis sizes.
// Declared rank is ignored: a 4-wide 1-D grid matches a 4×1 2-D grid.
func (d *Dense) SameShape(o *Dense) bool {
	return o != nil && d.dims == o.dims
}

// Clone returns a deep copy with the same shape and rank.
// Complexity: O(n).
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{dims: d.dims, rank: d.rank, data: cp}
}

// String renders the grid row by row (x varies along a line), with a
// "# z=k" header before each layer of a 3-D grid. Intended for diagnostics.
func (d *Dense) String() string {
	var sb strings.Builder
	w, l, h := d.dims[0], d.dims[1], d.dims[2]
	for z := 0; z < h; z++ {
		if d.rank == MaxRank {
			fmt.Fprintf(&sb, _fmtLayer, z)
		}
		for y := 0; y < l; y++ {
			sb.WriteString(_fmtRowOpen)
			base := y*w + z*w*l
			for x := 0; x < w; x++ {
				if x > 0 {
					sb.WriteString(_fmtSep)
				}
				fmt.Fprintf(&sb, "%g", d.data[base+x])
			}
			sb.WriteString(_fmtRowClose)
		}
	}

	return sb.String()
}
