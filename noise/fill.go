// SPDX-License-Identifier: MIT
// Package: noise
//
// fill.go — the single N-axis fill routine.
//
// A request is resolved into a plan: the list of active axes (unit axes
// dropped), each with its scale, cached attenuation curve, lattice cell count
// and lattice stride. The sweep visits lattice cells in row-major order and
// stamps one scale^d block of output per cell, clipped at the grid edge.

package noise

import (
	"github.com/katalvlaran/lvnoise/grid"
	"github.com/katalvlaran/lvnoise/kernel"
)

// Mode selects how a layer is written into the destination.
type Mode int

const (
	// Overwrite replaces every output cell with the interpolated value.
	Overwrite Mode = iota

	// Accumulate adds amplitude * interpolated value to every output cell.
	Accumulate
)

// CeilDivide returns ceil(x / y) for x >= 0, y > 0.
// CeilDivide(1, 2) == 1, so halving a scale of 1 leaves it at 1.
func CeilDivide(x, y int) int {
	return (x + y - 1) / y
}

// axis describes one active axis of a plan.
type axis struct {
	out       int           // axis index in the output grid (0..2)
	dim       int           // output size along the axis
	scale     int           // cells between lattice points
	curve     *kernel.Curve // attenuation weights, len == scale
	cells     int           // lattice cells: CeilDivide(dim, scale)
	latStride int           // linear step of this axis in the lattice
}

// plan is the resolved geometry of one single-scale field.
type plan struct {
	axes    []axis
	latDims []int // lattice shape over the active axes: cells+1 each
}

// activeAxes returns the output axes that take part in interpolation.
// Axes of size 1 are dropped; when every axis has size 1, axis 0 is kept so a
// single-cell grid still gets one interpolated value.
func activeAxes(shape [grid.MaxRank]int, rank int) []int {
	act := make([]int, 0, rank)
	for a := 0; a < rank; a++ {
		if shape[a] > 1 {
			act = append(act, a)
		}
	}
	if len(act) == 0 {
		act = append(act, 0)
	}

	return act
}

// newPlan resolves unit axes, fetches curves and sizes the lattice.
// scale must hold a positive value for every declared axis of dst.
func newPlan(cache *kernel.Cache, dst *grid.Dense, scale [grid.MaxRank]int) (plan, error) {
	shape := dst.Shape()
	act := activeAxes(shape, dst.Rank())
	p := plan{axes: make([]axis, len(act)), latDims: make([]int, len(act))}
	stride := 1
	for i, a := range act {
		cv, err := cache.Curve(scale[a])
		if err != nil {
			return plan{}, err
		}
		cells := CeilDivide(shape[a], scale[a])
		p.axes[i] = axis{
			out:       a,
			dim:       shape[a],
			scale:     scale[a],
			curve:     cv,
			cells:     cells,
			latStride: stride,
		}
		p.latDims[i] = cells + 1
		stride *= cells + 1
	}

	return p, nil
}

// sweep fills dst from lat, one lattice cell at a time, in row-major order
// over the active axes.
func (p plan) sweep(lat, dst *grid.Dense, mode Mode, amplitude float64) {
	counts := [grid.MaxRank]int{1, 1, 1}
	for i, ax := range p.axes {
		counts[i] = ax.cells
	}
	var cell [grid.MaxRank]int
	for cell[2] = 0; cell[2] < counts[2]; cell[2]++ {
		for cell[1] = 0; cell[1] < counts[1]; cell[1]++ {
			for cell[0] = 0; cell[0] < counts[0]; cell[0]++ {
				p.fillCell(lat, dst, cell, mode, amplitude)
			}
		}
	}
}

// fillCell stamps the output block of one lattice cell.
// MAIN DESCRIPTION:
//   - Read the 2^d corner values of cell, then for every output cell of the
//     block look up per-axis weights at its offset and interpolate.
//
// Behavior highlights:
//   - The block starts at cell*scale on each axis and spans
//     min(dim - start, scale) cells (grid.Region.Clip), so the last cell of
//     an axis whose size is not a multiple of scale never overruns.
//   - Overwrite stores the value; Accumulate adds amplitude*value.
//
// Complexity:
//   - Time O(scale^d · d), Space O(1).
func (p plan) fillCell(lat, dst *grid.Dense, cell [grid.MaxRank]int, mode Mode, amplitude float64) {
	n := len(p.axes)
	latData := lat.Data()

	var corners [8]float64
	for c := 0; c < 1<<n; c++ {
		idx := 0
		for a, ax := range p.axes {
			idx += (cell[a] + (c>>a&1)) * ax.latStride
		}
		corners[c] = latData[idx]
	}

	r := grid.Region{Extent: [grid.MaxRank]int{1, 1, 1}}
	for a, ax := range p.axes {
		r.Start[ax.out] = cell[a] * ax.scale
		r.Extent[ax.out] = ax.scale
	}

	out := dst.Data()
	var w [3]float64
	dst.Walk(r, func(off [grid.MaxRank]int, idx int) {
		for a, ax := range p.axes {
			w[a] = ax.curve.At(off[ax.out])
		}
		v := reduceCorners(corners, n, w)
		if mode == Accumulate {
			out[idx] += amplitude * v
		} else {
			out[idx] = v
		}
	})
}
