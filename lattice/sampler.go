// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lvnoise/grid"
)

var (
	// ErrNilDistribution indicates Sample was called without a distribution.
	ErrNilDistribution = errors.New("lattice: distribution is nil")

	// ErrNilSource indicates Sample was called without a generator state.
	ErrNilSource = errors.New("lattice: source is nil")
)

// Sample allocates a grid of the given dims and fills it with independent
// draws from dist bound to src.
// MAIN DESCRIPTION:
//   - One draw per cell in linear (row-major) order, x fastest.
//
// Implementation:
//   - Stage 1: validate dims, dist and src.
//   - Stage 2: bind dist to src once.
//   - Stage 3: draw into the flat buffer in ascending index order.
//
// Behavior highlights:
//   - src keeps advancing across calls: sampling several lattices from one
//     source yields a single continuous stream of draws.
//
// Errors:
//   - grid.ErrInvalidDimensions, ErrNilDistribution, ErrNilSource.
//
// Complexity:
//   - Time O(n), Space O(n) where n is the lattice size.
func Sample(dims []int, dist Distribution, src rand.Source) (*grid.Dense, error) {
	if dist == nil {
		return nil, ErrNilDistribution
	}
	if src == nil {
		return nil, ErrNilSource
	}
	lat, err := grid.NewDense(dims...)
	if err != nil {
		return nil, fmt.Errorf("lattice.Sample: %w", err)
	}
	draw := dist(src)
	data := lat.Data()
	for i := range data {
		data[i] = draw.Rand()
	}

	return lat, nil
}
