// SPDX-License-Identifier: MIT

package noise

import (
	"math/rand/v2"
	"sync"

	"github.com/katalvlaran/lvnoise/grid"
	"github.com/katalvlaran/lvnoise/kernel"
	"github.com/katalvlaran/lvnoise/lattice"
)

// Generator produces value noise using one attenuation-kernel cache.
// A Generator is safe for concurrent use: every call seeds its own generator
// state, and the cache serializes only first-time kernel construction.
type Generator struct {
	cache *kernel.Cache
}

// New returns a Generator that owns a fresh kernel cache.
func New() *Generator {
	return &Generator{cache: kernel.NewCache()}
}

// NewWithCache returns a Generator sharing c with other generators.
// Panics on nil.
func NewWithCache(c *kernel.Cache) *Generator {
	if c == nil {
		panic(panicNilCache)
	}

	return &Generator{cache: c}
}

// Cache returns the generator's kernel cache.
func (g *Generator) Cache() *kernel.Cache { return g.cache }

var defaultGenerator = sync.OnceValue(func() *Generator { return NewWithCache(kernel.Default()) })

// Generate is Generator.Generate on a package-level generator backed by
// kernel.Default().
func Generate(shape, scale []int, opts ...Option) (*grid.Dense, error) {
	return defaultGenerator().Generate(shape, scale, opts...)
}

// Generate returns one layer of noise of the given shape.
// MAIN DESCRIPTION:
//   - Build the lattice for scale, then interpolate it to full resolution.
//
// Implementation:
//   - Stage 1: validate shape and scale (no allocation on failure).
//   - Stage 2: drop unit axes and fetch one cached curve per active axis.
//   - Stage 3: draw a lattice of CeilDivide(dim, scale)+1 points per active
//     axis from the seeded distribution.
//   - Stage 4: sweep every lattice cell and write its block.
//
// Inputs:
//   - shape: 1..3 positive sizes (width[, length[, height]]).
//   - scale: one positive feature size per shape axis.
//   - opts:  WithSeed, WithDistribution (other options are ignored).
//
// Errors:
//   - ErrBadShape, ErrScaleMismatch, ErrBadScale, ErrBadMultiplier,
//     ErrBadDecayFactor; all match ErrInvalidArgument.
//
// Determinism:
//   - Identical arguments yield bit-identical grids.
//
// Complexity:
//   - Time O(n·2^d + lattice), Space O(n + lattice).
func (g *Generator) Generate(shape, scale []int, opts ...Option) (*grid.Dense, error) {
	if _, err := validateRequest(shape, scale, opts); err != nil {
		return nil, noiseErrorf("Generate", err)
	}
	dst, err := grid.NewDense(shape...)
	if err != nil {
		return nil, noiseErrorf("Generate", err)
	}
	if err = g.GenerateInto(dst, scale, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}

// GenerateInto overwrites dst with one layer of noise.
// The shape is taken from dst; scale must have dst.Rank() entries.
// On error dst is left untouched.
func (g *Generator) GenerateInto(dst *grid.Dense, scale []int, opts ...Option) error {
	return g.GenerateLayer(dst, scale, Overwrite, 1, opts...)
}

// GenerateLayer writes one layer of noise into dst using mode.
// With Accumulate each cell receives += amplitude * value, which lets callers
// compose custom octave stacks; with Overwrite amplitude is ignored.
// On error dst is left untouched.
func (g *Generator) GenerateLayer(dst *grid.Dense, scale []int, mode Mode, amplitude float64, opts ...Option) error {
	sc, err := validateScale(dst, scale)
	if err != nil {
		return noiseErrorf("GenerateLayer", err)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return noiseErrorf("GenerateLayer", err)
	}

	return g.field(dst, sc, o.dist, lattice.NewSource(o.seed), mode, amplitude)
}

// validateRequest checks shape, scale and options before anything is allocated.
func validateRequest(shape, scale []int, opts []Option) (options, error) {
	if grid.ValidateDims(shape) != nil {
		return options{}, ErrBadShape
	}
	if len(scale) != len(shape) {
		return options{}, ErrScaleMismatch
	}
	for _, s := range scale {
		if s <= 0 {
			return options{}, ErrBadScale
		}
	}

	return gatherOptions(opts)
}

// validateScale checks scale against dst and pads it to MaxRank with 1s.
func validateScale(dst *grid.Dense, scale []int) ([grid.MaxRank]int, error) {
	sc := [grid.MaxRank]int{1, 1, 1}
	if dst == nil {
		return sc, ErrNilGrid
	}
	if len(scale) != dst.Rank() {
		return sc, ErrScaleMismatch
	}
	for i, s := range scale {
		if s <= 0 {
			return sc, ErrBadScale
		}
		sc[i] = s
	}

	return sc, nil
}

// field runs one single-scale pass: plan, lattice, sweep.
// src is consumed, so consecutive calls on one source draw fresh lattices.
func (g *Generator) field(dst *grid.Dense, scale [grid.MaxRank]int, dist lattice.Distribution, src rand.Source, mode Mode, amplitude float64) error {
	p, err := newPlan(g.cache, dst, scale)
	if err != nil {
		return err
	}
	lat, err := lattice.Sample(p.latDims, dist, src)
	if err != nil {
		return err
	}
	p.sweep(lat, dst, mode, amplitude)

	return nil
}
