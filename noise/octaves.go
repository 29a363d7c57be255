// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/katalvlaran/lvnoise/grid"
	"github.com/katalvlaran/lvnoise/lattice"
)

// GenerateOctaves is Generator.GenerateOctaves on the package-level generator.
func GenerateOctaves(shape, scale []int, opts ...Option) (*grid.Dense, error) {
	return defaultGenerator().GenerateOctaves(shape, scale, opts...)
}

// GenerateOctaves returns multi-octave (fractal) value noise.
// MAIN DESCRIPTION:
//   - Sum WithOctaves layers at halving scales and decaying amplitudes, then
//     divide by the sum of amplitudes used.
//
// Implementation:
//   - Stage 1: validate; resolve decay factor d (explicit, or
//     FindDecayFactor(multiplier)).
//   - Stage 2: zero the output, seed one source.
//   - Stage 3: for octave o: amplitude m·d^o, except the last octave, whose
//     weight is divided by d; accumulate a layer at the current scale drawn
//     from the shared source; halve every axis scale with CeilDivide(s, 2).
//   - Stage 4: divide by the total weight.
//
// Behavior highlights:
//   - One octave is a single Overwrite layer: m/d · noise / (m/d) == noise.
//   - Scales bottom out at 1 and stay there.
//   - Output is a convex combination of lattice values, so it stays within
//     the range of the distribution (up to rounding).
//
// Errors:
//   - as Generate, plus ErrBadOctaves.
//
// Complexity:
//   - Time O(octaves · n·2^d), Space O(n + largest lattice).
func (g *Generator) GenerateOctaves(shape, scale []int, opts ...Option) (*grid.Dense, error) {
	o, err := validateRequest(shape, scale, opts)
	if err != nil {
		return nil, noiseErrorf("GenerateOctaves", err)
	}
	if o.octaves <= 0 {
		return nil, noiseErrorf("GenerateOctaves", ErrBadOctaves)
	}
	dst, err := grid.NewDense(shape...)
	if err != nil {
		return nil, noiseErrorf("GenerateOctaves", err)
	}
	if err = g.GenerateOctavesInto(dst, scale, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}

// GenerateOctavesInto overwrites dst with multi-octave noise.
// The shape is taken from dst; scale must have dst.Rank() entries.
// On a validation error dst is left untouched.
func (g *Generator) GenerateOctavesInto(dst *grid.Dense, scale []int, opts ...Option) error {
	sc, err := validateScale(dst, scale)
	if err != nil {
		return noiseErrorf("GenerateOctavesInto", err)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return noiseErrorf("GenerateOctavesInto", err)
	}
	if o.octaves <= 0 {
		return noiseErrorf("GenerateOctavesInto", ErrBadOctaves)
	}

	src := lattice.NewSource(o.seed)
	if o.octaves == 1 {
		return g.field(dst, sc, o.dist, src, Overwrite, 1)
	}

	dst.Fill(0)
	amplitude := o.multiplier
	total := 0.0
	for oct := 0; oct < o.octaves; oct++ {
		if oct == o.octaves-1 {
			// Last layer carries the tail of the series.
			amplitude /= o.decayFactor
		}
		if err = g.field(dst, sc, o.dist, src, Accumulate, amplitude); err != nil {
			return noiseErrorf("GenerateOctavesInto", err)
		}
		total += amplitude
		amplitude *= o.decayFactor
		for a := range sc {
			sc[a] = CeilDivide(sc[a], 2)
		}
	}

	return dst.Div(total)
}

// OctaveWeights returns the per-octave amplitudes GenerateOctaves uses for
// the given options, and their sum. It lets callers reason about how much
// each octave contributes without generating anything.
func OctaveWeights(opts ...Option) ([]float64, float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, 0, noiseErrorf("OctaveWeights", err)
	}
	if o.octaves <= 0 {
		return nil, 0, noiseErrorf("OctaveWeights", ErrBadOctaves)
	}
	w := make([]float64, o.octaves)
	amplitude := o.multiplier
	total := 0.0
	for oct := range w {
		if oct == o.octaves-1 {
			amplitude /= o.decayFactor
		}
		w[oct] = amplitude
		total += amplitude
		amplitude *= o.decayFactor
	}

	return w, total, nil
}
