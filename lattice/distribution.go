// SPDX-License-Identifier: MIT

package lattice

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution binds a probability law to a generator state.
// It is called once per lattice with the request's source; every draw of the
// returned Rander must advance that source, so the sequence of values depends
// only on the seed.
//
// Any gonum distribution with a Src field fits:
//
//	func(src rand.Source) distuv.Rander { return distuv.Beta{Alpha: 2, Beta: 5, Src: src} }
type Distribution func(src rand.Source) distuv.Rander

const (
	panicUniformBounds = "lattice: Uniform: bounds must be finite with min < max"
	panicNormalStdDev  = "lattice: Normal: mean must be finite and stddev finite and > 0"
)

// Uniform returns a uniform distribution on [min, max).
// Panics when the bounds are not finite or min >= max (programmer error).
func Uniform(min, max float64) Distribution {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) || min >= max {
		panic(panicUniformBounds)
	}

	return func(src rand.Source) distuv.Rander {
		return distuv.Uniform{Min: min, Max: max, Src: src}
	}
}

// Normal returns a Gaussian distribution with the given mean and stddev.
// Panics when stddev <= 0 or either argument is not finite.
func Normal(mean, stddev float64) Distribution {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(stddev) || math.IsInf(stddev, 0) || stddev <= 0 {
		panic(panicNormalStdDev)
	}

	return func(src rand.Source) distuv.Rander {
		return distuv.Normal{Mu: mean, Sigma: stddev, Src: src}
	}
}

// DefaultDistribution is uniform on [0, 1).
func DefaultDistribution() Distribution { return Uniform(0, 1) }
