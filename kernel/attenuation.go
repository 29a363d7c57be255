// SPDX-License-Identifier: MIT

package kernel

import "fmt"

// Polynomial is the quintic fade curve 6t^5 - 15t^4 + 10t^3.
// t is expected in [0,1]; the result then also lies in [0,1].
// Polynomial(0)=0, Polynomial(1)=1, and its first and second derivatives
// vanish at both ends.
func Polynomial(t float64) float64 {
	// Horner form of t^3 * (t*(6t - 15) + 10).
	return t * t * t * (t*(t*6-15) + 10)
}

// Curve is an immutable attenuation table for one scale.
type Curve struct {
	scale   int
	weights []float64
}

// BuildCurve computes the attenuation table for scale.
// MAIN DESCRIPTION:
//   - weights[i] = Polynomial((i+0.5)/scale) for i in [0, scale).
//
// Implementation:
//   - Stage 1: validate scale > 0.
//   - Stage 2: fill both halves from the outside in; every weight is evaluated
//     from its own sample point, so the table is bit-identical to a plain
//     ascending loop.
//
// Errors:
//   - ErrInvalidScale when scale <= 0.
//
// Complexity:
//   - Time O(scale), Space O(scale).
func BuildCurve(scale int) (*Curve, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("BuildCurve(%d): %w", scale, ErrInvalidScale)
	}
	c := &Curve{scale: scale, weights: make([]float64, scale)}
	for lo, hi := 0, scale-1; lo <= hi; lo, hi = lo+1, hi-1 {
		c.weights[lo] = Polynomial(c.Point(lo))
		c.weights[hi] = Polynomial(c.Point(hi))
	}

	return c, nil
}

// Scale returns the feature size the curve was built for.
func (c *Curve) Scale() int { return c.scale }

// Len returns the number of weights (equal to Scale).
func (c *Curve) Len() int { return len(c.weights) }

// At returns weight i. It panics if i is outside [0, Len()), like a slice.
func (c *Curve) At(i int) float64 { return c.weights[i] }

// Point returns the relative sample position (i+0.5)/scale of offset i.
func (c *Curve) Point(i int) float64 {
	return (float64(i) + 0.5) / float64(c.scale)
}

// Weights returns a copy of the table.
func (c *Curve) Weights() []float64 {
	out := make([]float64, len(c.weights))
	copy(out, c.weights)

	return out
}
