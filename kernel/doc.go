// Package kernel builds and memoizes interpolation kernels for value noise.
//
// A kernel (Curve) of a given scale holds one quintic smoothstep weight per
// offset inside a lattice cell:
//
//	w[i] = 6t^5 - 15t^4 + 10t^3,  t = (i+0.5)/scale
//
// so the weights sit at cell-centre sample points, rise monotonically from
// near 0 to near 1, and satisfy w[scale-1-i] ≈ 1 - w[i].
//
// Cache memoizes curves by scale. A curve is a pure function of its scale,
// so cached entries are never evicted or updated. Cache is safe for
// concurrent use: a missing curve is built completely before it is
// published, and readers never observe a partially built curve.
package kernel
