// SPDX-License-Identifier: MIT

package noise

// Interpolate1D blends left and right: left*(1-a) + right*a.
// The products are rounded before the sum so no platform fuses them into an
// FMA; every code path that interpolates gets the same bits.
func Interpolate1D(left, right, a float64) float64 {
	return float64(left*(1-a)) + float64(right*a)
}

// Interpolate2D is bilinear: two blends along x, then one along y.
//
//	tl ── tr    (y0)
//	│      │
//	bl ── br    (y1)
func Interpolate2D(tl, tr, bl, br, ax, ay float64) float64 {
	top := Interpolate1D(tl, tr, ax)
	bottom := Interpolate1D(bl, br, ax)

	return Interpolate1D(top, bottom, ay)
}

// Interpolate3D is trilinear: a bilinear blend on the z0 layer (c0) and the
// z1 layer (c1), then one blend along z. Each layer is ordered tl, tr, bl, br.
func Interpolate3D(c0, c1 [4]float64, ax, ay, az float64) float64 {
	near := Interpolate2D(c0[0], c0[1], c0[2], c0[3], ax, ay)
	far := Interpolate2D(c1[0], c1[1], c1[2], c1[3], ax, ay)

	return Interpolate1D(near, far, az)
}

// reduceCorners interpolates the 2^n corner values of an n-axis cell.
// Bit a of a corner index is that corner's offset along active axis a.
// Axes are collapsed in order (x, then y, then z), pairing corners that
// differ only in the lowest remaining bit, which is exactly the operation
// order of Interpolate1D/2D/3D.
func reduceCorners(v [8]float64, n int, w [3]float64) float64 {
	size := 1 << n
	for a := 0; a < n; a++ {
		size >>= 1
		for m := 0; m < size; m++ {
			v[m] = Interpolate1D(v[2*m], v[2*m+1], w[a])
		}
	}

	return v[0]
}
