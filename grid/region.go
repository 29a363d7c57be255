// SPDX-License-Identifier: MIT

package grid

// Region is an axis-aligned block of cells: Start is the first cell and
// Extent the number of cells per axis. Undeclared axes use Start 0, Extent 1.
type Region struct {
	Start  [MaxRank]int
	Extent [MaxRank]int
}

// Clip trims r so it lies inside d. Negative starts are moved to 0 and the
// extent is reduced accordingly; an extent that ends past the last cell is
// cut at dim - start. A region that misses the grid comes back Empty.
func (r Region) Clip(d *Dense) Region {
	out := r
	for a := 0; a < MaxRank; a++ {
		if out.Start[a] < 0 {
			out.Extent[a] += out.Start[a]
			out.Start[a] = 0
		}
		if rem := d.dims[a] - out.Start[a]; out.Extent[a] > rem {
			out.Extent[a] = rem
		}
		if out.Extent[a] < 0 {
			out.Extent[a] = 0
		}
	}

	return out
}

// Empty reports whether r covers no cells.
func (r Region) Empty() bool {
	return r.Extent[0] <= 0 || r.Extent[1] <= 0 || r.Extent[2] <= 0
}

// Size returns the number of cells in r (0 when Empty).
func (r Region) Size() int {
	if r.Empty() {
		return 0
	}

	return r.Extent[0] * r.Extent[1] * r.Extent[2]
}

// Walk visits every cell of r (clipped to d) in row-major order: x fastest,
// then y, then z. fn receives the offset of the cell relative to r.Start and
// the linear index of the cell in d.
// Complexity: O(r.Size()).
func (d *Dense) Walk(r Region, fn func(off [MaxRank]int, idx int)) {
	c := r.Clip(d)
	if c.Empty() {
		return
	}
	s := d.Strides()
	var off [MaxRank]int
	for off[2] = 0; off[2] < c.Extent[2]; off[2]++ {
		zBase := (c.Start[2] + off[2]) * s[2]
		for off[1] = 0; off[1] < c.Extent[1]; off[1]++ {
			yBase := zBase + (c.Start[1]+off[1])*s[1] + c.Start[0]
			for off[0] = 0; off[0] < c.Extent[0]; off[0]++ {
				fn(off, yBase+off[0])
			}
		}
	}
}
