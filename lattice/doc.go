// Package lattice draws the coarse grid of random control values that value
// noise interpolates between.
//
// A lattice is a grid.Dense filled cell by cell, in row-major order (x
// fastest, then y, then z), with independent draws from a Distribution bound
// to one rand.Source. Reordering the sweep would change which draw lands in
// which cell, so the order is part of the determinism contract:
//
//	same seed + same Distribution + same shape ⇒ identical lattice.
//
// Distributions come from gonum's stat/distuv; Uniform and Normal cover the
// common cases and any distuv.Rander can be wrapped with a Distribution func.
package lattice
