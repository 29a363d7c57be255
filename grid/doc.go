// Package grid provides the dense float64 container consumed by the noise engine.
//
// Dense is a contiguous, row-major array logically indexed by up to three
// coordinates (width, length, height). Undeclared axes have size 1, so the
// linear offset is always
//
//	x + y*width + z*width*length
//
// and a 1-D or 2-D grid is simply a 3-D grid with unit trailing axes.
//
// ✨ Key features:
//   - fixed shape: a Dense is never resized after construction
//   - safe accessors: At/Set return ErrOutOfRange instead of panicking
//   - flat access (Data, Index) for hot interpolation loops
//   - clipped sub-region iteration (Region, Walk)
//   - element-wise arithmetic backed by gonum/floats (Fill, Scale, AddScaled, Div)
//   - Summary statistics backed by gonum/stat
//
// Complexity quicksheet:
//   - NewDense: O(n) zero-init; At/Set/Index: O(1); Clone/Fill/Scale/Div: O(n);
//     Walk: O(region size).
package grid
