// Package noise synthesizes value noise over 1-, 2- and 3-D grids.
//
// 🚀 What is value noise?
//
//	Independent random values are placed on a coarse lattice, one every
//	`scale` cells per axis, and the full-resolution grid is filled by
//	interpolating between the lattice points with a quintic smoothstep
//	weight. Summing several such layers at halving scales and decaying
//	amplitudes (octaves) gives band-limited, terrain-like detail.
//
// ✨ Key features:
//   - 1, 2 or 3 axes through one N-axis fill routine; unit axes are dropped
//   - attenuation kernels memoized per scale in a shared kernel.Cache
//   - any gonum distribution for the lattice (lattice.Distribution)
//   - fully deterministic for a given seed; safe for concurrent use
//
// ⚙️ Usage:
//
//	gen := noise.New()
//	height, err := gen.GenerateOctaves([]int{256, 256}, []int{64, 64},
//		noise.WithSeed(7), noise.WithOctaves(6), noise.WithMultiplier(0.5))
//
// Seed policy:
//
//	A request seeds exactly one generator state and every lattice it needs
//	is drawn from that state in order. For GenerateOctaves the first octave
//	therefore uses the same lattice as Generate with the same seed, and each
//	later octave continues the stream. This is part of the output contract.
//
// Complexity:
//
//	Generate: O(n·2^d) time for n output cells and d active axes, plus
//	O(Π ceil(dim/scale)+1) lattice draws. GenerateOctaves: the sum over octaves.
package noise
