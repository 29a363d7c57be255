// Package lvnoise is a value-noise engine for 1-, 2- and 3-D grids: terrain
// heightmaps, density volumes, procedural textures.
//
// What is lvnoise?
//
//	A deterministic, concurrency-safe library that brings together:
//		• Attenuation kernels: the quintic 6t⁵−15t⁴+10t³ curve, cached per scale
//		• Lattice sampling: seeded random grids from any gonum distribution
//		• Interpolation: exact 1/2/3-D smooth blending of lattice corners
//		• Octave composition: fractal noise with halving scales
//
// Everything is organized under four subpackages:
//
//	grid/    — Dense 1..3-D float64 grid, regions and summary statistics
//	kernel/  — attenuation curves and the shared, thread-safe curve cache
//	lattice/ — seeded sources and distributions for lattice values
//	noise/   — Generate / GenerateOctaves and their options
//
// Quick example:
//
//	height, err := noise.GenerateOctaves([]int{256, 256}, []int{64, 64},
//		noise.WithSeed(42), noise.WithOctaves(6))
//
// The same arguments always produce the same grid, bit for bit.
//
//	go get github.com/katalvlaran/lvnoise
package lvnoise
