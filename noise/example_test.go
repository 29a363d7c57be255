package noise_test

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/lattice"
	"github.com/katalvlaran/lvnoise/noise"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerator_GenerateOctaves
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 128×128 heightmap with 32-cell hills and five octaves of detail.
//
// Options:
//   - WithSeed(2024)      (reproducible terrain)
//   - WithOctaves(5)      (scales 32, 16, 8, 4, 2)
//   - WithMultiplier(0.5) (decay factor derived as 0.5)
//
// Use case:
//
//	Terrain height input for world generation.
func ExampleGenerator_GenerateOctaves() {
	gen := noise.New()
	height, err := gen.GenerateOctaves([]int{128, 128}, []int{32, 32},
		noise.WithSeed(2024), noise.WithOctaves(5), noise.WithMultiplier(0.5))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s := height.Summary()
	fmt.Println(height.Dims(), s.Min >= 0, s.Max <= 1)
	// Output:
	// [128 128] true true
}

// ExampleGenerate shows a 1-D line drawn from a normal distribution; the same
// seed always reproduces the same line.
func ExampleGenerate() {
	opts := []noise.Option{noise.WithSeed(7), noise.WithDistribution(lattice.Normal(0, 1))}
	a, _ := noise.Generate([]int{64}, []int{8}, opts...)
	b, _ := noise.Generate([]int{64}, []int{8}, opts...)
	fmt.Println(a.Size(), a.String() == b.String())
	// Output:
	// 64 true
}

// ExampleOctaveWeights prints how much each octave contributes.
func ExampleOctaveWeights() {
	w, total, _ := noise.OctaveWeights(noise.WithOctaves(4), noise.WithMultiplier(0.5))
	fmt.Println(w, total)
	// Output:
	// [0.5 0.25 0.125 0.125] 1
}
