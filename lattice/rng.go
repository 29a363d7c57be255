// SPDX-License-Identifier: MIT
// Package lattice - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical stream on every platform.
//   - Encapsulation: a single source factory; no time-based seeding anywhere.
//
// Concurrency:
//   - A rand.Source is NOT goroutine-safe. Every noise request creates its own
//     source with NewSource; never share one across concurrent requests.

package lattice

import "math/rand/v2"

// NewSource returns a deterministic PCG source for seed.
// PCG takes two 64-bit words; the second is a SplitMix64 mix of the seed so
// nearby seeds (0, 1, 2, ...) start from unrelated states.
//
// Complexity: O(1).
func NewSource(seed int64) rand.Source {
	return rand.NewPCG(uint64(seed), mixSeed(uint64(seed)))
}

// mixSeed is the SplitMix64 finalizer; see Vigna 2014 for the constants.
func mixSeed(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
