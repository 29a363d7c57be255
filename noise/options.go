// SPDX-License-Identifier: MIT

// Package noise: functional configuration for noise requests.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on programmer errors such as nil values),
//   - gatherOptions, which enforces the numeric invariants and returns
//     sentinel errors for out-of-range values.
//
// Design goals:
//   - Deterministic behavior: seeds are explicit, no time-based defaults.
//   - Numeric ranges are validated at the call boundary, not in WithX,
//     so a bad multiplier from user input is an error rather than a panic.

package noise

import (
	"math"

	"github.com/katalvlaran/lvnoise/lattice"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed is used when WithSeed is not given.
	DefaultSeed int64 = 0

	// DefaultOctaves is the octave count of GenerateOctaves.
	DefaultOctaves = 8

	// DefaultMultiplier is the amplitude of the first octave.
	DefaultMultiplier = 0.5

	// MinDecayFactor replaces a derived decay factor that would be <= 0
	// (multiplier of 1), keeping the last-octave weight m/d finite.
	MinDecayFactor = 0.0001
)

const (
	panicNilDistribution = "noise: WithDistribution(nil)"
	panicNilCache        = "noise: NewWithCache(nil)"
)

// Option mutates request options. Later options override earlier ones.
type Option func(*options)

// options is the resolved request configuration.
type options struct {
	seed        int64
	dist        lattice.Distribution
	octaves     int
	multiplier  float64
	decayFactor float64
	decaySet    bool // false: derive decayFactor from multiplier
}

func defaultOptions() options {
	return options{
		seed:       DefaultSeed,
		dist:       lattice.DefaultDistribution(),
		octaves:    DefaultOctaves,
		multiplier: DefaultMultiplier,
	}
}

// WithSeed sets the generator seed. Any int64 is valid.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithDistribution sets the law lattice values are drawn from.
// Panics on nil.
func WithDistribution(d lattice.Distribution) Option {
	if d == nil {
		panic(panicNilDistribution)
	}

	return func(o *options) { o.dist = d }
}

// WithOctaves sets the number of layers for GenerateOctaves.
// Ignored by Generate. Must be > 0 (checked at call time).
func WithOctaves(n int) Option {
	return func(o *options) { o.octaves = n }
}

// WithMultiplier sets the first octave's amplitude, in (0, 1].
// When no decay factor is given, the decay factor is FindDecayFactor(m).
func WithMultiplier(m float64) Option {
	return func(o *options) { o.multiplier = m }
}

// WithDecayFactor sets the per-octave amplitude ratio explicitly, in (0, 1].
func WithDecayFactor(d float64) Option {
	return func(o *options) { o.decayFactor, o.decaySet = d, true }
}

// FindDecayFactor derives the decay factor for multiplier m by treating the
// octave weights as a geometric series m, m·d, m·d², … with d = 1 - m.
// When 1 - m <= 0 the result is clamped to MinDecayFactor.
func FindDecayFactor(m float64) float64 {
	if 1-m <= 0 {
		return MinDecayFactor
	}

	return 1 - m
}

// gatherOptions applies opts over the defaults and validates the result.
// The octave count is checked by the octave entry points only.
// Errors:
//   - ErrBadMultiplier, ErrBadDecayFactor.
func gatherOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if math.IsNaN(o.multiplier) || o.multiplier <= 0 || o.multiplier > 1 {
		return o, ErrBadMultiplier
	}
	switch {
	case !o.decaySet:
		o.decayFactor = FindDecayFactor(o.multiplier)
	case math.IsNaN(o.decayFactor) || o.decayFactor <= 0 || o.decayFactor > 1:
		return o, ErrBadDecayFactor
	}

	return o, nil
}
