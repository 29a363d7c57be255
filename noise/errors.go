// SPDX-License-Identifier: MIT
// Package noise: sentinel error set.
//
// Every validation failure matches ErrInvalidArgument via errors.Is, and also
// a specific sentinel below. Validation runs before any allocation or lattice
// work, so a failed call leaves caller buffers untouched.

package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella kind for rejected requests.
var ErrInvalidArgument = errors.New("noise: invalid argument")

var (
	// ErrBadShape indicates an empty shape, more than three axes, or a
	// non-positive axis size.
	ErrBadShape = invalid("noise: invalid shape")

	// ErrBadScale indicates a non-positive scale on some axis.
	ErrBadScale = invalid("noise: scale must be > 0")

	// ErrScaleMismatch indicates that scale and shape have different lengths.
	ErrScaleMismatch = invalid("noise: scale and shape rank differ")

	// ErrBadOctaves indicates a non-positive octave count.
	ErrBadOctaves = invalid("noise: octave count must be > 0")

	// ErrBadMultiplier indicates a multiplier outside (0, 1].
	ErrBadMultiplier = invalid("noise: multiplier must be in (0, 1]")

	// ErrBadDecayFactor indicates an explicit decay factor outside (0, 1].
	ErrBadDecayFactor = invalid("noise: decay factor must be in (0, 1]")

	// ErrNilGrid indicates a nil destination grid.
	ErrNilGrid = invalid("noise: destination grid is nil")
)

// kindError carries its own message and reports ErrInvalidArgument as its kind.
type kindError struct{ msg string }

func invalid(msg string) error { return &kindError{msg: msg} }

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == ErrInvalidArgument }

// noiseErrorf attaches method context to a sentinel.
func noiseErrorf(method string, err error) error {
	return fmt.Errorf("noise.%s: %w", method, err)
}
