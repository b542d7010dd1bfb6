// SPDX-License-Identifier: MIT
// Package space: sentinel error set shared by every lvlimg package.
// Algorithms and constructors return these sentinels (optionally wrapped
// with call-site context) and tests check them via errors.Is.

package space

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "lvlimg: ..." so that errors coming out of
// any package (storage, view, oob, ...) grep the same way. Wrap with
// fmt.Errorf("ctx: %w", ErrX) when call-site context helps.

var (
	// ErrDimensionMismatch indicates operands of differing dimensionality,
	// e.g. translating a 2-D box by a 3-D vector.
	ErrDimensionMismatch = errors.New("lvlimg: dimension mismatch")

	// ErrOutOfRange indicates an axis index d outside [0, n).
	ErrOutOfRange = errors.New("lvlimg: axis out of range")

	// ErrMalformedInterval indicates min[d] > max[d] on some axis, or min and
	// max vectors of different length.
	ErrMalformedInterval = errors.New("lvlimg: malformed interval")

	// ErrDegenerateInterval indicates an interval with a zero-extent axis
	// where a strategy needs at least one element per axis.
	ErrDegenerateInterval = errors.New("lvlimg: degenerate interval")

	// ErrExhausted indicates a cursor was advanced past its last element.
	ErrExhausted = errors.New("lvlimg: iteration exhausted")

	// ErrUnsupportedBacking indicates a storage layout, element kind or view
	// step the receiving component does not recognize.
	ErrUnsupportedBacking = errors.New("lvlimg: unsupported backing")

	// ErrInvalidDimensions indicates a shape with no axes or a non-positive
	// extent.
	ErrInvalidDimensions = errors.New("lvlimg: dimensions must be >= 1")

	// ErrNilSource indicates a nil source was handed to a view or operation.
	ErrNilSource = errors.New("lvlimg: nil source")
)
