// SPDX-License-Identifier: MIT

package access

import "github.com/katalvlaran/lvlimg/space"

// Sampler reads and writes the element under an accessor.
type Sampler[T any] interface {
	// Get returns the element at the current position.
	Get() T
	// Set stores v at the current position (write-through to storage).
	Set(v T)
}

// RandomAccess is a positionable accessor.
//
// Direct (storage) random accesses positioned outside their storage bounds
// are the caller's responsibility: Get/Set may panic or alias another
// element. Out-of-bounds wrappers (package oob) are defined everywhere.
type RandomAccess[T any] interface {
	space.Localizable
	space.Positionable
	Sampler[T]

	// Copy returns an independent accessor at the same position over the
	// same source.
	Copy() RandomAccess[T]
}

// Cursor enumerates every position of an interval exactly once.
//
// State machine: after creation or Reset the cursor sits before the first
// element; each Fwd moves one step; once HasNext is false a further Fwd
// records ErrExhausted (reported by Err) and leaves the cursor on its last
// element.
type Cursor[T any] interface {
	space.Localizable
	Sampler[T]

	// HasNext reports whether at least one more element remains.
	HasNext() bool
	// Fwd advances one step.
	Fwd()
	// JumpFwd advances by steps (>= 1) at once.
	JumpFwd(steps int64)
	// Next advances one step and returns the element there.
	Next() T
	// Reset returns the cursor to the pre-first position and clears Err.
	Reset()
	// Err returns ErrExhausted (wrapped) once the cursor has been advanced
	// past its last element, nil otherwise.
	Err() error
	// Copy returns an independent cursor at the exact same position.
	Copy() Cursor[T]
}

// RandomAccessible can hand out random accesses.
type RandomAccessible[T any] interface {
	space.Dimensioned

	// RandomAccess returns an accessor valid everywhere the source is defined.
	RandomAccess() RandomAccess[T]
	// RandomAccessIn returns an accessor that only promises to be valid
	// inside iv. Sources may use the hint to pick a cheaper accessor.
	RandomAccessIn(iv space.Interval) RandomAccess[T]
}

// RandomAccessibleInterval is a RandomAccessible with declared bounds.
type RandomAccessibleInterval[T any] interface {
	RandomAccessible[T]
	space.Interval
}

// Iterable is the element-type independent part of IterableInterval, so two
// iterables of different element types can be compared for lock-step walks.
type Iterable interface {
	space.Interval

	// IterationOrder describes how cursors enumerate positions.
	IterationOrder() IterationOrder
}

// IterableInterval hands out cursors over its bounds.
type IterableInterval[T any] interface {
	Iterable

	// Cursor returns a fast (lazily localizing) cursor.
	Cursor() Cursor[T]
	// LocalizingCursor returns a cursor that tracks its position.
	LocalizingCursor() Cursor[T]
	// Size returns the number of elements.
	Size() int64
	// FirstElement returns the element a fresh cursor yields first.
	FirstElement() T
	// EqualIterationOrder reports whether this and other can be walked in
	// lock step. False is always safe; true is a correctness contract.
	EqualIterationOrder(other Iterable) bool
}
