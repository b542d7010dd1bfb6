// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"math"
)

// RoundPositioner moves through real space and keeps a discrete target
// (typically a RandomAccess) on the nearest integer position. Halves round
// away from zero, as RealPoint.Round does.
//
// The real position is owned by the RoundPositioner; moving the target
// directly desynchronizes the two until the next SetPosition.
type RoundPositioner struct {
	position []float64
	target   Positionable
}

// NewRoundPositioner starts at start and places target at its rounding.
//
// Errors: ErrNilSource, ErrDimensionMismatch.
// Complexity: O(n).
func NewRoundPositioner(target Positionable, start *RealPoint) (*RoundPositioner, error) {
	if isNil(target) || start == nil {
		return nil, fmt.Errorf("NewRoundPositioner: %w", ErrNilSource)
	}
	if err := ValidateSameDimensions(target, start); err != nil {
		return nil, fmt.Errorf("NewRoundPositioner: %w", err)
	}
	r := &RoundPositioner{position: make([]float64, start.NumDimensions()), target: target}
	r.SetPosition(start.position)

	return r, nil
}

// NumDimensions returns n.
func (r *RoundPositioner) NumDimensions() int { return len(r.position) }

// Target returns the discrete positionable being driven.
func (r *RoundPositioner) Target() Positionable { return r.target }

// Position returns the real coordinate on axis d.
func (r *RoundPositioner) Position(d int) float64 { return r.position[d] }

// Localize writes the real position into out (len(out) >= n).
func (r *RoundPositioner) Localize(out []float64) { copy(out, r.position) }

// RealPoint snapshots the real position.
func (r *RoundPositioner) RealPoint() *RealPoint { return RealPointOf(r.position...) }

// Fwd moves one unit forward on axis d.
func (r *RoundPositioner) Fwd(d int) { r.Move(1, d) }

// Bck moves one unit backward on axis d.
func (r *RoundPositioner) Bck(d int) { r.Move(-1, d) }

// Move moves by distance on axis d.
func (r *RoundPositioner) Move(distance float64, d int) {
	r.SetPositionAt(r.position[d]+distance, d)
}

// MoveBy moves by distance[d] on every axis.
func (r *RoundPositioner) MoveBy(distance []float64) {
	for d := range r.position {
		r.SetPositionAt(r.position[d]+distance[d], d)
	}
}

// SetPosition places the real position at pos (len(pos) >= n).
func (r *RoundPositioner) SetPosition(pos []float64) {
	for d := range r.position {
		r.SetPositionAt(pos[d], d)
	}
}

// SetPositionAt sets the real coordinate on axis d and moves the target to
// its rounding.
func (r *RoundPositioner) SetPositionAt(value float64, d int) {
	r.position[d] = value
	r.target.SetPositionAt(int64(math.Round(value)), d)
}
