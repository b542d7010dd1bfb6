// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"math"
	"strings"
)

// Point is a discrete position in n-dimensional space.
//
// A Point is Localizable and Positionable, so it can take the mutable
// position-tracking role (e.g. as a scratch position handed to
// SetPositionFrom). Arithmetic methods return new Points.
type Point struct {
	position []int64
}

// Compile-time trait conformance.
var (
	_ Localizable  = (*Point)(nil)
	_ Positionable = (*Point)(nil)
)

// NewPoint returns the origin of n-dimensional space.
// Returns ErrInvalidDimensions if n < 1.
func NewPoint(n int) (*Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewPoint(%d): %w", n, ErrInvalidDimensions)
	}

	return &Point{position: make([]int64, n)}, nil
}

// PointOf returns a Point at the given coordinates. The slice is copied.
func PointOf(position ...int64) *Point {
	p := make([]int64, len(position))
	copy(p, position)

	return &Point{position: p}
}

// PointFrom returns a Point at the current position of l.
func PointFrom(l Localizable) *Point {
	p := &Point{position: make([]int64, l.NumDimensions())}
	l.Localize(p.position)

	return p
}

// NumDimensions returns n.
func (p *Point) NumDimensions() int { return len(p.position) }

// Get returns the coordinate on axis d or ErrOutOfRange.
func (p *Point) Get(d int) (int64, error) {
	if err := ValidateAxis(len(p.position), d); err != nil {
		return 0, fmt.Errorf("Point.Get: %w", err)
	}

	return p.position[d], nil
}

// Set stores value on axis d or returns ErrOutOfRange.
func (p *Point) Set(d int, value int64) error {
	if err := ValidateAxis(len(p.position), d); err != nil {
		return fmt.Errorf("Point.Set: %w", err)
	}
	p.position[d] = value

	return nil
}

// Position returns the coordinate on axis d (unchecked).
func (p *Point) Position(d int) int64 { return p.position[d] }

// Localize copies the coordinates into out.
func (p *Point) Localize(out []int64) { copy(out, p.position) }

// Coords returns a copy of the coordinates.
func (p *Point) Coords() []int64 {
	out := make([]int64, len(p.position))
	copy(out, p.position)

	return out
}

// Fwd moves one step forward on axis d.
func (p *Point) Fwd(d int) { p.position[d]++ }

// Bck moves one step backward on axis d.
func (p *Point) Bck(d int) { p.position[d]-- }

// Move moves by distance on axis d.
func (p *Point) Move(distance int64, d int) { p.position[d] += distance }

// MoveBy moves by distance on every axis.
func (p *Point) MoveBy(distance []int64) {
	for d := range p.position {
		p.position[d] += distance[d]
	}
}

// SetPosition copies pos into the point.
func (p *Point) SetPosition(pos []int64) { copy(p.position, pos[:len(p.position)]) }

// SetPositionAt sets the coordinate on axis d.
func (p *Point) SetPositionAt(value int64, d int) { p.position[d] = value }

// Copy returns an independent Point at the same position.
func (p *Point) Copy() *Point { return PointOf(p.position...) }

// Translate returns p + delta as a new Point.
// Returns ErrDimensionMismatch if len(delta) != n.
func (p *Point) Translate(delta []int64) (*Point, error) {
	if err := ValidateVecLen(delta, len(p.position)); err != nil {
		return nil, fmt.Errorf("Point.Translate: %w", err)
	}
	out := p.Copy()
	out.MoveBy(delta)

	return out, nil
}

// Add returns p + q.
// Returns ErrNilSource for a nil q and ErrDimensionMismatch for differing n.
func (p *Point) Add(q *Point) (*Point, error) {
	if q == nil {
		return nil, fmt.Errorf("Point.Add: %w", ErrNilSource)
	}

	return p.Translate(q.position)
}

// Sub returns p - q.
// Returns ErrNilSource for a nil q and ErrDimensionMismatch for differing n.
func (p *Point) Sub(q *Point) (*Point, error) {
	if err := ValidateSameDimensions(p, q); err != nil {
		return nil, fmt.Errorf("Point.Sub: %w", err)
	}
	out := p.Copy()
	for d := range out.position {
		out.position[d] -= q.position[d]
	}

	return out, nil
}

// Equal reports whether p and q have the same dimensionality and coordinates.
func (p *Point) Equal(q *Point) bool {
	if q == nil || len(p.position) != len(q.position) {
		return false
	}
	for d := range p.position {
		if p.position[d] != q.position[d] {
			return false
		}
	}

	return true
}

// String formats the point as "(x, y, ...)".
func (p *Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for d, v := range p.position {
		if d > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(')')

	return sb.String()
}

// RealPoint is a position in real n-dimensional space.
type RealPoint struct {
	position []float64
}

// NewRealPoint returns the real origin of n-dimensional space.
func NewRealPoint(n int) (*RealPoint, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewRealPoint(%d): %w", n, ErrInvalidDimensions)
	}

	return &RealPoint{position: make([]float64, n)}, nil
}

// RealPointOf returns a RealPoint at the given coordinates. The slice is copied.
func RealPointOf(position ...float64) *RealPoint {
	p := make([]float64, len(position))
	copy(p, position)

	return &RealPoint{position: p}
}

// NumDimensions returns n.
func (p *RealPoint) NumDimensions() int { return len(p.position) }

// Get returns the coordinate on axis d or ErrOutOfRange.
func (p *RealPoint) Get(d int) (float64, error) {
	if err := ValidateAxis(len(p.position), d); err != nil {
		return 0, fmt.Errorf("RealPoint.Get: %w", err)
	}

	return p.position[d], nil
}

// Set stores value on axis d or returns ErrOutOfRange.
func (p *RealPoint) Set(d int, value float64) error {
	if err := ValidateAxis(len(p.position), d); err != nil {
		return fmt.Errorf("RealPoint.Set: %w", err)
	}
	p.position[d] = value

	return nil
}

// Translate returns p + delta as a new RealPoint.
func (p *RealPoint) Translate(delta []float64) (*RealPoint, error) {
	if len(delta) != len(p.position) {
		return nil, fmt.Errorf("RealPoint.Translate(%d != %d): %w", len(delta), len(p.position), ErrDimensionMismatch)
	}
	out := RealPointOf(p.position...)
	for d := range out.position {
		out.position[d] += delta[d]
	}

	return out, nil
}

// Round returns the nearest discrete Point (halves away from zero).
func (p *RealPoint) Round() *Point {
	out := &Point{position: make([]int64, len(p.position))}
	for d, v := range p.position {
		out.position[d] = int64(math.Round(v))
	}

	return out
}
