// SPDX-License-Identifier: MIT

package space

// Dimensioned is anything embedded in n-dimensional space.
type Dimensioned interface {
	// NumDimensions returns n. Constant for the lifetime of the value.
	NumDimensions() int
}

// Localizable reports a discrete position.
type Localizable interface {
	Dimensioned

	// Localize writes the current position into out (len(out) >= n).
	Localize(out []int64)

	// Position returns the coordinate on axis d.
	Position(d int) int64
}

// Positionable can be moved around discrete space. Moves never fail:
// boundedness is not a property of a position.
type Positionable interface {
	Dimensioned

	// Fwd moves one step forward on axis d.
	Fwd(d int)
	// Bck moves one step backward on axis d.
	Bck(d int)
	// Move moves by distance on axis d.
	Move(distance int64, d int)
	// MoveBy moves by distance[d] on every axis.
	MoveBy(distance []int64)
	// SetPosition places the position at pos (len(pos) >= n).
	SetPosition(pos []int64)
	// SetPositionAt sets the coordinate on axis d.
	SetPositionAt(value int64, d int)
}

// Interval is an axis-aligned box with inclusive integer bounds.
//
// Complexity: all methods are expected O(1).
type Interval interface {
	Dimensioned

	// Min returns the smallest coordinate on axis d.
	Min(d int) int64
	// Max returns the largest coordinate on axis d.
	Max(d int) int64
	// Dimension returns Max(d) - Min(d) + 1.
	Dimension(d int) int64
}

// SetPositionFrom moves dst to the position of src, axis by axis.
func SetPositionFrom(dst Positionable, src Localizable) {
	for d := 0; d < dst.NumDimensions(); d++ {
		dst.SetPositionAt(src.Position(d), d)
	}
}
