// SPDX-License-Identifier: MIT

// Package space defines the position and interval model of lvlimg.
//
// What & Why:
//
//	Every image, view and accessor in lvlimg lives in discrete n-dimensional
//	space. This package holds the value types (Point, RealPoint, Box) and the
//	capability traits (Dimensioned, Localizable, Positionable, Interval) that
//	the rest of the module is written against.
//
// Conventions:
//   - Dimensionality n is fixed at construction; binary operations require
//     matching n and fail with ErrDimensionMismatch otherwise.
//   - Intervals are inclusive: Dimension(d) = Max(d) - Min(d) + 1 >= 1.
//   - Checked accessors (Point.Get/Set, Box.Axis) return ErrOutOfRange for an
//     axis outside [0,n). The trait methods (Position, Min, Max, ...) are the
//     hot path and treat a valid axis as a precondition.
//   - Arithmetic (Translate, Add, Intersect, ...) returns new values; the
//     receiver is never mutated.
//
// Complexity:
//
//	All per-axis accessors are O(1); vector operations are O(n).
package space
