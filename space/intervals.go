// SPDX-License-Identifier: MIT

package space

import "fmt"

// MinOf returns a copy of the lower bound vector of iv.
func MinOf(iv Interval) []int64 {
	out := make([]int64, iv.NumDimensions())
	for d := range out {
		out[d] = iv.Min(d)
	}

	return out
}

// MaxOf returns a copy of the upper bound vector of iv.
func MaxOf(iv Interval) []int64 {
	out := make([]int64, iv.NumDimensions())
	for d := range out {
		out[d] = iv.Max(d)
	}

	return out
}

// DimensionsOf returns the extent of iv on every axis.
func DimensionsOf(iv Interval) []int64 {
	out := make([]int64, iv.NumDimensions())
	for d := range out {
		out[d] = iv.Dimension(d)
	}

	return out
}

// NumElements returns the number of positions inside iv.
//
// iv must pass ValidateInterval; every Box and storage image does. A count
// beyond int64 panics with a wrapped ErrInvalidDimensions.
func NumElements(iv Interval) int64 {
	count, ok := countElements(iv)
	if !ok {
		panic(fmt.Errorf("NumElements(%v): %w", BoxOf(iv), ErrInvalidDimensions))
	}

	return count
}

// Contains reports whether pos lies inside iv. A pos of the wrong length is
// never contained.
func Contains(iv Interval, pos []int64) bool {
	if len(pos) != iv.NumDimensions() {
		return false
	}
	for d, p := range pos {
		if p < iv.Min(d) || p > iv.Max(d) {
			return false
		}
	}

	return true
}

// ContainsInterval reports whether inner lies completely inside outer.
func ContainsInterval(outer, inner Interval) bool {
	if outer.NumDimensions() != inner.NumDimensions() {
		return false
	}
	for d := 0; d < outer.NumDimensions(); d++ {
		if inner.Min(d) < outer.Min(d) || inner.Max(d) > outer.Max(d) {
			return false
		}
	}

	return true
}

// EqualIntervals reports whether a and b have identical bounds.
func EqualIntervals(a, b Interval) bool {
	if a.NumDimensions() != b.NumDimensions() {
		return false
	}
	for d := 0; d < a.NumDimensions(); d++ {
		if a.Min(d) != b.Min(d) || a.Max(d) != b.Max(d) {
			return false
		}
	}

	return true
}

// EqualDimensions reports whether a and b have identical extents, regardless
// of where they sit in space.
func EqualDimensions(a, b Interval) bool {
	if a.NumDimensions() != b.NumDimensions() {
		return false
	}
	for d := 0; d < a.NumDimensions(); d++ {
		if a.Dimension(d) != b.Dimension(d) {
			return false
		}
	}

	return true
}

// Intersect returns the overlap of a and b.
// Returns ErrDimensionMismatch for differing n and ErrMalformedInterval when
// the overlap is empty (an empty interval cannot be represented).
func Intersect(a, b Interval) (*Box, error) {
	if err := ValidateSameDimensions(a, b); err != nil {
		return nil, fmt.Errorf("Intersect: %w", err)
	}
	n := a.NumDimensions()
	min, max := make([]int64, n), make([]int64, n)
	for d := 0; d < n; d++ {
		min[d] = maxInt64(a.Min(d), b.Min(d))
		max[d] = minInt64(a.Max(d), b.Max(d))
	}

	return NewBox(min, max)
}

// Union returns the smallest box containing both a and b.
func Union(a, b Interval) (*Box, error) {
	if err := ValidateSameDimensions(a, b); err != nil {
		return nil, fmt.Errorf("Union: %w", err)
	}
	n := a.NumDimensions()
	min, max := make([]int64, n), make([]int64, n)
	for d := 0; d < n; d++ {
		min[d] = minInt64(a.Min(d), b.Min(d))
		max[d] = maxInt64(a.Max(d), b.Max(d))
	}

	return NewBox(min, max)
}

// Expand grows iv by border[d] on both sides of every axis. Negative borders
// shrink; shrinking past empty yields ErrMalformedInterval.
func Expand(iv Interval, border []int64) (*Box, error) {
	if err := ValidateVecLen(border, iv.NumDimensions()); err != nil {
		return nil, fmt.Errorf("Expand: %w", err)
	}
	min, max := MinOf(iv), MaxOf(iv)
	for d := range min {
		min[d] -= border[d]
		max[d] += border[d]
	}

	return NewBox(min, max)
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}

// FlatIndex returns the rank of pos in the flat order of iv (axis 0 fastest,
// starting at 0 for the min corner). pos must lie inside iv.
func FlatIndex(iv Interval, pos []int64) int64 {
	idx, step := int64(0), int64(1)
	for d := 0; d < iv.NumDimensions(); d++ {
		idx += (pos[d] - iv.Min(d)) * step
		step *= iv.Dimension(d)
	}

	return idx
}

// FlatPosition is the inverse of FlatIndex; the position is written to out.
func FlatPosition(iv Interval, idx int64, out []int64) {
	for d := 0; d < iv.NumDimensions(); d++ {
		dim := iv.Dimension(d)
		out[d] = iv.Min(d) + idx%dim
		idx /= dim
	}
}
