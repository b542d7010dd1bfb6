// SPDX-License-Identifier: MIT

// Package space - Box, the immutable Interval value.
//
// Purpose:
//   - Provide the one concrete Interval implementation used by views and
//     storage to describe bounds.
//   - Enforce min[d] <= max[d] once, at construction; a Box is never mutated
//     afterwards, so derived boxes (Translate, Intersect, ...) are new values.

package space

import (
	"fmt"
	"math"
	"strings"
)

// Box is an inclusive axis-aligned interval. Immutable after construction.
type Box struct {
	min, max []int64
}

var _ Interval = (*Box)(nil)

// NewBox creates the interval [min, max] (inclusive). Both vectors are copied.
//
// Implementation:
//   - Stage 1: lengths must match and be >= 1, else ErrMalformedInterval.
//   - Stage 2: every axis must satisfy min[d] <= max[d], else ErrMalformedInterval.
//   - Stage 3: every extent and the element count must fit in int64, else
//     ErrMalformedInterval.
//
// Complexity: O(n).
func NewBox(min, max []int64) (*Box, error) {
	if len(min) != len(max) || len(min) == 0 {
		return nil, fmt.Errorf("NewBox(len %d/%d): %w", len(min), len(max), ErrMalformedInterval)
	}
	for d := range min {
		if min[d] > max[d] {
			return nil, fmt.Errorf("NewBox: axis %d min %d > max %d: %w", d, min[d], max[d], ErrMalformedInterval)
		}
		// max-min wraps negative, or +1 wraps, past int64
		if span := max[d] - min[d]; span < 0 || span == math.MaxInt64 {
			return nil, fmt.Errorf("NewBox: axis %d extent overflows int64: %w", d, ErrMalformedInterval)
		}
	}
	b := &Box{min: make([]int64, len(min)), max: make([]int64, len(max))}
	copy(b.min, min)
	copy(b.max, max)
	if _, ok := countElements(b); !ok {
		return nil, fmt.Errorf("NewBox(%v): element count overflows int64: %w", b, ErrMalformedInterval)
	}

	return b, nil
}

// BoxOfSize creates the interval [0, dims-1] on every axis.
// Returns ErrInvalidDimensions for an empty or non-positive shape.
func BoxOfSize(dims ...int64) (*Box, error) {
	if err := ValidateShape(dims); err != nil {
		return nil, fmt.Errorf("BoxOfSize: %w", err)
	}
	b := &Box{min: make([]int64, len(dims)), max: make([]int64, len(dims))}
	for d, s := range dims {
		b.max[d] = s - 1
	}

	return b, nil
}

// BoxOf snapshots any Interval into a Box. If iv already is a *Box it is
// returned as is (boxes are immutable).
func BoxOf(iv Interval) *Box {
	if b, ok := iv.(*Box); ok {
		return b
	}
	n := iv.NumDimensions()
	b := &Box{min: make([]int64, n), max: make([]int64, n)}
	for d := 0; d < n; d++ {
		b.min[d] = iv.Min(d)
		b.max[d] = iv.Max(d)
	}

	return b
}

// NumDimensions returns n.
func (b *Box) NumDimensions() int { return len(b.min) }

// Min returns the lower bound on axis d.
func (b *Box) Min(d int) int64 { return b.min[d] }

// Max returns the upper bound on axis d.
func (b *Box) Max(d int) int64 { return b.max[d] }

// Dimension returns the number of positions on axis d.
func (b *Box) Dimension(d int) int64 { return b.max[d] - b.min[d] + 1 }

// Axis returns (min, max) on axis d or ErrOutOfRange.
func (b *Box) Axis(d int) (min, max int64, err error) {
	if err = ValidateAxis(len(b.min), d); err != nil {
		return 0, 0, fmt.Errorf("Box.Axis: %w", err)
	}

	return b.min[d], b.max[d], nil
}

// Translate returns the box shifted by delta.
// Returns ErrDimensionMismatch if len(delta) != n.
func (b *Box) Translate(delta []int64) (*Box, error) {
	if err := ValidateVecLen(delta, len(b.min)); err != nil {
		return nil, fmt.Errorf("Box.Translate: %w", err)
	}
	out := &Box{min: make([]int64, len(b.min)), max: make([]int64, len(b.max))}
	for d := range b.min {
		out.min[d] = b.min[d] + delta[d]
		out.max[d] = b.max[d] + delta[d]
	}

	return out, nil
}

// String formats the box as "[0..9 x 0..4]".
func (b *Box) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for d := range b.min {
		if d > 0 {
			sb.WriteString(" x ")
		}
		fmt.Fprintf(&sb, "%d..%d", b.min[d], b.max[d])
	}
	sb.WriteByte(']')

	return sb.String()
}
