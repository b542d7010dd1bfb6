// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
)

// Fill sets every element of dst to v.
//
// Errors: space.ErrNilSource.
func Fill[T any](dst access.IterableInterval[T], v T) error {
	if dst == nil {
		return fmt.Errorf("ops: Fill: %w", space.ErrNilSource)
	}
	c := dst.Cursor()
	for c.HasNext() {
		c.Fwd()
		c.Set(v)
	}

	return c.Err()
}

// Copy writes every element of src into dst at the same relative position
// (offset by the difference of the interval mins). When src iterates in the
// same order as dst both are walked in lock step; otherwise dst is walked
// and src is read through a random access.
//
// Errors: space.ErrNilSource, space.ErrDimensionMismatch if the shapes
// differ.
func Copy[T any](src access.RandomAccessibleInterval[T], dst access.IterableInterval[T]) error {
	if src == nil || dst == nil {
		return fmt.Errorf("ops: Copy: %w", space.ErrNilSource)
	}
	if !space.EqualDimensions(src, dst) {
		return fmt.Errorf("ops: Copy(%v → %v): %w", space.BoxOf(src), space.BoxOf(dst), space.ErrDimensionMismatch)
	}

	if it, ok := src.(access.IterableInterval[T]); ok && it.EqualIterationOrder(dst) {
		tracer().Debugf("ops: copy %v in lock step", space.BoxOf(dst))
		in, out := it.Cursor(), dst.Cursor()
		for out.HasNext() {
			out.Fwd()
			out.Set(in.Next())
		}

		return out.Err()
	}

	tracer().Debugf("ops: copy %v through random access", space.BoxOf(dst))
	n := dst.NumDimensions()
	shift := make([]int64, n)
	for d := 0; d < n; d++ {
		shift[d] = src.Min(d) - dst.Min(d)
	}
	ra := src.RandomAccessIn(src)
	out := dst.LocalizingCursor()
	pos := make([]int64, n)
	for out.HasNext() {
		out.Fwd()
		out.Localize(pos)
		for d := range pos {
			pos[d] += shift[d]
		}
		ra.SetPosition(pos)
		out.Set(ra.Get())
	}

	return out.Err()
}
