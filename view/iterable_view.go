// SPDX-License-Identifier: MIT

package view

import (
	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
)

// IterableView adds flat iteration to any RandomAccessibleInterval. Its
// cursors drive a random access of the source.
type IterableView[T any] struct {
	source access.RandomAccessibleInterval[T]
}

var (
	_ access.RandomAccessibleInterval[int] = (*IterableView[int])(nil)
	_ access.IterableInterval[int]         = (*IterableView[int])(nil)
)

// NumDimensions, Min, Max, Dimension and Size forward to the source.
func (v *IterableView[T]) NumDimensions() int { return v.source.NumDimensions() }
func (v *IterableView[T]) Min(d int) int64 { return v.source.Min(d) }
func (v *IterableView[T]) Max(d int) int64 { return v.source.Max(d) }
func (v *IterableView[T]) Dimension(d int) int64 { return v.source.Dimension(d) }
func (v *IterableView[T]) Size() int64 { return space.NumElements(v.source) }

// RandomAccess delegates to the source.
func (v *IterableView[T]) RandomAccess() access.RandomAccess[T] { return v.source.RandomAccess() }

// RandomAccessIn delegates to the source after checking iv like the other
// views do.
func (v *IterableView[T]) RandomAccessIn(iv space.Interval) access.RandomAccess[T] {
	checkHint("IterableView.RandomAccessIn", v.NumDimensions(), iv)

	return v.source.RandomAccessIn(iv)
}

// Cursor and LocalizingCursor walk the source bounds in flat order.
func (v *IterableView[T]) Cursor() access.Cursor[T] { return access.NewFlatCursor(v.source) }
func (v *IterableView[T]) LocalizingCursor() access.Cursor[T] { return access.NewFlatCursor(v.source) }

// FirstElement steps a fresh cursor once; the source accessor's initial
// position is not assumed to be the interval min.
func (v *IterableView[T]) FirstElement() T { return v.Cursor().Next() }

// IterationOrder is flat over the source bounds, whatever the source's own
// order is.
func (v *IterableView[T]) IterationOrder() access.IterationOrder {
	return access.NewFlatIterationOrder(v.source)
}

// EqualIterationOrder compares flat orders.
func (v *IterableView[T]) EqualIterationOrder(other access.Iterable) bool {
	return access.EqualIterationOrder(v, other)
}
