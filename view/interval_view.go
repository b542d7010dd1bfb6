// SPDX-License-Identifier: MIT

package view

import (
	"sync"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
)

// IntervalView binds a source to an interval. It is a
// RandomAccessibleInterval and iterates in flat order.
//
// The accessor for the whole view is composed once on first use and then
// copied for every further RandomAccess call. RandomAccessIn always
// composes afresh.
type IntervalView[T any] struct {
	source access.RandomAccessible[T]
	box    *space.Box

	once     sync.Once
	template access.RandomAccess[T]
}

var (
	_ access.RandomAccessibleInterval[int] = (*IntervalView[int])(nil)
	_ access.IterableInterval[int]         = (*IntervalView[int])(nil)
)

func newIntervalView[T any](source access.RandomAccessible[T], box *space.Box) *IntervalView[T] {
	return &IntervalView[T]{source: source, box: box}
}

// Source returns the wrapped accessible.
func (v *IntervalView[T]) Source() access.RandomAccessible[T] { return v.source }

// NumDimensions returns n of the bounding box. The bounds accessors below
// read the box the view was cut to, not the source's.
func (v *IntervalView[T]) NumDimensions() int { return v.box.NumDimensions() }
func (v *IntervalView[T]) Min(d int) int64 { return v.box.Min(d) }
func (v *IntervalView[T]) Max(d int) int64 { return v.box.Max(d) }
func (v *IntervalView[T]) Dimension(d int) int64 { return v.box.Dimension(d) }

// RandomAccess returns a copy of the memoized accessor template.
func (v *IntervalView[T]) RandomAccess() access.RandomAccess[T] {
	v.once.Do(func() {
		v.template = compose[T](v, nil)
	})

	return v.template.Copy()
}

// RandomAccessIn composes an accessor for use inside iv. iv must be non-nil
// and have the view's dimensionality; otherwise it panics with a wrapped
// space.ErrNilSource or space.ErrDimensionMismatch.
func (v *IntervalView[T]) RandomAccessIn(iv space.Interval) access.RandomAccess[T] {
	checkHint("IntervalView.RandomAccessIn", v.NumDimensions(), iv)

	return compose[T](v, iv)
}

// Cursor and LocalizingCursor walk the box in flat order through a single
// composed accessor. Both are O(1) per step.
func (v *IntervalView[T]) Cursor() access.Cursor[T] { return access.NewFlatCursor[T](v) }
func (v *IntervalView[T]) LocalizingCursor() access.Cursor[T] { return access.NewFlatCursor[T](v) }
// Size is the element count of the box.
func (v *IntervalView[T]) Size() int64 { return space.NumElements(v.box) }

// FirstElement steps a fresh cursor once.
func (v *IntervalView[T]) FirstElement() T { return v.Cursor().Next() }

// IterationOrder is flat over the box.
func (v *IntervalView[T]) IterationOrder() access.IterationOrder {
	return access.NewFlatIterationOrder(v.box)
}

// EqualIterationOrder reports whether other visits the same positions in
// the same order.
func (v *IntervalView[T]) EqualIterationOrder(other access.Iterable) bool {
	return access.EqualIterationOrder(v, other)
}
