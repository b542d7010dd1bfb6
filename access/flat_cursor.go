// SPDX-License-Identifier: MIT

package access

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/space"
)

// FlatCursor enumerates a RandomAccessibleInterval in flat order by driving
// one RandomAccess through it. It works over any source, including composed
// views and out-of-bounds extensions, and is always localizing (the
// underlying random access knows its position).
//
// The first Fwd places the accessor explicitly at the interval min; the
// source's default accessor position is never assumed to be the first
// element.
type FlatCursor[T any] struct {
	source RandomAccessibleInterval[T]
	ra     RandomAccess[T]
	min    []int64
	max    []int64
	last   int64 // index of the last element (size - 1)
	index  int64 // -1 before the first Fwd
	err    error
}

var _ Cursor[int] = (*FlatCursor[int])(nil)

// NewFlatCursor creates a cursor over src positioned before the first element.
// Complexity: O(n) plus the cost of src.RandomAccess().
func NewFlatCursor[T any](src RandomAccessibleInterval[T]) *FlatCursor[T] {
	return &FlatCursor[T]{
		source: src,
		ra:     src.RandomAccess(),
		min:    space.MinOf(src),
		max:    space.MaxOf(src),
		last:   space.NumElements(src) - 1,
		index:  -1,
	}
}

// NumDimensions returns n.
func (c *FlatCursor[T]) NumDimensions() int { return len(c.min) }

// HasNext reports whether another element remains.
func (c *FlatCursor[T]) HasNext() bool { return c.index < c.last }

// Fwd advances one step in flat order, carrying into higher axes.
func (c *FlatCursor[T]) Fwd() {
	if c.index >= c.last {
		c.exhaust()
		return
	}
	c.index++
	if c.index == 0 {
		c.ra.SetPosition(c.min)
		return
	}
	c.ra.Fwd(0)
	for d := 0; d < len(c.max)-1; d++ {
		if c.ra.Position(d) <= c.max[d] {
			return
		}
		c.ra.SetPositionAt(c.min[d], d)
		c.ra.Fwd(d + 1)
	}
}

// JumpFwd advances by steps at once.
func (c *FlatCursor[T]) JumpFwd(steps int64) {
	if steps < 1 {
		return
	}
	if c.index+steps > c.last {
		c.exhaust()
		return
	}
	c.index += steps
	c.placeAt(c.index)
}

// Next advances and returns the element.
func (c *FlatCursor[T]) Next() T {
	c.Fwd()
	return c.ra.Get()
}

// Get returns the current element.
func (c *FlatCursor[T]) Get() T { return c.ra.Get() }

// Set stores v at the current position.
func (c *FlatCursor[T]) Set(v T) { c.ra.Set(v) }

// Localize writes the current position into out.
func (c *FlatCursor[T]) Localize(out []int64) { c.ra.Localize(out) }

// Position returns the coordinate on axis d.
func (c *FlatCursor[T]) Position(d int) int64 { return c.ra.Position(d) }

// Reset returns to the pre-first position.
func (c *FlatCursor[T]) Reset() {
	c.index = -1
	c.err = nil
}

// Err reports iteration past the end.
func (c *FlatCursor[T]) Err() error { return c.err }

// Copy returns an independent cursor at the same position.
func (c *FlatCursor[T]) Copy() Cursor[T] {
	return &FlatCursor[T]{
		source: c.source,
		ra:     c.ra.Copy(),
		min:    c.min,
		max:    c.max,
		last:   c.last,
		index:  c.index,
		err:    c.err,
	}
}

// placeAt positions the accessor at the flat index i.
func (c *FlatCursor[T]) placeAt(i int64) {
	for d := range c.min {
		ext := c.max[d] - c.min[d] + 1
		c.ra.SetPositionAt(c.min[d]+i%ext, d)
		i /= ext
	}
}

func (c *FlatCursor[T]) exhaust() {
	if c.err == nil {
		c.err = fmt.Errorf("FlatCursor.Fwd(after %d elements): %w", c.last+1, space.ErrExhausted)
	}
}
