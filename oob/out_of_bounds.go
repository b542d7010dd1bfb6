// SPDX-License-Identifier: MIT

package oob

import (
	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
)

// OutOfBounds is a random access defined over all of integer space. It
// keeps its own position and moves the wrapped source accessor to the
// remapped coordinate of every axis.
type OutOfBounds[T any] struct {
	src    access.RandomAccess[T]
	policy Policy
	value  T

	min, max, ext []int64

	pos     []int64
	out     []bool // per axis: position outside [min, max]
	outAxes int
}

var _ access.RandomAccess[int] = (*OutOfBounds[int])(nil)

func newOutOfBounds[T any](src access.RandomAccessibleInterval[T], policy Policy, value T) *OutOfBounds[T] {
	n := src.NumDimensions()
	o := &OutOfBounds[T]{
		src:    src.RandomAccess(),
		policy: policy,
		value:  value,
		min:    space.MinOf(src),
		max:    space.MaxOf(src),
		ext:    space.DimensionsOf(src),
		pos:    make([]int64, n),
		out:    make([]bool, n),
	}
	for d := 0; d < n; d++ {
		o.update(d)
	}

	return o
}

// Policy reports the strategy in effect.
func (o *OutOfBounds[T]) Policy() Policy { return o.policy }

// IsOutOfBounds reports whether any axis is outside the source interval.
func (o *OutOfBounds[T]) IsOutOfBounds() bool { return o.outAxes > 0 }

// NumDimensions returns n.
func (o *OutOfBounds[T]) NumDimensions() int { return len(o.pos) }

// Localize writes the unremapped position into out.
func (o *OutOfBounds[T]) Localize(out []int64) { copy(out, o.pos) }

// Position returns the unremapped coordinate on axis d.
func (o *OutOfBounds[T]) Position(d int) int64 { return o.pos[d] }

// Get returns the constant outside for PolicyConstant and the remapped
// source element otherwise.
func (o *OutOfBounds[T]) Get() T {
	if o.outAxes > 0 && o.policy == PolicyConstant {
		return o.value
	}

	return o.src.Get()
}

// Set writes through to the remapped source element. Writes outside a
// constant extension are discarded.
func (o *OutOfBounds[T]) Set(v T) {
	if o.outAxes > 0 && o.policy == PolicyConstant {
		return
	}
	o.src.Set(v)
}

// Fwd moves one step forward on axis d. While the axis stays inside the
// source the source accessor is stepped directly.
//
// Complexity: O(1).
func (o *OutOfBounds[T]) Fwd(d int) {
	o.pos[d]++
	if !o.out[d] && o.pos[d] <= o.max[d] {
		o.src.Fwd(d)
		return
	}
	o.update(d)
}

// Bck moves one step backward on axis d.
//
// Complexity: O(1).
func (o *OutOfBounds[T]) Bck(d int) {
	o.pos[d]--
	if !o.out[d] && o.pos[d] >= o.min[d] {
		o.src.Bck(d)
		return
	}
	o.update(d)
}

// Move moves by distance on axis d. A move that starts and ends inside the
// source is forwarded as is; any other move remaps the axis.
//
// Complexity: O(1).
func (o *OutOfBounds[T]) Move(distance int64, d int) {
	o.pos[d] += distance
	if !o.out[d] && o.pos[d] >= o.min[d] && o.pos[d] <= o.max[d] {
		o.src.Move(distance, d)
		return
	}
	o.update(d)
}

// MoveBy moves by distance[d] on every axis.
func (o *OutOfBounds[T]) MoveBy(distance []int64) {
	for d := range o.pos {
		o.Move(distance[d], d)
	}
}

// SetPosition places the accessor at pos and remaps every axis.
//
// Complexity: O(n).
func (o *OutOfBounds[T]) SetPosition(pos []int64) {
	for d := range o.pos {
		o.pos[d] = pos[d]
		o.update(d)
	}
}

// SetPositionAt sets and remaps the coordinate on axis d.
func (o *OutOfBounds[T]) SetPositionAt(value int64, d int) {
	o.pos[d] = value
	o.update(d)
}

// Copy returns an independent accessor at the same position.
func (o *OutOfBounds[T]) Copy() access.RandomAccess[T] {
	cp := *o
	cp.src = o.src.Copy()
	cp.pos = append([]int64(nil), o.pos...)
	cp.out = append([]bool(nil), o.out...)

	return &cp
}

// update re-derives the out flag of axis d and repositions the source on d.
func (o *OutOfBounds[T]) update(d int) {
	p := o.pos[d]
	outside := p < o.min[d] || p > o.max[d]
	if outside != o.out[d] {
		o.out[d] = outside
		if outside {
			o.outAxes++
		} else {
			o.outAxes--
		}
	}
	if !outside {
		o.src.SetPositionAt(p, d)
		return
	}
	if o.policy != PolicyConstant {
		o.src.SetPositionAt(Remap(o.policy, p, o.min[d], o.ext[d]), d)
	}
}

// Remap maps coordinate p onto [lo, lo+ext-1] per policy. PolicyConstant
// has no mapping and returns p unchanged. ext must be >= 1.
func Remap(policy Policy, p, lo, ext int64) int64 {
	x := p - lo
	switch policy {
	case PolicyPeriodic:
		return lo + mod(x, ext)
	case PolicyBorder:
		if x < 0 {
			return lo
		}
		if x >= ext {
			return lo + ext - 1
		}

		return p
	case PolicyMirrorSingle:
		r := mod(x, 2*ext)
		if r >= ext {
			r = 2*ext - 1 - r
		}

		return lo + r
	case PolicyMirrorDouble:
		if ext == 1 {
			return lo
		}
		period := 2*ext - 2
		r := mod(x, period)
		if r >= ext {
			r = period - r
		}

		return lo + r
	}

	return p
}

// mod is the non-negative remainder.
func mod(a, n int64) int64 {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}
