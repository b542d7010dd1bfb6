// SPDX-License-Identifier: MIT

package view

import (
	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/transform"
)

// translationAccess reads the source at x + offset. It keeps no position of
// its own; the source accessor is the position.
type translationAccess[T any] struct {
	src    access.RandomAccess[T]
	offset []int64
}

func newTranslationAccess[T any](src access.RandomAccess[T], m *transform.Mixed) *translationAccess[T] {
	return &translationAccess[T]{src: src, offset: m.TranslationVector()}
}

func (r *translationAccess[T]) NumDimensions() int { return len(r.offset) }
func (r *translationAccess[T]) Position(d int) int64 { return r.src.Position(d) - r.offset[d] }
func (r *translationAccess[T]) Get() T { return r.src.Get() }
func (r *translationAccess[T]) Set(v T) { r.src.Set(v) }
func (r *translationAccess[T]) Fwd(d int) { r.src.Fwd(d) }
func (r *translationAccess[T]) Bck(d int) { r.src.Bck(d) }
func (r *translationAccess[T]) Move(distance int64, d int) { r.src.Move(distance, d) }
func (r *translationAccess[T]) MoveBy(distance []int64) { r.src.MoveBy(distance) }
func (r *translationAccess[T]) SetPositionAt(v int64, d int) { r.src.SetPositionAt(v+r.offset[d], d) }

func (r *translationAccess[T]) Localize(out []int64) {
	r.src.Localize(out)
	for d, o := range r.offset {
		out[d] -= o
	}
}

func (r *translationAccess[T]) SetPosition(pos []int64) {
	for d, o := range r.offset {
		r.src.SetPositionAt(pos[d]+o, d)
	}
}

func (r *translationAccess[T]) Copy() access.RandomAccess[T] {
	return &translationAccess[T]{src: r.src.Copy(), offset: r.offset}
}

// mixedAccess keeps the target position and moves the source along the
// permuted, possibly inverted axis. The per-axis tables are indexed by
// target axis.
type mixedAccess[T any] struct {
	src     access.RandomAccess[T]
	srcAxis []int   // source axis driven by target axis e
	sign    []int64 // +1 or -1
	offset  []int64 // translation of srcAxis[e]
	pos     []int64
}

func newMixedAccess[T any](src access.RandomAccess[T], m *transform.Mixed) *mixedAccess[T] {
	n := m.NumDimensions()
	r := &mixedAccess[T]{
		src:     src,
		srcAxis: make([]int, n),
		sign:    make([]int64, n),
		offset:  make([]int64, n),
		pos:     make([]int64, n),
	}
	for d := 0; d < n; d++ {
		e := m.Component(d)
		r.srcAxis[e] = d
		r.sign[e] = 1
		if m.Inverted(d) {
			r.sign[e] = -1
		}
		r.offset[e] = m.TranslationAt(d)
	}
	r.SetPosition(r.pos)

	return r
}

func (r *mixedAccess[T]) NumDimensions() int { return len(r.pos) }
func (r *mixedAccess[T]) Localize(out []int64) { copy(out, r.pos) }
func (r *mixedAccess[T]) Position(d int) int64 { return r.pos[d] }
func (r *mixedAccess[T]) Get() T { return r.src.Get() }
func (r *mixedAccess[T]) Set(v T) { r.src.Set(v) }

func (r *mixedAccess[T]) Fwd(e int) {
	r.pos[e]++
	if r.sign[e] > 0 {
		r.src.Fwd(r.srcAxis[e])
	} else {
		r.src.Bck(r.srcAxis[e])
	}
}

func (r *mixedAccess[T]) Bck(e int) {
	r.pos[e]--
	if r.sign[e] > 0 {
		r.src.Bck(r.srcAxis[e])
	} else {
		r.src.Fwd(r.srcAxis[e])
	}
}

func (r *mixedAccess[T]) Move(distance int64, e int) {
	r.pos[e] += distance
	r.src.Move(r.sign[e]*distance, r.srcAxis[e])
}

func (r *mixedAccess[T]) MoveBy(distance []int64) {
	for e := range r.pos {
		r.Move(distance[e], e)
	}
}

func (r *mixedAccess[T]) SetPositionAt(value int64, e int) {
	r.pos[e] = value
	r.src.SetPositionAt(r.offset[e]+r.sign[e]*value, r.srcAxis[e])
}

func (r *mixedAccess[T]) SetPosition(pos []int64) {
	for e := range r.pos {
		r.SetPositionAt(pos[e], e)
	}
}

func (r *mixedAccess[T]) Copy() access.RandomAccess[T] {
	cp := *r
	cp.src = r.src.Copy()
	cp.pos = append([]int64(nil), r.pos...)

	return &cp
}
