// SPDX-License-Identifier: MIT

package storage

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/space"
)

// flatState is the position bookkeeping shared by cursors that walk a shape
// in flat order: a linear index and, for localizing cursors, an eagerly
// maintained position vector. Fast cursors derive positions from the index
// on demand.
type flatState struct {
	dims  []int64
	steps []int64
	last  int64
	index int64   // -1 before the first step
	pos   []int64 // nil for fast cursors
	err   error
}

func newFlatState(dims, steps []int64, localizing bool) flatState {
	s := flatState{dims: dims, steps: steps, last: product(dims) - 1}
	if localizing {
		s.pos = make([]int64, len(dims))
	}
	s.Reset()

	return s
}

// NumDimensions returns n.
func (s *flatState) NumDimensions() int { return len(s.dims) }

// HasNext reports whether another element remains.
func (s *flatState) HasNext() bool { return s.index < s.last }

// Reset returns to the pre-first position and clears Err.
func (s *flatState) Reset() {
	s.index = -1
	s.err = nil
	if s.pos != nil {
		clear(s.pos)
		s.pos[0] = -1
	}
}

// Err reports iteration past the end.
func (s *flatState) Err() error { return s.err }

// Position returns the coordinate on axis d.
func (s *flatState) Position(d int) int64 {
	if s.pos != nil {
		return s.pos[d]
	}
	if s.index < 0 {
		return 0
	}

	return (s.index / s.steps[d]) % s.dims[d]
}

// Localize writes the current position into out.
func (s *flatState) Localize(out []int64) {
	if s.pos != nil {
		copy(out, s.pos)
		return
	}
	indexToPosition(max(s.index, 0), s.dims, out)
}

// step advances one element; false when exhausted.
func (s *flatState) step() bool {
	if s.index >= s.last {
		s.exhausted()
		return false
	}
	s.index++
	if s.pos != nil {
		s.pos[0]++
		for d := 0; d < len(s.dims)-1 && s.pos[d] == s.dims[d]; d++ {
			s.pos[d] = 0
			s.pos[d+1]++
		}
	}

	return true
}

// jump advances n elements; false when that would pass the end.
func (s *flatState) jump(n int64) bool {
	if n < 1 {
		return false
	}
	if s.index+n > s.last {
		s.exhausted()
		return false
	}
	s.index += n
	if s.pos != nil {
		indexToPosition(s.index, s.dims, s.pos)
	}

	return true
}

func (s *flatState) exhausted() {
	if s.err == nil {
		s.err = fmt.Errorf("storage: cursor after %d elements: %w", s.last+1, space.ErrExhausted)
	}
}

func (s *flatState) clone() flatState {
	c := *s
	if s.pos != nil {
		c.pos = append([]int64(nil), s.pos...)
	}

	return c
}

// stepsOf returns row-major strides for dims (axis 0 fastest).
func stepsOf(dims []int64) []int64 {
	steps := make([]int64, len(dims))
	var acc int64 = 1
	for d, s := range dims {
		steps[d] = acc
		acc *= s
	}

	return steps
}

// product is the element count of a shape that passed space.ValidateShape,
// so it cannot overflow.
func product(dims []int64) int64 {
	var p int64 = 1
	for _, s := range dims {
		p *= s
	}

	return p
}

// indexToPosition decomposes a flat index over dims into out.
func indexToPosition(i int64, dims, out []int64) {
	for d, s := range dims {
		out[d] = i % s
		i /= s
	}
}

// positionToIndex folds pos into a flat index with the given strides.
func positionToIndex(pos, steps []int64) int64 {
	var i int64
	for d, s := range steps {
		i += pos[d] * s
	}

	return i
}
