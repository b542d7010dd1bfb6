// SPDX-License-Identifier: MIT

package storage

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
)

// ArrayImg stores all elements in one flat slice, axis 0 fastest.
// The element at position p lives at Data()[sum p[d]*step[d]].
type ArrayImg[T any] struct {
	dims  []int64
	steps []int64
	data  []T
}

var _ Img[int] = (*ArrayImg[int])(nil)

// NewArrayImg allocates a zero-filled image of shape dims.
//
// Errors: space.ErrInvalidDimensions.
// Complexity: O(product(dims)).
func NewArrayImg[T any](dims ...int64) (*ArrayImg[T], error) {
	if err := space.ValidateShape(dims); err != nil {
		return nil, storageErrorf("NewArrayImg", err)
	}
	dims = append([]int64(nil), dims...)

	return &ArrayImg[T]{dims: dims, steps: stepsOf(dims), data: make([]T, product(dims))}, nil
}

// ArrayImgFrom wraps data (not copied) as an image of shape dims.
//
// Errors: space.ErrInvalidDimensions, space.ErrDimensionMismatch if
// len(data) != product(dims).
func ArrayImgFrom[T any](data []T, dims ...int64) (*ArrayImg[T], error) {
	if err := space.ValidateShape(dims); err != nil {
		return nil, storageErrorf("ArrayImgFrom", err)
	}
	if n := product(dims); int64(len(data)) != n {
		return nil, storageErrorf(fmt.Sprintf("ArrayImgFrom: %d elements for shape of %d", len(data), n),
			space.ErrDimensionMismatch)
	}
	dims = append([]int64(nil), dims...)

	return &ArrayImg[T]{dims: dims, steps: stepsOf(dims), data: data}, nil
}

// Data exposes the backing slice.
func (a *ArrayImg[T]) Data() []T { return a.data }

// Index returns the flat index of pos. No bounds check.
func (a *ArrayImg[T]) Index(pos []int64) int64 { return positionToIndex(pos, a.steps) }

// NumDimensions returns n.
func (a *ArrayImg[T]) NumDimensions() int { return len(a.dims) }

// Min is 0 on every axis; storage images always start at the origin.
func (a *ArrayImg[T]) Min(int) int64 { return 0 }

// Max returns Dimension(d) - 1.
func (a *ArrayImg[T]) Max(d int) int64 { return a.dims[d] - 1 }

// Dimension returns the extent of axis d.
func (a *ArrayImg[T]) Dimension(d int) int64 { return a.dims[d] }

// Size returns the number of elements.
func (a *ArrayImg[T]) Size() int64 { return int64(len(a.data)) }

// FirstElement returns the element at the origin.
func (a *ArrayImg[T]) FirstElement() T { return a.data[0] }

// Factory returns an array factory with default options.
func (a *ArrayImg[T]) Factory() Factory { return Factory{layout: LayoutArray, opts: defaultOptions()} }

// Cursor returns a cursor that derives its position from the flat index
// only when asked.
//
// Complexity: Fwd O(1); Localize O(n).
func (a *ArrayImg[T]) Cursor() access.Cursor[T] { return a.newCursor(false) }

// LocalizingCursor returns a cursor that tracks its position eagerly.
//
// Complexity: Fwd O(1) amortized; Localize O(n) copy.
func (a *ArrayImg[T]) LocalizingCursor() access.Cursor[T] { return a.newCursor(true) }

// IterationOrder is flat over the image shape.
func (a *ArrayImg[T]) IterationOrder() access.IterationOrder {
	return access.NewFlatIterationOrder(a)
}

// EqualIterationOrder reports whether other iterates in flat order over the
// same shape.
func (a *ArrayImg[T]) EqualIterationOrder(other access.Iterable) bool {
	return access.EqualIterationOrder(a, other)
}

// RandomAccess returns an accessor placed at the origin. Every move updates
// the position and the flat index together.
//
// Complexity: Fwd/Bck/Move O(1); SetPosition O(n).
func (a *ArrayImg[T]) RandomAccess() access.RandomAccess[T] {
	return &arrayAccess[T]{img: a, pos: make([]int64, len(a.dims))}
}

// RandomAccessIn ignores iv: every position of the buffer is equally cheap.
func (a *ArrayImg[T]) RandomAccessIn(space.Interval) access.RandomAccess[T] {
	return a.RandomAccess()
}

// Copy returns a deep copy. Shape slices are shared; they are never
// mutated after construction.
//
// Complexity: O(Size()).
func (a *ArrayImg[T]) Copy() Img[T] {
	return &ArrayImg[T]{dims: a.dims, steps: a.steps, data: append([]T(nil), a.data...)}
}

func (a *ArrayImg[T]) newCursor(localizing bool) *arrayCursor[T] {
	return &arrayCursor[T]{flatState: newFlatState(a.dims, a.steps, localizing), data: a.data}
}

// arrayAccess keeps position and flat index in sync.
type arrayAccess[T any] struct {
	img   *ArrayImg[T]
	pos   []int64
	index int64
}

func (r *arrayAccess[T]) NumDimensions() int { return len(r.pos) }
func (r *arrayAccess[T]) Localize(out []int64) { copy(out, r.pos) }
func (r *arrayAccess[T]) Position(d int) int64 { return r.pos[d] }
func (r *arrayAccess[T]) Get() T { return r.img.data[r.index] }
func (r *arrayAccess[T]) Set(v T) { r.img.data[r.index] = v }

func (r *arrayAccess[T]) Fwd(d int) {
	r.pos[d]++
	r.index += r.img.steps[d]
}

func (r *arrayAccess[T]) Bck(d int) {
	r.pos[d]--
	r.index -= r.img.steps[d]
}

func (r *arrayAccess[T]) Move(distance int64, d int) {
	r.pos[d] += distance
	r.index += distance * r.img.steps[d]
}

func (r *arrayAccess[T]) MoveBy(distance []int64) {
	for d := range r.pos {
		r.Move(distance[d], d)
	}
}

func (r *arrayAccess[T]) SetPosition(pos []int64) {
	copy(r.pos, pos)
	r.index = positionToIndex(r.pos, r.img.steps)
}

func (r *arrayAccess[T]) SetPositionAt(value int64, d int) {
	r.index += (value - r.pos[d]) * r.img.steps[d]
	r.pos[d] = value
}

func (r *arrayAccess[T]) Copy() access.RandomAccess[T] {
	return &arrayAccess[T]{img: r.img, pos: append([]int64(nil), r.pos...), index: r.index}
}

// arrayCursor walks the buffer linearly.
type arrayCursor[T any] struct {
	flatState
	data []T
}

func (c *arrayCursor[T]) Fwd() { c.step() }
func (c *arrayCursor[T]) JumpFwd(steps int64) { c.jump(steps) }
func (c *arrayCursor[T]) Get() T { return c.data[c.index] }
func (c *arrayCursor[T]) Set(v T) { c.data[c.index] = v }

func (c *arrayCursor[T]) Next() T {
	c.step()
	return c.data[c.index]
}

func (c *arrayCursor[T]) Copy() access.Cursor[T] {
	return &arrayCursor[T]{flatState: c.clone(), data: c.data}
}
