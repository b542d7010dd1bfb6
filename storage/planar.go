// SPDX-License-Identifier: MIT

package storage

import (
	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
)

// PlanarImg keeps one buffer per XY plane (per X line for 1-D images).
// Planes are ordered flat over axes 2..n-1, so iteration order equals that
// of an ArrayImg of the same shape.
type PlanarImg[T any] struct {
	dims      []int64
	steps     []int64 // global flat strides
	planeSize int64
	planes    [][]T
}

var _ Img[int] = (*PlanarImg[int])(nil)

// NewPlanarImg allocates a zero-filled image of shape dims.
//
// Errors: space.ErrInvalidDimensions.
func NewPlanarImg[T any](dims ...int64) (*PlanarImg[T], error) {
	if err := space.ValidateShape(dims); err != nil {
		return nil, storageErrorf("NewPlanarImg", err)
	}
	dims = append([]int64(nil), dims...)
	img := &PlanarImg[T]{dims: dims, steps: stepsOf(dims)}
	img.planeSize = product(dims[:min(2, len(dims))])
	n := product(dims) / img.planeSize
	img.planes = make([][]T, n)
	for i := range img.planes {
		img.planes[i] = make([]T, img.planeSize)
	}

	return img, nil
}

// NumPlanes returns the number of plane buffers.
func (img *PlanarImg[T]) NumPlanes() int { return len(img.planes) }

// Plane exposes the i-th plane buffer.
func (img *PlanarImg[T]) Plane(i int) []T { return img.planes[i] }

// NumDimensions returns n.
func (img *PlanarImg[T]) NumDimensions() int { return len(img.dims) }

// Min is 0 on every axis.
func (img *PlanarImg[T]) Min(int) int64 { return 0 }

// Max returns Dimension(d) - 1.
func (img *PlanarImg[T]) Max(d int) int64 { return img.dims[d] - 1 }

// Dimension returns the extent of axis d.
func (img *PlanarImg[T]) Dimension(d int) int64 { return img.dims[d] }

// Size returns the number of elements over all planes.
func (img *PlanarImg[T]) Size() int64 { return img.planeSize * int64(len(img.planes)) }

// FirstElement returns the element at the origin.
func (img *PlanarImg[T]) FirstElement() T { return img.planes[0][0] }

// Factory returns a planar factory with default options.
func (img *PlanarImg[T]) Factory() Factory { return Factory{layout: LayoutPlanar, opts: defaultOptions()} }

// IterationOrder is flat: planes are stored in flat order, so a planar
// image walks exactly like an ArrayImg of the same shape.
func (img *PlanarImg[T]) IterationOrder() access.IterationOrder {
	return access.NewFlatIterationOrder(img)
}

// EqualIterationOrder reports whether other iterates in flat order over the
// same shape.
func (img *PlanarImg[T]) EqualIterationOrder(other access.Iterable) bool {
	return access.EqualIterationOrder(img, other)
}

// Cursor returns a flat cursor that steps inside the current plane and
// switches plane at its end.
//
// Complexity: Fwd O(1) amortized; Localize O(n).
func (img *PlanarImg[T]) Cursor() access.Cursor[T] { return img.newCursor(false) }

// LocalizingCursor is Cursor with the position tracked on every step.
func (img *PlanarImg[T]) LocalizingCursor() access.Cursor[T] { return img.newCursor(true) }

// RandomAccess returns an accessor placed at the origin. Axes 0 and 1 move
// the in-plane offset, higher axes move the plane index.
//
// Complexity: Fwd/Bck/Move O(1); SetPosition O(n).
func (img *PlanarImg[T]) RandomAccess() access.RandomAccess[T] {
	return &planarAccess[T]{img: img, pos: make([]int64, len(img.dims))}
}

// RandomAccessIn ignores iv.
func (img *PlanarImg[T]) RandomAccessIn(space.Interval) access.RandomAccess[T] {
	return img.RandomAccess()
}

// Copy returns a deep copy.
//
// Complexity: O(Size()).
func (img *PlanarImg[T]) Copy() Img[T] {
	cp := *img
	cp.planes = make([][]T, len(img.planes))
	for i, p := range img.planes {
		cp.planes[i] = append([]T(nil), p...)
	}

	return &cp
}

func (img *PlanarImg[T]) newCursor(localizing bool) *planarCursor[T] {
	c := &planarCursor[T]{flatState: newFlatState(img.dims, img.steps, localizing), img: img}
	c.Reset()

	return c
}

// planarAccess tracks the plane and the offset inside it separately. Axes
// 0 and 1 move inside a plane, higher axes move between planes.
type planarAccess[T any] struct {
	img    *PlanarImg[T]
	pos    []int64
	plane  int64
	offset int64
}

func (r *planarAccess[T]) NumDimensions() int { return len(r.pos) }
func (r *planarAccess[T]) Localize(out []int64) { copy(out, r.pos) }
func (r *planarAccess[T]) Position(d int) int64 { return r.pos[d] }
func (r *planarAccess[T]) Get() T { return r.img.planes[r.plane][r.offset] }
func (r *planarAccess[T]) Set(v T) { r.img.planes[r.plane][r.offset] = v }
func (r *planarAccess[T]) Fwd(d int) { r.Move(1, d) }
func (r *planarAccess[T]) Bck(d int) { r.Move(-1, d) }

func (r *planarAccess[T]) Move(distance int64, d int) {
	r.pos[d] += distance
	if d < 2 {
		r.offset += distance * r.img.steps[d]
		return
	}
	r.plane += distance * (r.img.steps[d] / r.img.planeSize)
}

func (r *planarAccess[T]) MoveBy(distance []int64) {
	for d := range r.pos {
		r.Move(distance[d], d)
	}
}

func (r *planarAccess[T]) SetPosition(pos []int64) {
	for d := range r.pos {
		r.SetPositionAt(pos[d], d)
	}
}

func (r *planarAccess[T]) SetPositionAt(value int64, d int) { r.Move(value-r.pos[d], d) }

func (r *planarAccess[T]) Copy() access.RandomAccess[T] {
	cp := *r
	cp.pos = append([]int64(nil), r.pos...)

	return &cp
}

// planarCursor walks planes in order.
type planarCursor[T any] struct {
	flatState
	img    *PlanarImg[T]
	plane  int64
	offset int64
}

func (c *planarCursor[T]) Reset() {
	c.flatState.Reset()
	c.plane, c.offset = 0, -1
}

func (c *planarCursor[T]) Fwd() {
	if !c.step() {
		return
	}
	c.offset++
	if c.offset == c.img.planeSize {
		c.plane++
		c.offset = 0
	}
}

func (c *planarCursor[T]) JumpFwd(steps int64) {
	if c.jump(steps) {
		c.plane, c.offset = c.index/c.img.planeSize, c.index%c.img.planeSize
	}
}

func (c *planarCursor[T]) Get() T { return c.img.planes[c.plane][c.offset] }
func (c *planarCursor[T]) Set(v T) { c.img.planes[c.plane][c.offset] = v }

func (c *planarCursor[T]) Next() T {
	c.Fwd()
	return c.Get()
}

func (c *planarCursor[T]) Copy() access.Cursor[T] {
	cp := *c
	cp.flatState = c.clone()

	return &cp
}
