// SPDX-License-Identifier: MIT

package storage

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
)

// cell is one chunk of a CellImg with its own flat buffer.
type cell[T any] struct {
	min   []int64
	dims  []int64
	steps []int64
	data  []T
}

// CellImg partitions the image into a grid of cells. Cells on the upper
// edge of an axis are truncated to the image bounds, so every cell holds
// only real elements.
type CellImg[T any] struct {
	dims      []int64
	cellDims  []int64
	grid      []int64 // cells per axis
	gridSteps []int64
	cells     []*cell[T]
	size      int64
}

var _ Img[int] = (*CellImg[int])(nil)

// NewCellImg allocates a zero-filled image of shape dims with the given
// cell shape (len(cellDims) == len(dims)).
//
// Errors: space.ErrInvalidDimensions, space.ErrDimensionMismatch.
func NewCellImg[T any](dims, cellDims []int64) (*CellImg[T], error) {
	return newCellImg[T](dims, cellDims)
}

func newCellImg[T any](dims, cellDims []int64) (*CellImg[T], error) {
	if err := space.ValidateShape(dims); err != nil {
		return nil, storageErrorf("NewCellImg", err)
	}
	if err := space.ValidateShape(cellDims); err != nil {
		return nil, storageErrorf("NewCellImg: cell shape", err)
	}
	if err := space.ValidateVecLen(cellDims, len(dims)); err != nil {
		return nil, storageErrorf("NewCellImg: cell shape", err)
	}
	img := &CellImg[T]{
		dims:     append([]int64(nil), dims...),
		cellDims: append([]int64(nil), cellDims...),
		grid:     make([]int64, len(dims)),
		size:     product(dims),
	}
	for d := range dims {
		img.grid[d] = (dims[d]-1)/cellDims[d] + 1
	}
	img.gridSteps = stepsOf(img.grid)

	n := product(img.grid)
	img.cells = make([]*cell[T], n)
	g := make([]int64, len(dims))
	for i := int64(0); i < n; i++ {
		indexToPosition(i, img.grid, g)
		c := &cell[T]{min: make([]int64, len(dims)), dims: make([]int64, len(dims))}
		for d := range dims {
			c.min[d] = g[d] * cellDims[d]
			c.dims[d] = min(cellDims[d], dims[d]-c.min[d])
		}
		c.steps = stepsOf(c.dims)
		c.data = make([]T, product(c.dims))
		img.cells[i] = c
	}

	return img, nil
}

// CellDims returns a copy of the cell shape.
func (img *CellImg[T]) CellDims() []int64 { return append([]int64(nil), img.cellDims...) }

// NumCells returns the number of cells in the grid.
func (img *CellImg[T]) NumCells() int { return len(img.cells) }

// NumDimensions returns n.
func (img *CellImg[T]) NumDimensions() int { return len(img.dims) }

// Min is 0 on every axis.
func (img *CellImg[T]) Min(int) int64 { return 0 }

// Max returns Dimension(d) - 1.
func (img *CellImg[T]) Max(d int) int64 { return img.dims[d] - 1 }

// Dimension returns the extent of axis d.
func (img *CellImg[T]) Dimension(d int) int64 { return img.dims[d] }

// Size returns the number of elements over all cells.
func (img *CellImg[T]) Size() int64 { return img.size }

// FirstElement returns the element at the origin (first of cell 0).
func (img *CellImg[T]) FirstElement() T { return img.cells[0].data[0] }

// Factory returns a cell factory carrying this image's cell shape.
func (img *CellImg[T]) Factory() Factory {
	return Factory{layout: LayoutCell, opts: Options{cellSize: DefaultCellSize, cellDims: img.CellDims()}}
}

// IterationOrder is cell by cell unless the grid has a single cell, in
// which case it is flat.
func (img *CellImg[T]) IterationOrder() access.IterationOrder {
	if len(img.cells) == 1 {
		return access.NewFlatIterationOrder(img)
	}

	return CellIterationOrder{dims: img.dims, cellDims: img.cellDims}
}

// EqualIterationOrder reports whether other walks the same cells in the
// same order (or, for a single cell, is flat over the same shape).
func (img *CellImg[T]) EqualIterationOrder(other access.Iterable) bool {
	return access.EqualIterationOrder(img, other)
}

// Cursor returns a cursor that walks cell by cell, each cell in flat order.
// Positions are derived from the in-cell index only when asked.
//
// Complexity: Fwd O(1) amortized; Localize O(n).
func (img *CellImg[T]) Cursor() access.Cursor[T] { return img.newCursor(false) }

// LocalizingCursor is Cursor with the position tracked on every step.
func (img *CellImg[T]) LocalizingCursor() access.Cursor[T] { return img.newCursor(true) }

// RandomAccess returns an accessor placed at the origin. The current cell
// is resolved lazily on the first Get or Set after a move, so moves that
// cross cell borders cost the same as moves that do not.
//
// Reading or writing outside the image panics with a wrapped
// space.ErrOutOfRange.
//
// Complexity: moves O(1); first access after a cell change O(n).
func (img *CellImg[T]) RandomAccess() access.RandomAccess[T] {
	return &cellAccess[T]{img: img, pos: make([]int64, len(img.dims))}
}

// RandomAccessIn ignores iv.
func (img *CellImg[T]) RandomAccessIn(space.Interval) access.RandomAccess[T] {
	return img.RandomAccess()
}

// Copy returns a deep copy with the same cell shape.
//
// Complexity: O(Size()).
func (img *CellImg[T]) Copy() Img[T] {
	cp := *img
	cp.cells = make([]*cell[T], len(img.cells))
	for i, c := range img.cells {
		cc := *c
		cc.data = append([]T(nil), c.data...)
		cp.cells[i] = &cc
	}

	return &cp
}

func (img *CellImg[T]) newCursor(localizing bool) *cellCursor[T] {
	c := &cellCursor[T]{img: img}
	if localizing {
		c.pos = make([]int64, len(img.dims))
	}
	c.Reset()

	return c
}

// cellOf returns the cell containing pos.
func (img *CellImg[T]) cellOf(pos []int64) (*cell[T], error) {
	var gi int64
	for d, p := range pos[:len(img.dims)] {
		if p < 0 || p >= img.dims[d] {
			return nil, fmt.Errorf("storage: CellImg position %v outside %v: %w", pos, img.dims, space.ErrOutOfRange)
		}
		gi += (p / img.cellDims[d]) * img.gridSteps[d]
	}

	return img.cells[gi], nil
}

// CellIterationOrder is the cell-by-cell order of a CellImg. Two orders are
// equal only for identical image and cell shapes.
type CellIterationOrder struct {
	dims     []int64
	cellDims []int64
}

// Equal implements access.IterationOrder.
func (o CellIterationOrder) Equal(other access.IterationOrder) bool {
	c, ok := other.(CellIterationOrder)
	if !ok {
		return false
	}

	return slices.Equal(o.dims, c.dims) && slices.Equal(o.cellDims, c.cellDims)
}

// cellAccess resolves its cell lazily: moves inside the current cell update
// the local index, moves across a cell border drop the cell and the next
// Get/Set relocates.
type cellAccess[T any] struct {
	img   *CellImg[T]
	pos   []int64
	c     *cell[T]
	index int64
}

func (r *cellAccess[T]) NumDimensions() int { return len(r.pos) }
func (r *cellAccess[T]) Localize(out []int64) { copy(out, r.pos) }
func (r *cellAccess[T]) Position(d int) int64 { return r.pos[d] }

func (r *cellAccess[T]) Get() T {
	if r.c == nil {
		r.relocate()
	}

	return r.c.data[r.index]
}

func (r *cellAccess[T]) Set(v T) {
	if r.c == nil {
		r.relocate()
	}
	r.c.data[r.index] = v
}

func (r *cellAccess[T]) Fwd(d int) { r.Move(1, d) }
func (r *cellAccess[T]) Bck(d int) { r.Move(-1, d) }

func (r *cellAccess[T]) Move(distance int64, d int) {
	r.pos[d] += distance
	if r.c == nil {
		return
	}
	if local := r.pos[d] - r.c.min[d]; local >= 0 && local < r.c.dims[d] {
		r.index += distance * r.c.steps[d]
		return
	}
	r.c = nil
}

func (r *cellAccess[T]) MoveBy(distance []int64) {
	for d := range r.pos {
		r.Move(distance[d], d)
	}
}

func (r *cellAccess[T]) SetPosition(pos []int64) {
	copy(r.pos, pos)
	r.c = nil
}

func (r *cellAccess[T]) SetPositionAt(value int64, d int) {
	r.Move(value-r.pos[d], d)
}

func (r *cellAccess[T]) Copy() access.RandomAccess[T] {
	return &cellAccess[T]{img: r.img, pos: append([]int64(nil), r.pos...), c: r.c, index: r.index}
}

// relocate panics when the position lies outside the image: unlike a flat
// buffer there is no neighbouring memory to fall into.
func (r *cellAccess[T]) relocate() {
	c, err := r.img.cellOf(r.pos)
	if err != nil {
		panic(err)
	}
	r.c = c
	r.index = 0
	for d, p := range r.pos {
		r.index += (p - c.min[d]) * c.steps[d]
	}
}

// cellCursor walks cells in grid order and each cell in flat order.
type cellCursor[T any] struct {
	img   *CellImg[T]
	count int64 // global step count, -1 before the first step
	ci    int   // current cell
	index int64 // index inside the current cell
	pos   []int64
	err   error
}

func (c *cellCursor[T]) NumDimensions() int { return len(c.img.dims) }
func (c *cellCursor[T]) HasNext() bool { return c.count < c.img.size-1 }
func (c *cellCursor[T]) Err() error { return c.err }
func (c *cellCursor[T]) Get() T { return c.img.cells[c.ci].data[c.index] }
func (c *cellCursor[T]) Set(v T) { c.img.cells[c.ci].data[c.index] = v }

func (c *cellCursor[T]) Reset() {
	c.count, c.ci, c.index, c.err = -1, 0, -1, nil
	if c.pos != nil {
		clear(c.pos)
		c.pos[0] = -1
	}
}

func (c *cellCursor[T]) Fwd() {
	if !c.HasNext() {
		c.exhausted()
		return
	}
	c.count++
	c.index++
	cl := c.img.cells[c.ci]
	if c.index == int64(len(cl.data)) {
		c.ci++
		c.index = 0
		if c.pos != nil {
			copy(c.pos, c.img.cells[c.ci].min)
		}
		return
	}
	if c.pos == nil {
		return
	}
	c.pos[0]++
	for d := 0; d < len(c.pos)-1 && c.pos[d]-cl.min[d] == cl.dims[d]; d++ {
		c.pos[d] = cl.min[d]
		c.pos[d+1]++
	}
}

func (c *cellCursor[T]) JumpFwd(steps int64) {
	if steps < 1 {
		return
	}
	if c.count+steps > c.img.size-1 {
		c.exhausted()
		return
	}
	c.count += steps
	c.index += steps
	for c.index >= int64(len(c.img.cells[c.ci].data)) {
		c.index -= int64(len(c.img.cells[c.ci].data))
		c.ci++
	}
	if c.pos != nil {
		c.localizeFromIndex(c.pos)
	}
}

func (c *cellCursor[T]) Next() T {
	c.Fwd()
	return c.Get()
}

func (c *cellCursor[T]) Position(d int) int64 {
	if c.pos != nil {
		return c.pos[d]
	}
	cl := c.img.cells[c.ci]

	return cl.min[d] + (max(c.index, 0)/cl.steps[d])%cl.dims[d]
}

func (c *cellCursor[T]) Localize(out []int64) {
	if c.pos != nil {
		copy(out, c.pos)
		return
	}
	c.localizeFromIndex(out)
}

func (c *cellCursor[T]) localizeFromIndex(out []int64) {
	cl := c.img.cells[c.ci]
	indexToPosition(max(c.index, 0), cl.dims, out)
	for d := range out[:len(cl.min)] {
		out[d] += cl.min[d]
	}
}

func (c *cellCursor[T]) Copy() access.Cursor[T] {
	cp := *c
	if c.pos != nil {
		cp.pos = append([]int64(nil), c.pos...)
	}

	return &cp
}

func (c *cellCursor[T]) exhausted() {
	if c.err == nil {
		c.err = fmt.Errorf("storage: cell cursor after %d elements: %w", c.img.size, space.ErrExhausted)
	}
}
