// SPDX-License-Identifier: MIT

package storage_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/pixel"
	"github.com/katalvlaran/lvlimg/space"
	"github.com/katalvlaran/lvlimg/storage"
)

// layouts builds one factory per layout; cells are 2 wide so that small
// test images span several cells.
func layouts(t *testing.T) map[string]storage.Factory {
	t.Helper()
	out := map[string]storage.Factory{}
	for _, l := range []storage.Layout{storage.LayoutArray, storage.LayoutCell, storage.LayoutPlanar} {
		f, err := storage.NewFactory(l, storage.WithCellSize(2))
		require.NoError(t, err)
		out[l.String()] = f
	}

	return out
}

// label encodes a position as a unique int.
func label(pos []int64) int {
	v, scale := 0, 1
	for _, p := range pos {
		v += int(p) * scale
		scale *= 100
	}

	return v
}

func fillByPosition(t *testing.T, img storage.Img[int]) {
	t.Helper()
	c := img.LocalizingCursor()
	pos := make([]int64, img.NumDimensions())
	for c.HasNext() {
		c.Fwd()
		c.Localize(pos)
		c.Set(label(pos))
	}
	require.NoError(t, c.Err())
}

func collect(c access.Cursor[int], n int) [][]int64 {
	var out [][]int64
	for c.HasNext() {
		c.Fwd()
		pos := make([]int64, n)
		c.Localize(pos)
		out = append(out, pos)
	}

	return out
}

func TestCursorFlatOrder2x3(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvlimg")
	defer teardown()

	want := [][]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	for name, f := range layouts(t) {
		t.Run(name, func(t *testing.T) {
			img, err := storage.Create[int](f, 2, 3)
			require.NoError(t, err)
			require.Equal(t, int64(6), img.Size())
			require.Equal(t, want, collect(img.Cursor(), 2))
			require.Equal(t, want, collect(img.LocalizingCursor(), 2))
		})
	}
}

func TestCursorVisitsEveryElementOnce(t *testing.T) {
	for name, f := range layouts(t) {
		t.Run(name, func(t *testing.T) {
			img, err := storage.Create[int](f, 5, 3, 4)
			require.NoError(t, err)
			fillByPosition(t, img)

			seen := map[int]bool{}
			c := img.Cursor()
			pos := make([]int64, 3)
			for c.HasNext() {
				v := c.Next()
				c.Localize(pos)
				require.Equal(t, label(pos), v)
				require.False(t, seen[v])
				seen[v] = true
			}
			require.Len(t, seen, 60)
		})
	}
}

func TestCursorResetIdempotent(t *testing.T) {
	for name, f := range layouts(t) {
		t.Run(name, func(t *testing.T) {
			img, err := storage.Create[int](f, 3, 3, 2)
			require.NoError(t, err)
			for _, c := range []access.Cursor[int]{img.Cursor(), img.LocalizingCursor()} {
				first := collect(c, 3)
				for i := 0; i < 3; i++ {
					c.Reset()
					require.Equal(t, first, collect(c, 3))
				}
			}
		})
	}
}

func TestCursorExhaustion(t *testing.T) {
	for name, f := range layouts(t) {
		t.Run(name, func(t *testing.T) {
			img, err := storage.Create[int](f, 3)
			require.NoError(t, err)
			c := img.Cursor()
			for c.HasNext() {
				c.Fwd()
			}
			require.NoError(t, c.Err())
			require.Equal(t, int64(2), c.Position(0))

			c.Fwd()
			require.ErrorIs(t, c.Err(), space.ErrExhausted)
			require.Equal(t, int64(2), c.Position(0), "cursor stays on its last element")

			c.Reset()
			require.NoError(t, c.Err())
			require.True(t, c.HasNext())
		})
	}
}

func TestCursorJumpFwd(t *testing.T) {
	for name, f := range layouts(t) {
		t.Run(name, func(t *testing.T) {
			img, err := storage.Create[int](f, 4, 3)
			require.NoError(t, err)
			fillByPosition(t, img)
			for _, c := range []access.Cursor[int]{img.Cursor(), img.LocalizingCursor()} {
				ref := img.Cursor()
				c.JumpFwd(5)
				for i := 0; i < 5; i++ {
					ref.Fwd()
				}
				require.Equal(t, ref.Get(), c.Get())
				require.Equal(t, ref.Position(0), c.Position(0))
				require.Equal(t, ref.Position(1), c.Position(1))

				c.Fwd()
				ref.Fwd()
				require.Equal(t, ref.Get(), c.Get())

				c.JumpFwd(100)
				require.ErrorIs(t, c.Err(), space.ErrExhausted)
			}
		})
	}
}

func TestCursorCopy(t *testing.T) {
	img, err := storage.NewArrayImg[int](3, 2)
	require.NoError(t, err)
	c := img.LocalizingCursor()
	c.JumpFwd(4)
	cp := c.Copy()
	c.Fwd()
	require.Equal(t, int64(0), cp.Position(0))
	require.Equal(t, int64(1), cp.Position(1))
	require.Equal(t, int64(1), c.Position(0))
}

func TestRandomAccessMatchesCursor(t *testing.T) {
	for name, f := range layouts(t) {
		t.Run(name, func(t *testing.T) {
			img, err := storage.Create[int](f, 5, 4, 3)
			require.NoError(t, err)
			fillByPosition(t, img)

			ra := img.RandomAccess()
			ra.SetPosition([]int64{4, 3, 2})
			require.Equal(t, label([]int64{4, 3, 2}), ra.Get())
			ra.Bck(0)
			require.Equal(t, label([]int64{3, 3, 2}), ra.Get())
			ra.Move(-3, 1)
			require.Equal(t, label([]int64{3, 0, 2}), ra.Get())
			ra.MoveBy([]int64{-3, 1, -2})
			require.Equal(t, label([]int64{0, 1, 0}), ra.Get())
			ra.SetPositionAt(2, 2)
			require.Equal(t, label([]int64{0, 1, 2}), ra.Get())
			ra.Fwd(2)
			ra.Bck(2)
			require.Equal(t, label([]int64{0, 1, 2}), ra.Get())

			cp := ra.Copy()
			ra.Fwd(0)
			require.Equal(t, int64(0), cp.Position(0))
			require.Equal(t, label([]int64{1, 1, 2}), ra.Get())

			ra.Set(-1)
			check := img.RandomAccessIn(img)
			check.SetPosition([]int64{1, 1, 2})
			require.Equal(t, -1, check.Get())
		})
	}
}

func TestEqualIterationOrder(t *testing.T) {
	arr, err := storage.NewArrayImg[int](4, 4)
	require.NoError(t, err)
	arr2, err := storage.NewArrayImg[uint8](4, 4)
	require.NoError(t, err)
	planar, err := storage.NewPlanarImg[int](4, 4)
	require.NoError(t, err)
	cells, err := storage.NewCellImg[int]([]int64{4, 4}, []int64{2, 2})
	require.NoError(t, err)
	cells2, err := storage.NewCellImg[float32]([]int64{4, 4}, []int64{2, 2})
	require.NoError(t, err)
	single, err := storage.NewCellImg[int]([]int64{4, 4}, []int64{8, 8})
	require.NoError(t, err)
	other, err := storage.NewArrayImg[int](2, 8)
	require.NoError(t, err)

	require.True(t, arr.EqualIterationOrder(arr2))
	require.True(t, arr.EqualIterationOrder(planar))
	require.True(t, planar.EqualIterationOrder(arr))
	require.True(t, cells.EqualIterationOrder(cells2))
	require.True(t, single.EqualIterationOrder(arr))
	require.False(t, arr.EqualIterationOrder(cells))
	require.False(t, cells.EqualIterationOrder(arr))
	require.False(t, arr.EqualIterationOrder(other))
	require.False(t, access.EqualIterationOrder(arr, nil))
}

func TestCellAccessOutsidePanics(t *testing.T) {
	img, err := storage.NewCellImg[int]([]int64{4, 4}, []int64{2, 2})
	require.NoError(t, err)
	ra := img.RandomAccess()
	ra.SetPosition([]int64{4, 0})
	require.Panics(t, func() { ra.Get() })
}

func TestCellImgEdgeCells(t *testing.T) {
	img, err := storage.NewCellImg[int]([]int64{5, 3}, []int64{2, 2})
	require.NoError(t, err)
	require.Equal(t, 6, img.NumCells())
	require.Equal(t, []int64{2, 2}, img.CellDims())

	// the cursor walks cell (0,0) first: (0,0) (1,0) (0,1) (1,1)
	got := collect(img.LocalizingCursor(), 2)
	require.Len(t, got, 15)
	require.Equal(t, [][]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 0}}, got[:5])
	require.Equal(t, got, collect(img.Cursor(), 2))
}

func TestArrayImgFrom(t *testing.T) {
	img, err := storage.ArrayImgFrom([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), img.Index([]int64{1, 1}))
	require.Equal(t, 1.0, img.FirstElement())

	_, err = storage.ArrayImgFrom([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, space.ErrDimensionMismatch)

	_, err = storage.NewArrayImg[int](3, 0)
	require.ErrorIs(t, err, space.ErrInvalidDimensions)
}

func TestCopyIsDeep(t *testing.T) {
	for name, f := range layouts(t) {
		t.Run(name, func(t *testing.T) {
			img, err := storage.Create[int](f, 3, 3)
			require.NoError(t, err)
			fillByPosition(t, img)
			cp := img.Copy()
			c := img.Cursor()
			c.Fwd()
			c.Set(999)
			require.Equal(t, 0, cp.FirstElement())
			require.Equal(t, 999, img.FirstElement())
			require.Equal(t, f.Layout(), cp.Factory().Layout())
		})
	}
}

func TestCreateLikeAndByKind(t *testing.T) {
	f, err := storage.NewFactory(storage.LayoutCell, storage.WithCellDims(2, 3))
	require.NoError(t, err)
	src, err := storage.Create[int16](f, 4, 6)
	require.NoError(t, err)

	mask, err := storage.CreateLike[bool](src)
	require.NoError(t, err)
	require.True(t, space.EqualIntervals(src, mask))
	require.True(t, src.EqualIterationOrder(mask))

	_, err = storage.Create[int](f, 4, 6, 2)
	require.ErrorIs(t, err, space.ErrDimensionMismatch)

	v, err := storage.CreateByKind(pixel.KindFloat32, f, 4, 6)
	require.NoError(t, err)
	_, ok := v.(storage.Img[float32])
	require.True(t, ok)

	_, err = storage.CreateByKind(pixel.KindInvalid, f, 4, 6)
	require.ErrorIs(t, err, space.ErrUnsupportedBacking)

	_, err = storage.CreateLike[int, int](nil)
	require.ErrorIs(t, err, space.ErrNilSource)
}

func TestLayoutsAndOptions(t *testing.T) {
	l, err := storage.ParseLayout("Planar")
	require.NoError(t, err)
	require.Equal(t, storage.LayoutPlanar, l)
	_, err = storage.ParseLayout("shape-list")
	require.ErrorIs(t, err, space.ErrUnsupportedBacking)
	_, err = storage.NewFactory(storage.Layout(9))
	require.ErrorIs(t, err, space.ErrUnsupportedBacking)

	require.Panics(t, func() { storage.WithCellSize(0) })
	require.Panics(t, func() { storage.WithCellDims() })
	require.Panics(t, func() { storage.WithCellDims(2, -1) })

	var zero storage.Factory
	img, err := storage.Create[int](zero, 2, 2)
	require.NoError(t, err)
	_, ok := img.(*storage.ArrayImg[int])
	require.True(t, ok)

	f, err := storage.NewFactory(storage.LayoutCell)
	require.NoError(t, err)
	img, err = storage.Create[int](f, 100, 10)
	require.NoError(t, err)
	require.Equal(t, 2, img.(*storage.CellImg[int]).NumCells(), "default cell size is 64")
}

// TestShapeOverflowRejected ensures a shape whose element count does not fit
// in int64 is refused by every layout instead of yielding an empty image.
func TestShapeOverflowRejected(t *testing.T) {
	for name, f := range layouts(t) {
		_, err := storage.Create[uint8](f, 1<<33, 1<<31)
		require.ErrorIs(t, err, space.ErrInvalidDimensions, name)
	}
	_, err := storage.NewArrayImg[uint8](1<<33, 1<<31)
	require.ErrorIs(t, err, space.ErrInvalidDimensions)
	_, err = storage.ArrayImgFrom([]uint8{1}, 1<<33, 1<<31)
	require.ErrorIs(t, err, space.ErrInvalidDimensions)
}
