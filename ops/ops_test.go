// SPDX-License-Identifier: MIT

package ops_test

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/ops"
	"github.com/katalvlaran/lvlimg/space"
	"github.com/katalvlaran/lvlimg/storage"
	"github.com/katalvlaran/lvlimg/view"
)

func ramp(t *testing.T, f storage.Factory, dims ...int64) storage.Img[int32] {
	t.Helper()
	img, err := storage.Create[int32](f, dims...)
	require.NoError(t, err)
	c := img.LocalizingCursor()
	pos := make([]int64, len(dims))
	for c.HasNext() {
		c.Fwd()
		c.Localize(pos)
		c.Set(int32(pos[0] + 10*pos[1]))
	}

	return img
}

func factory(t *testing.T, l storage.Layout) storage.Factory {
	t.Helper()
	f, err := storage.NewFactory(l, storage.WithCellSize(3))
	require.NoError(t, err)

	return f
}

func values(it access.IterableInterval[int32]) []int32 {
	var out []int32
	c := it.Cursor()
	for c.HasNext() {
		out = append(out, c.Next())
	}

	return out
}

func TestFill(t *testing.T) {
	for _, l := range []storage.Layout{storage.LayoutArray, storage.LayoutCell, storage.LayoutPlanar} {
		img := ramp(t, factory(t, l), 5, 4)
		require.NoError(t, ops.Fill[int32](img, 7))
		lo, hi, err := ops.MinMax[int32](img)
		require.NoError(t, err)
		require.Equal(t, int32(7), lo)
		require.Equal(t, int32(7), hi)
	}

	// filling a view writes through to the source
	img := ramp(t, factory(t, storage.LayoutArray), 5, 4)
	sub, err := view.IntervalMinMax[int32](img, []int64{1, 1}, []int64{2, 2})
	require.NoError(t, err)
	require.NoError(t, ops.Fill[int32](sub, -1))
	ra := img.RandomAccess()
	ra.SetPosition([]int64{2, 2})
	require.Equal(t, int32(-1), ra.Get())
	ra.SetPosition([]int64{3, 2})
	require.Equal(t, int32(23), ra.Get())

	require.ErrorIs(t, ops.Fill[int32](nil, 0), space.ErrNilSource)
}

func TestCopyAcrossLayouts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvlimg")
	defer teardown()

	src := ramp(t, factory(t, storage.LayoutArray), 7, 5)
	for _, l := range []storage.Layout{storage.LayoutArray, storage.LayoutCell, storage.LayoutPlanar} {
		t.Run(l.String(), func(t *testing.T) {
			dst, err := storage.Create[int32](factory(t, l), 7, 5)
			require.NoError(t, err)
			require.NoError(t, ops.Copy[int32](src, dst))

			// compare position by position, independent of iteration order
			a, b := src.RandomAccess(), dst.RandomAccess()
			for y := int64(0); y < 5; y++ {
				for x := int64(0); x < 7; x++ {
					a.SetPosition([]int64{x, y})
					b.SetPosition([]int64{x, y})
					require.Equal(t, a.Get(), b.Get())
				}
			}
		})
	}
}

func TestCopyFromShiftedView(t *testing.T) {
	src := ramp(t, factory(t, storage.LayoutCell), 6, 6)
	sub, err := view.IntervalMinMax[int32](src, []int64{2, 3}, []int64{4, 5})
	require.NoError(t, err)
	rot, err := view.Rotate[int32](sub, 0, 1)
	require.NoError(t, err)

	dst, err := storage.NewArrayImg[int32](3, 3)
	require.NoError(t, err)
	require.NoError(t, ops.Copy[int32](sub, dst))
	require.Equal(t, []int32{32, 33, 34, 42, 43, 44, 52, 53, 54}, dst.Data())

	require.NoError(t, ops.Copy[int32](rot, dst))
	// rotated view at (x, y) reads the sub-image at (y, -x)
	require.Equal(t, []int32{52, 42, 32, 53, 43, 33, 54, 44, 34}, dst.Data())

	wrong, err := storage.NewArrayImg[int32](3, 4)
	require.NoError(t, err)
	require.ErrorIs(t, ops.Copy[int32](sub, wrong), space.ErrDimensionMismatch)
	require.ErrorIs(t, ops.Copy[int32](nil, wrong), space.ErrNilSource)
}

func TestMinMaxOverViews(t *testing.T) {
	img := ramp(t, factory(t, storage.LayoutPlanar), 4, 4, 2)
	lo, hi, err := ops.MinMax[int32](img)
	require.NoError(t, err)
	require.Equal(t, int32(0), lo)
	require.Equal(t, int32(33), hi)

	sub, err := view.IntervalMinMax[int32](img, []int64{1, 1, 0}, []int64{2, 2, 1})
	require.NoError(t, err)
	lo, hi, err = ops.MinMax[int32](sub)
	require.NoError(t, err)
	require.Equal(t, int32(11), lo)
	require.Equal(t, int32(22), hi)
	require.Equal(t, []int32{11, 12, 21, 22, 11, 12, 21, 22}, values(sub))

	f, err := storage.ArrayImgFrom([]float64{math.NaN(), 2, -1, math.NaN()}, 4)
	require.NoError(t, err)
	flo, fhi, err := ops.MinMax[float64](f)
	require.NoError(t, err)
	require.Equal(t, -1.0, flo)
	require.Equal(t, 2.0, fhi)
}

func TestHistogram(t *testing.T) {
	img, err := storage.ArrayImgFrom([]uint8{0, 0, 1, 128, 255, 255, 255}, 7)
	require.NoError(t, err)

	h, err := ops.NewHistogram[uint8](img)
	require.NoError(t, err)
	require.Len(t, h.Counts, ops.DefaultBins)
	require.Equal(t, int64(2), h.Counts[0])
	require.Equal(t, int64(1), h.Counts[1])
	require.Equal(t, int64(1), h.Counts[128])
	require.Equal(t, int64(3), h.Counts[255])
	require.Equal(t, int64(7), h.Total())

	h, err = ops.NewHistogram[uint8](img, ops.WithBins(2), ops.WithRange(0, 200))
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1}, h.Counts)
	require.Equal(t, int64(3), h.Above)
	require.Equal(t, 100.0, h.BinWidth())
	require.Equal(t, "histogram [0, 200] 2 bins: 3 1", h.String())

	f, err := storage.ArrayImgFrom([]float32{-1, 0, 0.5, 1, 1}, 5)
	require.NoError(t, err)
	h, err = ops.NewHistogram[float32](f, ops.WithBins(4))
	require.NoError(t, err)
	require.Equal(t, -1.0, h.Lo)
	require.Equal(t, 1.0, h.Hi)
	require.Equal(t, []int64{1, 0, 1, 3}, h.Counts)
	require.Equal(t, -1.0, h.Quantile(0))
	require.Equal(t, 0.5, h.Quantile(1))
	require.Equal(t, -1, h.Bin(math.NaN()))

	_, err = ops.NewHistogram[float32](nil)
	require.ErrorIs(t, err, space.ErrNilSource)
}

type gray8 uint8

// TestHistogramNamedType ensures a named element type gets the default range
// of its underlying type.
func TestHistogramNamedType(t *testing.T) {
	img, err := storage.ArrayImgFrom([]gray8{0, 0, 1, 128, 255, 255, 255}, 7)
	require.NoError(t, err)

	h, err := ops.NewHistogram[gray8](img)
	require.NoError(t, err)
	require.Equal(t, 0.0, h.Lo)
	require.Equal(t, 255.0, h.Hi)
	require.Equal(t, int64(1), h.Counts[128])
	require.Equal(t, int64(3), h.Counts[255])
	require.Zero(t, h.Above)
}

func TestOptionsPanics(t *testing.T) {
	require.Panics(t, func() { ops.WithBins(0) })
	require.Panics(t, func() { ops.WithRange(1, 1) })
	require.Panics(t, func() { ops.WithRange(math.Inf(-1), 0) })
	require.Panics(t, func() { ops.WithRange(0, math.NaN()) })
}
