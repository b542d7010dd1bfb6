// SPDX-License-Identifier: MIT

package access_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
	"github.com/katalvlaran/lvlimg/storage"
)

func positions(c access.Cursor[int], n int) [][]int64 {
	var out [][]int64
	for c.HasNext() {
		c.Fwd()
		p := make([]int64, n)
		c.Localize(p)
		out = append(out, p)
	}

	return out
}

func TestFlatCursorOrder(t *testing.T) {
	img, err := storage.NewArrayImg[int](2, 3)
	require.NoError(t, err)

	c := access.NewFlatCursor[int](img)
	require.Equal(t, 2, c.NumDimensions())
	require.Equal(t,
		[][]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}},
		positions(c, 2))
}

func TestFlatCursorMatchesStorageCursor(t *testing.T) {
	img, err := storage.NewArrayImg[int](3, 4, 2)
	require.NoError(t, err)
	for i := range img.Data() {
		img.Data()[i] = i * 7
	}

	flat := access.NewFlatCursor[int](img)
	native := img.Cursor()
	for native.HasNext() {
		require.True(t, flat.HasNext())
		require.Equal(t, native.Next(), flat.Next())
		require.Equal(t, native.Position(2), flat.Position(2))
	}
	require.False(t, flat.HasNext())
}

func TestFlatCursorResetAndExhaustion(t *testing.T) {
	img, err := storage.NewArrayImg[int](3, 2)
	require.NoError(t, err)
	c := access.NewFlatCursor[int](img)

	first := positions(c, 2)
	require.Len(t, first, 6)
	require.NoError(t, c.Err())

	c.Fwd()
	require.ErrorIs(t, c.Err(), space.ErrExhausted)
	require.Equal(t, int64(2), c.Position(0))
	require.Equal(t, int64(1), c.Position(1))

	for i := 0; i < 3; i++ {
		c.Reset()
		require.NoError(t, c.Err())
		require.Equal(t, first, positions(c, 2))
	}
}

func TestFlatCursorJumpAndCopy(t *testing.T) {
	img, err := storage.ArrayImgFrom([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, 4, 3)
	require.NoError(t, err)
	c := access.NewFlatCursor[int](img)

	c.JumpFwd(6)
	require.Equal(t, 5, c.Get())
	require.Equal(t, int64(1), c.Position(0))
	require.Equal(t, int64(1), c.Position(1))

	cp := c.Copy()
	c.Fwd()
	require.Equal(t, 6, c.Get())
	require.Equal(t, 5, cp.Get())

	cp.Set(50)
	require.Equal(t, 50, img.Data()[5])

	c.JumpFwd(0)
	require.Equal(t, 6, c.Get())
	c.JumpFwd(20)
	require.ErrorIs(t, c.Err(), space.ErrExhausted)
	require.NoError(t, cp.Err())
}
