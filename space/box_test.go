// SPDX-License-Identifier: MIT

package space_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/space"
	"github.com/stretchr/testify/require"
)

// TestNewBoxMalformed ensures min>max and length mismatch are rejected.
func TestNewBoxMalformed(t *testing.T) {
	cases := []struct {
		name     string
		min, max []int64
	}{
		{"MinGreaterThanMax", []int64{0, 5}, []int64{3, 4}},
		{"LengthMismatch", []int64{0, 0}, []int64{3}},
		{"Empty", []int64{}, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := space.NewBox(tc.min, tc.max)
			require.ErrorIs(t, err, space.ErrMalformedInterval)
		})
	}
}

// TestBoxDimensionInvariant checks dimension(d) = max-min+1 >= 1 on every axis.
func TestBoxDimensionInvariant(t *testing.T) {
	b, err := space.NewBox([]int64{-3, 0, 7}, []int64{2, 0, 9})
	require.NoError(t, err)

	require.Equal(t, 3, b.NumDimensions())
	require.Equal(t, []int64{6, 1, 3}, space.DimensionsOf(b))
	for d := 0; d < b.NumDimensions(); d++ {
		require.GreaterOrEqual(t, b.Dimension(d), int64(1))
	}
	require.Equal(t, int64(18), space.NumElements(b))

	_, _, err = b.Axis(3)
	require.ErrorIs(t, err, space.ErrOutOfRange)
	lo, hi, err := b.Axis(0)
	require.NoError(t, err)
	require.Equal(t, []int64{-3, 2}, []int64{lo, hi})
}

// TestBoxOfSize covers the origin-based constructor.
func TestBoxOfSize(t *testing.T) {
	b, err := space.BoxOfSize(2, 3)
	require.NoError(t, err)
	require.Equal(t, "[0..1 x 0..2]", b.String())

	_, err = space.BoxOfSize(2, 0)
	require.ErrorIs(t, err, space.ErrInvalidDimensions)
	_, err = space.BoxOfSize()
	require.ErrorIs(t, err, space.ErrInvalidDimensions)
}

// TestBoxTranslate verifies translation builds a new value.
func TestBoxTranslate(t *testing.T) {
	b, err := space.BoxOfSize(4, 4)
	require.NoError(t, err)

	moved, err := b.Translate([]int64{10, -1})
	require.NoError(t, err)
	require.Equal(t, []int64{10, -1}, space.MinOf(moved))
	require.Equal(t, []int64{13, 2}, space.MaxOf(moved))
	require.Equal(t, []int64{0, 0}, space.MinOf(b))

	_, err = b.Translate([]int64{1})
	require.ErrorIs(t, err, space.ErrDimensionMismatch)
}

// TestBoxOfSnapshot verifies BoxOf returns boxes unchanged and copies others.
func TestBoxOfSnapshot(t *testing.T) {
	b, err := space.NewBox([]int64{1, 2}, []int64{3, 4})
	require.NoError(t, err)
	require.Same(t, b, space.BoxOf(b))
}
