// SPDX-License-Identifier: MIT

package pixel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlimg/pixel"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		name string
		want pixel.Kind
	}{
		{"bit", pixel.KindBit},
		{"UINT8", pixel.KindUint8},
		{" float ", pixel.KindFloat32},
		{"double", pixel.KindFloat64},
		{"long", pixel.KindInt64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := pixel.ParseKind(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.want, k)
		})
	}

	_, err := pixel.ParseKind("FloatType")
	require.ErrorIs(t, err, pixel.ErrUnknownKind)
}

func TestKindRoundTrip(t *testing.T) {
	for k := pixel.KindBit; k <= pixel.KindFloat64; k++ {
		got, err := pixel.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
		require.True(t, k.Valid())
		require.Positive(t, k.Size())
	}
	require.False(t, pixel.KindInvalid.Valid())
	require.Equal(t, "Kind(42)", pixel.Kind(42).String())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, pixel.KindBit, pixel.KindOf[bool]())
	require.Equal(t, pixel.KindUint16, pixel.KindOf[uint16]())
	require.Equal(t, pixel.KindFloat32, pixel.KindOf[float32]())
	require.Equal(t, pixel.KindInvalid, pixel.KindOf[string]())
	require.True(t, pixel.KindOf[float64]().IsFloat())
}

func TestCompare(t *testing.T) {
	require.Equal(t, -1, pixel.Compare(1, 2))
	require.Equal(t, 0, pixel.Compare(uint8(7), uint8(7)))
	require.Equal(t, 1, pixel.Compare(2.5, -1.0))
	require.Equal(t, -1, pixel.Compare(math.NaN(), 0))
	require.Equal(t, 1, pixel.Compare(0, math.NaN()))
	require.True(t, pixel.Equal("a", "a"))
}

func TestFromFloat64(t *testing.T) {
	require.Equal(t, uint8(255), pixel.FromFloat64[uint8](300))
	require.Equal(t, uint8(0), pixel.FromFloat64[uint8](-4))
	require.Equal(t, int16(3), pixel.FromFloat64[int16](2.6))
	require.Equal(t, int64(math.MaxInt64), pixel.FromFloat64[int64](1e30))
	require.Equal(t, int64(math.MinInt64), pixel.FromFloat64[int64](-1e30))
	require.Equal(t, uint64(math.MaxUint64), pixel.FromFloat64[uint64](1e30))
	require.Equal(t, int32(0), pixel.FromFloat64[int32](math.NaN()))
	require.InDelta(t, 2.6, float64(pixel.FromFloat64[float32](2.6)), 1e-6)

	lo, hi := pixel.Range[int8]()
	require.Equal(t, -128.0, lo)
	require.Equal(t, 127.0, hi)
}

type (
	gray8   uint8
	short   int16
	density float32
)

func TestNamedTypesSaturate(t *testing.T) {
	require.Equal(t, gray8(255), pixel.FromFloat64[gray8](300))
	require.Equal(t, gray8(0), pixel.FromFloat64[gray8](-1))
	require.Equal(t, short(32767), pixel.FromFloat64[short](40000))
	require.Equal(t, short(-32768), pixel.FromFloat64[short](-40000))
	require.Equal(t, short(-3), pixel.FromFloat64[short](-2.6))
	require.InDelta(t, 0.25, float64(pixel.FromFloat64[density](0.25)), 1e-9)

	lo, hi := pixel.Range[gray8]()
	require.Equal(t, 0.0, lo)
	require.Equal(t, 255.0, hi)
	lo, hi = pixel.Range[short]()
	require.Equal(t, -32768.0, lo)
	require.Equal(t, 32767.0, hi)

	require.Equal(t, pixel.KindUint8, pixel.KindOf[gray8]())
	require.Equal(t, pixel.KindInt16, pixel.KindOf[short]())
	require.True(t, pixel.KindOf[density]().IsFloat())
}
