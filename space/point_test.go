// SPDX-License-Identifier: MIT

package space_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/space"
	"github.com/stretchr/testify/require"
)

// TestNewPointInvalid ensures a zero-dimensional point is rejected.
func TestNewPointInvalid(t *testing.T) {
	_, err := space.NewPoint(0)
	require.ErrorIs(t, err, space.ErrInvalidDimensions)
}

// TestPointGetSetOutOfRange verifies checked accessors reject bad axes.
func TestPointGetSetOutOfRange(t *testing.T) {
	p := space.PointOf(1, 2, 3)

	_, err := p.Get(-1)
	require.ErrorIs(t, err, space.ErrOutOfRange)
	_, err = p.Get(3)
	require.ErrorIs(t, err, space.ErrOutOfRange)
	require.ErrorIs(t, p.Set(3, 7), space.ErrOutOfRange)

	require.NoError(t, p.Set(2, 9))
	v, err := p.Get(2)
	require.NoError(t, err)
	require.Equal(t, int64(9), v)
}

// TestPointTranslateIsValue ensures Translate leaves the receiver untouched.
func TestPointTranslateIsValue(t *testing.T) {
	p := space.PointOf(1, 2)
	q, err := p.Translate([]int64{10, -2})
	require.NoError(t, err)

	require.Equal(t, []int64{11, 0}, q.Coords())
	require.Equal(t, []int64{1, 2}, p.Coords())

	_, err = p.Translate([]int64{1, 2, 3})
	require.ErrorIs(t, err, space.ErrDimensionMismatch)
}

// TestPointArithmetic covers Add/Sub/Equal and dimensionality checks.
func TestPointArithmetic(t *testing.T) {
	a, b := space.PointOf(5, 7), space.PointOf(2, 3)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(space.PointOf(7, 10)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(space.PointOf(3, 4)))

	_, err = a.Sub(space.PointOf(1))
	require.ErrorIs(t, err, space.ErrDimensionMismatch)
	require.False(t, a.Equal(space.PointOf(5)))
}

// TestPointPositionable exercises the in-place positioning role.
func TestPointPositionable(t *testing.T) {
	p, err := space.NewPoint(2)
	require.NoError(t, err)

	p.Fwd(0)
	p.Fwd(0)
	p.Bck(1)
	p.Move(5, 1)
	require.Equal(t, []int64{2, 4}, p.Coords())

	p.MoveBy([]int64{-2, -4})
	require.Equal(t, "(0, 0)", p.String())

	q := space.PointOf(8, 9)
	space.SetPositionFrom(p, q)
	require.True(t, p.Equal(q))

	c := p.Copy()
	c.Fwd(0)
	require.False(t, p.Equal(c))
}

// TestRealPoint checks real coordinates and rounding.
func TestRealPoint(t *testing.T) {
	r := space.RealPointOf(1.4, -2.5)
	_, err := r.Get(2)
	require.ErrorIs(t, err, space.ErrOutOfRange)

	moved, err := r.Translate([]float64{0.2, 0})
	require.NoError(t, err)
	v, err := moved.Get(0)
	require.NoError(t, err)
	require.InDelta(t, 1.6, v, 1e-12)

	require.Equal(t, []int64{1, -3}, r.Round().Coords())

	_, err = space.NewRealPoint(0)
	require.ErrorIs(t, err, space.ErrInvalidDimensions)
}

// TestPointArithmeticNilOperand ensures a nil operand is reported, not
// dereferenced.
func TestPointArithmeticNilOperand(t *testing.T) {
	p := space.PointOf(1, 2)

	_, err := p.Add(nil)
	require.ErrorIs(t, err, space.ErrNilSource)
	_, err = p.Sub(nil)
	require.ErrorIs(t, err, space.ErrNilSource)
	require.False(t, p.Equal(nil))
	require.Equal(t, []int64{1, 2}, p.Coords())
}

func TestRoundPositionerDrivesTarget(t *testing.T) {
	target := space.PointOf(9, 9)
	r, err := space.NewRoundPositioner(target, space.RealPointOf(0.4, -0.5))
	require.NoError(t, err)
	require.Equal(t, []int64{0, -1}, target.Coords())

	r.Move(0.2, 0)
	require.InDelta(t, 0.6, r.Position(0), 1e-12)
	require.Equal(t, []int64{1, -1}, target.Coords())

	r.MoveBy([]float64{-1.2, 2.0})
	require.Equal(t, []int64{-1, 2}, target.Coords())

	r.Fwd(1)
	r.Bck(0)
	require.Equal(t, []int64{-2, 3}, target.Coords())

	r.SetPosition([]float64{2.5, -2.5})
	require.Equal(t, []int64{3, -3}, target.Coords())
	out := make([]float64, 2)
	r.Localize(out)
	require.Equal(t, []float64{2.5, -2.5}, out)
	require.Equal(t, []int64{3, -3}, r.RealPoint().Round().Coords())
	require.Same(t, target, r.Target())
}

func TestRoundPositionerErrors(t *testing.T) {
	var nilPoint *space.Point
	_, err := space.NewRoundPositioner(nilPoint, space.RealPointOf(1))
	require.ErrorIs(t, err, space.ErrNilSource)
	_, err = space.NewRoundPositioner(space.PointOf(1), nil)
	require.ErrorIs(t, err, space.ErrNilSource)
	_, err = space.NewRoundPositioner(space.PointOf(1, 2), space.RealPointOf(1))
	require.ErrorIs(t, err, space.ErrDimensionMismatch)
}
