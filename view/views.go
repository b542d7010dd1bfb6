// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/oob"
	"github.com/katalvlaran/lvlimg/space"
	"github.com/katalvlaran/lvlimg/transform"
)

// Interval restricts src to iv. src may be unbounded (an extension) or
// bounded; iv need not lie inside a bounded src.
//
// Errors: space.ErrNilSource, space.ErrDimensionMismatch,
// space.ErrDegenerateInterval.
func Interval[T any](src access.RandomAccessible[T], iv space.Interval) (*IntervalView[T], error) {
	if src == nil || iv == nil {
		return nil, viewErrorf("Interval", space.ErrNilSource)
	}
	if err := space.ValidateSameDimensions(src, iv); err != nil {
		return nil, viewErrorf("Interval", err)
	}
	if err := space.ValidateInterval(iv); err != nil {
		return nil, viewErrorf("Interval", err)
	}

	return newIntervalView(src, space.BoxOf(iv)), nil
}

// IntervalMinMax restricts src to [lo, hi].
//
// Errors: as Interval, plus space.ErrMalformedInterval.
func IntervalMinMax[T any](src access.RandomAccessible[T], lo, hi []int64) (*IntervalView[T], error) {
	box, err := space.NewBox(lo, hi)
	if err != nil {
		return nil, viewErrorf("IntervalMinMax", err)
	}

	return Interval(src, box)
}

// Translate moves src by offset: the view element at x is the source
// element at x - offset.
//
// Errors: space.ErrNilSource, space.ErrDimensionMismatch.
func Translate[T any](src access.RandomAccessibleInterval[T], offset ...int64) (*IntervalView[T], error) {
	m, err := negatedTranslation("Translate", src, offset)
	if err != nil {
		return nil, err
	}

	return transformInterval("Translate", src, m)
}

// Offset shifts the origin of src: the view element at x is the source
// element at x + offset.
//
// Errors: space.ErrNilSource, space.ErrDimensionMismatch.
func Offset[T any](src access.RandomAccessibleInterval[T], offset ...int64) (*IntervalView[T], error) {
	if err := checkVec("Offset", src, offset); err != nil {
		return nil, err
	}
	m, err := transform.Translation(offset...)
	if err != nil {
		return nil, viewErrorf("Offset", err)
	}

	return transformInterval("Offset", src, m)
}

// ZeroMin translates src so that its min lands on the origin.
//
// Errors: space.ErrNilSource.
func ZeroMin[T any](src access.RandomAccessibleInterval[T]) (*IntervalView[T], error) {
	if src == nil {
		return nil, viewErrorf("ZeroMin", space.ErrNilSource)
	}

	return Offset(src, space.MinOf(src)...)
}

// OffsetInterval is the sub-image iv of src, translated to start at the
// origin.
//
// Errors: as Interval.
func OffsetInterval[T any](src access.RandomAccessible[T], iv space.Interval) (*IntervalView[T], error) {
	sub, err := Interval(src, iv)
	if err != nil {
		return nil, viewErrorf("OffsetInterval", err)
	}

	return ZeroMin[T](sub)
}

// Permute swaps axes a and b.
//
// Errors: space.ErrNilSource, space.ErrOutOfRange.
func Permute[T any](src access.RandomAccessibleInterval[T], a, b int) (*IntervalView[T], error) {
	if src == nil {
		return nil, viewErrorf("Permute", space.ErrNilSource)
	}
	m, err := transform.Permutation(src.NumDimensions(), a, b)
	if err != nil {
		return nil, viewErrorf("Permute", err)
	}

	return transformInterval("Permute", src, m)
}

// InvertAxis mirrors axis d through the origin: the view element at x is
// the source element at x with x[d] negated.
//
// Errors: space.ErrNilSource, space.ErrOutOfRange.
func InvertAxis[T any](src access.RandomAccessibleInterval[T], d int) (*IntervalView[T], error) {
	if src == nil {
		return nil, viewErrorf("InvertAxis", space.ErrNilSource)
	}
	m, err := transform.Inversion(src.NumDimensions(), d)
	if err != nil {
		return nil, viewErrorf("InvertAxis", err)
	}

	return transformInterval("InvertAxis", src, m)
}

// Rotate turns src by 90 degrees from axis from towards axis to.
//
// Errors: space.ErrNilSource, space.ErrOutOfRange.
func Rotate[T any](src access.RandomAccessibleInterval[T], from, to int) (*IntervalView[T], error) {
	if src == nil {
		return nil, viewErrorf("Rotate", space.ErrNilSource)
	}
	m, err := transform.Rotation(src.NumDimensions(), from, to)
	if err != nil {
		return nil, viewErrorf("Rotate", err)
	}

	return transformInterval("Rotate", src, m)
}

// Transform presents src through m (view to source coordinates). The view
// interval is the preimage of the source interval.
//
// Errors: space.ErrNilSource, space.ErrDimensionMismatch.
func Transform[T any](src access.RandomAccessibleInterval[T], m *transform.Mixed) (*IntervalView[T], error) {
	if src == nil || m == nil {
		return nil, viewErrorf("Transform", space.ErrNilSource)
	}

	return transformInterval("Transform", src, m)
}

// TransformAccessible presents an unbounded src through m.
//
// Errors: space.ErrNilSource, space.ErrDimensionMismatch.
func TransformAccessible[T any](src access.RandomAccessible[T], m *transform.Mixed) (*MixedTransformView[T], error) {
	if src == nil || m == nil {
		return nil, viewErrorf("TransformAccessible", space.ErrNilSource)
	}
	if err := space.ValidateSameDimensions(src, m); err != nil {
		return nil, viewErrorf("TransformAccessible", err)
	}

	return &MixedTransformView[T]{source: src, transform: m}, nil
}

// Extend extends src over all of integer space with the policy of f.
//
// Errors: space.ErrNilSource, space.ErrDegenerateInterval.
func Extend[T any](src access.RandomAccessibleInterval[T], f oob.Factory[T]) (*ExtendedView[T], error) {
	if src == nil || f == nil {
		return nil, viewErrorf("Extend", space.ErrNilSource)
	}
	if err := space.ValidateInterval(src); err != nil {
		return nil, viewErrorf(fmt.Sprintf("Extend(%s)", f.Policy()), err)
	}

	return &ExtendedView[T]{source: src, factory: f}, nil
}

// ExtendValue extends src with a constant.
func ExtendValue[T any](src access.RandomAccessibleInterval[T], value T) (*ExtendedView[T], error) {
	return Extend(src, oob.ConstantValue(value))
}

// ExtendMirrorSingle extends src by reflection with the edge repeated.
func ExtendMirrorSingle[T any](src access.RandomAccessibleInterval[T]) (*ExtendedView[T], error) {
	return Extend(src, oob.MirrorSingle[T]())
}

// ExtendMirrorDouble extends src by reflection about the edge pixel.
func ExtendMirrorDouble[T any](src access.RandomAccessibleInterval[T]) (*ExtendedView[T], error) {
	return Extend(src, oob.MirrorDouble[T]())
}

// ExtendPeriodic extends src periodically.
func ExtendPeriodic[T any](src access.RandomAccessibleInterval[T]) (*ExtendedView[T], error) {
	return Extend(src, oob.Periodic[T]())
}

// ExtendBorder extends src by repeating its border.
func ExtendBorder[T any](src access.RandomAccessibleInterval[T]) (*ExtendedView[T], error) {
	return Extend(src, oob.Border[T]())
}

// Iterable returns src itself when it already iterates, and a flat
// iterable view otherwise.
//
// Errors: space.ErrNilSource.
func Iterable[T any](src access.RandomAccessibleInterval[T]) (access.IterableInterval[T], error) {
	if src == nil {
		return nil, viewErrorf("Iterable", space.ErrNilSource)
	}
	if it, ok := src.(access.IterableInterval[T]); ok {
		return it, nil
	}

	return FlatIterable(src)
}

// FlatIterable wraps src for flat iteration regardless of its own order.
//
// Errors: space.ErrNilSource, space.ErrDegenerateInterval.
func FlatIterable[T any](src access.RandomAccessibleInterval[T]) (*IterableView[T], error) {
	if src == nil {
		return nil, viewErrorf("FlatIterable", space.ErrNilSource)
	}
	if err := space.ValidateInterval(src); err != nil {
		return nil, viewErrorf("FlatIterable", err)
	}

	return &IterableView[T]{source: src}, nil
}

// transformInterval wraps src in a MixedTransformView bounded by the
// preimage of src's interval.
func transformInterval[T any](tag string, src access.RandomAccessibleInterval[T], m *transform.Mixed) (*IntervalView[T], error) {
	box, err := m.Inverse().ApplyBox(src)
	if err != nil {
		return nil, viewErrorf(tag, err)
	}

	return newIntervalView[T](&MixedTransformView[T]{source: src, transform: m}, box), nil
}

func negatedTranslation[T any](tag string, src access.RandomAccessibleInterval[T], offset []int64) (*transform.Mixed, error) {
	if err := checkVec(tag, src, offset); err != nil {
		return nil, err
	}
	neg := make([]int64, len(offset))
	for d, o := range offset {
		neg[d] = -o
	}
	m, err := transform.Translation(neg...)
	if err != nil {
		return nil, viewErrorf(tag, err)
	}

	return m, nil
}

func checkVec[T any](tag string, src access.RandomAccessibleInterval[T], v []int64) error {
	if src == nil {
		return viewErrorf(tag, space.ErrNilSource)
	}
	if err := space.ValidateVecLen(v, src.NumDimensions()); err != nil {
		return viewErrorf(tag, err)
	}

	return nil
}
