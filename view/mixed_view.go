// SPDX-License-Identifier: MIT

package view

import (
	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
	"github.com/katalvlaran/lvlimg/transform"
)

// MixedTransformView presents source through a mixed transform mapping view
// coordinates to source coordinates. It is unbounded; wrap it in an
// IntervalView to give it bounds.
type MixedTransformView[T any] struct {
	source    access.RandomAccessible[T]
	transform *transform.Mixed
}

var _ access.RandomAccessible[int] = (*MixedTransformView[int])(nil)

// Source returns the wrapped accessible.
func (v *MixedTransformView[T]) Source() access.RandomAccessible[T] { return v.source }

// Transform returns the view-to-source transform.
func (v *MixedTransformView[T]) Transform() *transform.Mixed { return v.transform }

// NumDimensions returns the dimensionality of the view (and its source).
func (v *MixedTransformView[T]) NumDimensions() int { return v.transform.NumDimensions() }

// RandomAccess composes an accessor valid everywhere the source is.
func (v *MixedTransformView[T]) RandomAccess() access.RandomAccess[T] {
	return compose[T](v, nil)
}

// RandomAccessIn composes an accessor for use inside iv. iv must be non-nil
// and have the view's dimensionality; otherwise it panics with a wrapped
// space.ErrNilSource or space.ErrDimensionMismatch.
func (v *MixedTransformView[T]) RandomAccessIn(iv space.Interval) access.RandomAccess[T] {
	checkHint("MixedTransformView.RandomAccessIn", v.NumDimensions(), iv)

	return compose[T](v, iv)
}
