// SPDX-License-Identifier: MIT

package view

import (
	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/oob"
	"github.com/katalvlaran/lvlimg/space"
)

// ExtendedView is a source extended over all of integer space by an
// out-of-bounds policy. Composition stops here.
type ExtendedView[T any] struct {
	source  access.RandomAccessibleInterval[T]
	factory oob.Factory[T]
}

var _ access.RandomAccessible[int] = (*ExtendedView[int])(nil)

// Source returns the extended interval.
func (v *ExtendedView[T]) Source() access.RandomAccessibleInterval[T] { return v.source }

// Policy reports the out-of-bounds policy.
func (v *ExtendedView[T]) Policy() oob.Policy { return v.factory.Policy() }

// NumDimensions returns the dimensionality of the source.
func (v *ExtendedView[T]) NumDimensions() int { return v.source.NumDimensions() }

// RandomAccess returns an out-of-bounds accessor.
func (v *ExtendedView[T]) RandomAccess() access.RandomAccess[T] {
	ra, err := v.factory.Create(v.source)
	if err != nil {
		// the source interval was validated by Extend
		panic(err)
	}

	return ra
}

// RandomAccessIn skips the out-of-bounds wrapper when iv lies inside the
// source. iv must be non-nil and have the source's dimensionality.
func (v *ExtendedView[T]) RandomAccessIn(iv space.Interval) access.RandomAccess[T] {
	checkHint("ExtendedView.RandomAccessIn", v.NumDimensions(), iv)
	if space.ContainsInterval(v.source, iv) {
		return v.source.RandomAccessIn(iv)
	}

	return v.RandomAccess()
}
