// SPDX-License-Identifier: MIT

package access

import "github.com/katalvlaran/lvlimg/space"

// IterationOrder identifies an enumeration scheme together with the shape
// it enumerates. Two orders are Equal only if cursors built from them visit
// corresponding positions at the same step.
type IterationOrder interface {
	Equal(other IterationOrder) bool
}

// FlatIterationOrder is row-major order with axis 0 fastest over a shape.
// It ignores where the interval sits in space: lock-step walking pairs
// positions relative to each interval's min.
type FlatIterationOrder struct {
	dims []int64
}

// NewFlatIterationOrder captures the shape of iv.
func NewFlatIterationOrder(iv space.Interval) FlatIterationOrder {
	return FlatIterationOrder{dims: space.DimensionsOf(iv)}
}

// Equal reports whether other is a flat order over the identical shape.
func (o FlatIterationOrder) Equal(other IterationOrder) bool {
	f, ok := other.(FlatIterationOrder)
	if !ok || len(f.dims) != len(o.dims) {
		return false
	}
	for d := range o.dims {
		if o.dims[d] != f.dims[d] {
			return false
		}
	}

	return true
}

// EqualIterationOrder compares the iteration orders of a and b.
func EqualIterationOrder(a, b Iterable) bool {
	if a == nil || b == nil {
		return false
	}

	return a.IterationOrder().Equal(b.IterationOrder())
}
