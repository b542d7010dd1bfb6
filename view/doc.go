// SPDX-License-Identifier: MIT

// Package view builds lazy views over random-accessible sources: interval
// restriction, translation, axis permutation, inversion and rotation, and
// extension with an out-of-bounds policy. Views own no storage and may
// alias the same source freely.
//
// A view does not forward accesses hop by hop. When an accessor is
// requested, the chain below the view is collapsed: pure restrictions and
// mixed transforms are folded into one transform.Mixed until the first
// opaque boundary (a storage container, an extension or any foreign
// accessible) is reached. The resulting accessor costs O(1) per move
// regardless of chain depth:
//
//	no transform        the boundary's own accessor
//	pure translation    one offset per axis
//	otherwise           one permuted, signed move per call
//
// Extensions are never collapsed through; an extended view is a boundary
// that hands out its out-of-bounds accessor (or the plain source accessor
// when the requested interval lies inside the source).
package view

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/lvlimg/space"
)

// tracer writes to trace with key 'lvlimg'
func tracer() tracing.Trace {
	return tracing.Select("lvlimg")
}

// viewErrorf wraps an underlying error with the failing constructor's name.
func viewErrorf(tag string, err error) error {
	return fmt.Errorf("view: %s: %w", tag, err)
}

// checkHint panics unless iv is a non-nil interval of dimensionality n.
// RandomAccessIn has no error return, so a bad hint is a precondition
// violation like an out-of-range axis.
func checkHint(tag string, n int, iv space.Interval) {
	if iv == nil {
		panic(viewErrorf(tag, space.ErrNilSource))
	}
	if iv.NumDimensions() != n {
		panic(viewErrorf(fmt.Sprintf("%s(%d-D interval on %d-D view)", tag, iv.NumDimensions(), n), space.ErrDimensionMismatch))
	}
}
