// SPDX-License-Identifier: MIT
// Package: space
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/axis checks.
//  - Keep constructors in storage/view/oob minimal by delegating here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    add their own context and callers can still use errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.

package space

import (
	"fmt"
	"math"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateAxis ensures 0 <= d < n.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateAxis(n, d int) error {
	if d < 0 || d >= n {
		return validatorErrorf(fmt.Sprintf("ValidateAxis(%d of %d)", d, n), ErrOutOfRange)
	}

	return nil
}

// ValidateVecLen ensures a coordinate vector has exactly n components.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(v []int64, n int) error {
	if len(v) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(%d != %d)", len(v), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameDimensions ensures a and b live in spaces of equal dimensionality.
//
// Errors: ErrNilSource if either is nil (including a nil pointer held in the
// interface), ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSameDimensions(a, b Dimensioned) error {
	if isNil(a) || isNil(b) {
		return validatorErrorf("ValidateSameDimensions", ErrNilSource)
	}
	if a.NumDimensions() != b.NumDimensions() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameDimensions(%d != %d)", a.NumDimensions(), b.NumDimensions()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateShape ensures dims describes a non-empty shape: at least one axis,
// every extent >= 1 and an element count that fits in int64.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(n).
func ValidateShape(dims []int64) error {
	if len(dims) == 0 {
		return validatorErrorf("ValidateShape: no axes", ErrInvalidDimensions)
	}
	count := int64(1)
	for d, s := range dims {
		if s < 1 {
			return validatorErrorf(fmt.Sprintf("ValidateShape: axis %d has extent %d", d, s), ErrInvalidDimensions)
		}
		var ok bool
		if count, ok = mulExtent(count, s); !ok {
			return validatorErrorf(fmt.Sprintf("ValidateShape(%v): element count overflows int64", dims), ErrInvalidDimensions)
		}
	}

	return nil
}

// ValidateInterval checks an arbitrary Interval implementation for a
// positive extent on every axis and an element count that fits in int64.
// Intervals built by this package always pass; foreign implementations may
// not.
//
// Errors: ErrNilSource, ErrDegenerateInterval, ErrInvalidDimensions.
// Complexity: O(n).
func ValidateInterval(iv Interval) error {
	if isNil(iv) {
		return validatorErrorf("ValidateInterval", ErrNilSource)
	}
	if iv.NumDimensions() < 1 {
		return validatorErrorf("ValidateInterval: no axes", ErrDegenerateInterval)
	}
	for d := 0; d < iv.NumDimensions(); d++ {
		if iv.Max(d) < iv.Min(d) || iv.Dimension(d) < 1 {
			return validatorErrorf(fmt.Sprintf("ValidateInterval: axis %d", d), ErrDegenerateInterval)
		}
	}
	if _, ok := countElements(iv); !ok {
		return validatorErrorf("ValidateInterval: element count overflows int64", ErrInvalidDimensions)
	}

	return nil
}

// mulExtent multiplies a running element count by extent s >= 1 and
// reports whether the product still fits in int64.
func mulExtent(count, s int64) (int64, bool) {
	if count > math.MaxInt64/s {
		return 0, false
	}

	return count * s, true
}

// countElements is NumElements with overflow reporting. Extents must be >= 1.
func countElements(iv Interval) (int64, bool) {
	count := int64(1)
	for d := 0; d < iv.NumDimensions(); d++ {
		var ok bool
		if count, ok = mulExtent(count, iv.Dimension(d)); !ok {
			return 0, false
		}
	}

	return count, true
}

// isNil reports a nil interface or a nil pointer stored in one.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
