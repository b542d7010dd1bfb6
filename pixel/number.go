// SPDX-License-Identifier: MIT

package pixel

import (
	"math"
	"reflect"
)

// Number is the constraint for numeric element types. Plain int and uint
// are included for convenience; they have no Kind of their own.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Equal reports a == b.
func Equal[T comparable](a, b T) bool { return a == b }

// Compare returns -1, 0 or +1. NaN sorts before every other value.
func Compare[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	// at least one NaN
	an, bn := a != a, b != b
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	default:
		return 1
	}
}

// FromFloat64 converts v to T. Integer types (named ones included) round
// to nearest and saturate at their range; NaN becomes zero.
func FromFloat64[T Number](v float64) T {
	half := 0.5
	if T(half) != 0 {
		return T(v)
	}
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	lo, hi := rangeOf[T]()
	if v <= lo {
		return T(lo)
	}
	if v >= hi {
		return maxOf[T](hi)
	}

	return T(v)
}

// maxOf returns the exact maximum of an integer T; 64-bit maxima are not
// representable as float64.
func maxOf[T Number](hi float64) T {
	if hi < 1<<63 {
		return T(hi)
	}
	var t T
	t--
	if t > 0 {
		return t
	}

	return -(T(-hi) + 1)
}

// ToFloat64 widens v.
func ToFloat64[T Number](v T) float64 { return float64(v) }

// Range returns the representable minimum and maximum of T as float64.
func Range[T Number]() (lo, hi float64) { return rangeOf[T]() }

// rangeOf derives the range from the underlying kind and width of T, so
// named types (type gray8 uint8) saturate like their underlying type.
func rangeOf[T Number]() (float64, float64) {
	t := reflect.TypeFor[T]()
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Float32:
		return -math.MaxFloat32, math.MaxFloat32
	case reflect.Float64:
		return -math.MaxFloat64, math.MaxFloat64
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return 0, math.Ldexp(1, bits) - 1
	}

	return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1) - 1
}
