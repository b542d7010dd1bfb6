// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlimg/space"
)

// Mixed is immutable; every operation returns a new value.
type Mixed struct {
	translation []int64
	component   []int
	inverted    []bool
}

// NewMixed returns the n-dimensional identity.
//
// Errors: space.ErrInvalidDimensions for n < 1.
func NewMixed(n int) (*Mixed, error) {
	if n < 1 {
		return nil, transformErrorf(fmt.Sprintf("NewMixed(%d)", n), space.ErrInvalidDimensions)
	}

	return identity(n), nil
}

// NewMixedFrom builds a transform from its parts. component must be a
// permutation of 0..n-1; inverted and translation must have n entries
// (nil means all false / all zero).
//
// Errors: space.ErrInvalidDimensions, space.ErrDimensionMismatch,
// space.ErrOutOfRange (component is not a permutation).
func NewMixedFrom(component []int, inverted []bool, translation []int64) (*Mixed, error) {
	n := len(component)
	if n < 1 {
		return nil, transformErrorf("NewMixedFrom", space.ErrInvalidDimensions)
	}
	if inverted == nil {
		inverted = make([]bool, n)
	}
	if translation == nil {
		translation = make([]int64, n)
	}
	if len(inverted) != n || len(translation) != n {
		return nil, transformErrorf(
			fmt.Sprintf("NewMixedFrom(%d components, %d inversions, %d offsets)", n, len(inverted), len(translation)),
			space.ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for d, c := range component {
		if err := space.ValidateAxis(n, c); err != nil {
			return nil, transformErrorf(fmt.Sprintf("NewMixedFrom: component[%d]", d), err)
		}
		if seen[c] {
			return nil, transformErrorf(fmt.Sprintf("NewMixedFrom: axis %d used twice", c), space.ErrOutOfRange)
		}
		seen[c] = true
	}

	return &Mixed{
		translation: append([]int64(nil), translation...),
		component:   append([]int(nil), component...),
		inverted:    append([]bool(nil), inverted...),
	}, nil
}

// Translation returns s = x + offset.
//
// Errors: space.ErrInvalidDimensions for an empty offset.
func Translation(offset ...int64) (*Mixed, error) {
	if len(offset) == 0 {
		return nil, transformErrorf("Translation", space.ErrInvalidDimensions)
	}
	m := identity(len(offset))
	copy(m.translation, offset)

	return m, nil
}

// Permutation swaps axes a and b: s[a] = x[b], s[b] = x[a].
//
// Errors: space.ErrInvalidDimensions, space.ErrOutOfRange.
func Permutation(n, a, b int) (*Mixed, error) {
	if err := validateAxes(n, a, b); err != nil {
		return nil, transformErrorf(fmt.Sprintf("Permutation(%d, %d, %d)", n, a, b), err)
	}
	m := identity(n)
	m.component[a], m.component[b] = b, a

	return m, nil
}

// Inversion mirrors axis d through 0: s[d] = -x[d].
//
// Errors: space.ErrInvalidDimensions, space.ErrOutOfRange.
func Inversion(n, d int) (*Mixed, error) {
	if err := validateAxes(n, d, d); err != nil {
		return nil, transformErrorf(fmt.Sprintf("Inversion(%d, %d)", n, d), err)
	}
	m := identity(n)
	m.inverted[d] = true

	return m, nil
}

// Rotation turns the source by 90 degrees from axis from towards axis to:
// s[from] = x[to], s[to] = -x[from]. A source point on the positive from
// axis appears on the positive to axis of the target.
//
// Errors: space.ErrInvalidDimensions, space.ErrOutOfRange.
func Rotation(n, from, to int) (*Mixed, error) {
	if err := validateAxes(n, from, to); err != nil {
		return nil, transformErrorf(fmt.Sprintf("Rotation(%d, %d, %d)", n, from, to), err)
	}
	m := identity(n)
	if from == to {
		return m, nil
	}
	m.component[from], m.component[to] = to, from
	m.inverted[to] = true

	return m, nil
}

// NumDimensions returns n.
func (m *Mixed) NumDimensions() int { return len(m.component) }

// Component returns the target axis feeding source axis d.
func (m *Mixed) Component(d int) int { return m.component[d] }

// Inverted reports whether source axis d is mirrored.
func (m *Mixed) Inverted(d int) bool { return m.inverted[d] }

// TranslationAt returns the offset on source axis d.
func (m *Mixed) TranslationAt(d int) int64 { return m.translation[d] }

// TranslationVector returns a copy of the translation.
func (m *Mixed) TranslationVector() []int64 { return append([]int64(nil), m.translation...) }

// Apply writes the source position of target position x into s.
// len(x) and len(s) must be >= n; x and s must not alias.
func (m *Mixed) Apply(x, s []int64) {
	for d, c := range m.component {
		if m.inverted[d] {
			s[d] = m.translation[d] - x[c]
		} else {
			s[d] = m.translation[d] + x[c]
		}
	}
}

// ApplyBox maps the target interval iv to the source interval it covers.
//
// Errors: space.ErrNilSource, space.ErrDimensionMismatch.
func (m *Mixed) ApplyBox(iv space.Interval) (*space.Box, error) {
	if err := space.ValidateSameDimensions(m, iv); err != nil {
		return nil, transformErrorf("ApplyBox", err)
	}
	n := len(m.component)
	lo, hi := make([]int64, n), make([]int64, n)
	for d, c := range m.component {
		if m.inverted[d] {
			lo[d], hi[d] = m.translation[d]-iv.Max(c), m.translation[d]-iv.Min(c)
		} else {
			lo[d], hi[d] = m.translation[d]+iv.Min(c), m.translation[d]+iv.Max(c)
		}
	}

	return space.NewBox(lo, hi)
}

// Concatenate returns m ∘ first: the transform applying first, then m.
//
// Errors: space.ErrNilSource, space.ErrDimensionMismatch.
func (m *Mixed) Concatenate(first *Mixed) (*Mixed, error) {
	if first == nil {
		return nil, transformErrorf("Concatenate", space.ErrNilSource)
	}
	if err := space.ValidateSameDimensions(m, first); err != nil {
		return nil, transformErrorf("Concatenate", err)
	}
	out := identity(len(m.component))
	for d, c := range m.component {
		out.component[d] = first.component[c]
		out.inverted[d] = m.inverted[d] != first.inverted[c]
		if m.inverted[d] {
			out.translation[d] = m.translation[d] - first.translation[c]
		} else {
			out.translation[d] = m.translation[d] + first.translation[c]
		}
	}

	return out, nil
}

// Inverse returns the transform mapping source positions back to target
// positions.
func (m *Mixed) Inverse() *Mixed {
	inv := identity(len(m.component))
	for d, c := range m.component {
		inv.component[c] = d
		inv.inverted[c] = m.inverted[d]
		if m.inverted[d] {
			inv.translation[c] = m.translation[d]
		} else {
			inv.translation[c] = -m.translation[d]
		}
	}

	return inv
}

// IsTranslation reports whether m neither permutes nor inverts.
func (m *Mixed) IsTranslation() bool {
	for d, c := range m.component {
		if c != d || m.inverted[d] {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m maps every position to itself.
func (m *Mixed) IsIdentity() bool {
	if !m.IsTranslation() {
		return false
	}
	for _, t := range m.translation {
		if t != 0 {
			return false
		}
	}

	return true
}

// Equal compares all parts.
func (m *Mixed) Equal(o *Mixed) bool {
	if o == nil || len(o.component) != len(m.component) {
		return false
	}
	for d := range m.component {
		if m.component[d] != o.component[d] || m.inverted[d] != o.inverted[d] || m.translation[d] != o.translation[d] {
			return false
		}
	}

	return true
}

// String renders one term per source axis, e.g. "(3 + x1, 2 - x0)".
func (m *Mixed) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for d, c := range m.component {
		if d > 0 {
			sb.WriteString(", ")
		}
		sign := '+'
		if m.inverted[d] {
			sign = '-'
		}
		fmt.Fprintf(&sb, "%d %c x%d", m.translation[d], sign, c)
	}
	sb.WriteByte(')')

	return sb.String()
}

func identity(n int) *Mixed {
	m := &Mixed{
		translation: make([]int64, n),
		component:   make([]int, n),
		inverted:    make([]bool, n),
	}
	for d := range m.component {
		m.component[d] = d
	}

	return m
}

func validateAxes(n int, axes ...int) error {
	if n < 1 {
		return space.ErrInvalidDimensions
	}
	for _, a := range axes {
		if err := space.ValidateAxis(n, a); err != nil {
			return err
		}
	}

	return nil
}

// transformErrorf wraps an underlying error with a transform context tag.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("transform: %s: %w", tag, err)
}
