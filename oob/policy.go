// SPDX-License-Identifier: MIT

package oob

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
)

// Policy names an out-of-bounds strategy.
type Policy int

const (
	// PolicyConstant reads a fixed value outside the source; writes there
	// are discarded.
	PolicyConstant Policy = iota
	// PolicyMirrorSingle reflects with the edge element repeated
	// (period 2n: ... 1 0 | 0 1 2 | 2 1 ...).
	PolicyMirrorSingle
	// PolicyMirrorDouble reflects without repeating the edge element
	// (period 2n-2: ... 2 1 | 0 1 2 | 1 0 ...).
	PolicyMirrorDouble
	// PolicyPeriodic wraps around (period n).
	PolicyPeriodic
	// PolicyBorder clamps to the nearest edge element.
	PolicyBorder
)

var policyNames = [...]string{
	PolicyConstant:     "constant",
	PolicyMirrorSingle: "mirror-single",
	PolicyMirrorDouble: "mirror-double",
	PolicyPeriodic:     "periodic",
	PolicyBorder:       "border",
}

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}

	return policyNames[p]
}

// ParsePolicy maps a policy name to a Policy. "value" is accepted for
// constant and "clamp" for border.
//
// Errors: space.ErrUnsupportedBacking.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "constant", "value":
		return PolicyConstant, nil
	case "mirror-single", "mirror":
		return PolicyMirrorSingle, nil
	case "mirror-double":
		return PolicyMirrorDouble, nil
	case "periodic":
		return PolicyPeriodic, nil
	case "border", "clamp":
		return PolicyBorder, nil
	}

	return 0, fmt.Errorf("oob: ParsePolicy(%q): %w", name, space.ErrUnsupportedBacking)
}

// Factory creates out-of-bounds accessors over a source.
type Factory[T any] interface {
	// Create wraps src.RandomAccess().
	//
	// Errors: space.ErrNilSource, space.ErrDegenerateInterval.
	Create(src access.RandomAccessibleInterval[T]) (*OutOfBounds[T], error)

	// Policy reports the strategy this factory applies.
	Policy() Policy
}

type factory[T any] struct {
	policy Policy
	value  T
}

// ConstantValue returns value for every position outside the source.
func ConstantValue[T any](value T) Factory[T] {
	return factory[T]{policy: PolicyConstant, value: value}
}

// MirrorSingle reflects with the edge pixel repeated: for [0, n-1],
// -1 → 0 and n → n-1. The pattern has period 2n.
func MirrorSingle[T any]() Factory[T] { return factory[T]{policy: PolicyMirrorSingle} }

// MirrorDouble reflects about the edge pixel centre: -1 → 1 and n → n-2.
// The pattern has period 2n-2.
func MirrorDouble[T any]() Factory[T] { return factory[T]{policy: PolicyMirrorDouble} }

// Periodic wraps modulo the extent.
func Periodic[T any]() Factory[T] { return factory[T]{policy: PolicyPeriodic} }

// Border clamps to the nearest edge.
func Border[T any]() Factory[T] { return factory[T]{policy: PolicyBorder} }

// ForPolicy returns the factory for p. value is used by PolicyConstant only.
//
// Errors: space.ErrUnsupportedBacking for an unknown policy.
func ForPolicy[T any](p Policy, value T) (Factory[T], error) {
	switch p {
	case PolicyConstant, PolicyMirrorSingle, PolicyMirrorDouble, PolicyPeriodic, PolicyBorder:
		return factory[T]{policy: p, value: value}, nil
	}

	return nil, fmt.Errorf("oob: ForPolicy(%s): %w", p, space.ErrUnsupportedBacking)
}

func (f factory[T]) Policy() Policy { return f.policy }

func (f factory[T]) Create(src access.RandomAccessibleInterval[T]) (*OutOfBounds[T], error) {
	if src == nil {
		return nil, fmt.Errorf("oob: %s: %w", f.policy, space.ErrNilSource)
	}
	if err := space.ValidateInterval(src); err != nil {
		tracer().Errorf("oob: %s over %v rejected: %v", f.policy, space.BoxOf(src), err)

		return nil, fmt.Errorf("oob: %s: %w", f.policy, err)
	}
	tracer().Debugf("oob: %s over %v", f.policy, space.BoxOf(src))

	return newOutOfBounds(src, f.policy, f.value), nil
}
