// SPDX-License-Identifier: MIT

package viewspec

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/oob"
	"github.com/katalvlaran/lvlimg/pixel"
	"github.com/katalvlaran/lvlimg/space"
	"github.com/katalvlaran/lvlimg/transform"
	"github.com/katalvlaran/lvlimg/view"
)

// Apply builds the views of c over src and returns the outermost one. The
// result implements access.RandomAccessibleInterval[T] unless the chain
// ends unbounded (after an extend with no interval following it).
//
// Errors: ErrInvalidStep for zero-min or extend on an unbounded view, plus
// the view constructors' errors (space.ErrDimensionMismatch, ...).
func Apply[T pixel.Number](c *Chain, src access.RandomAccessibleInterval[T]) (access.RandomAccessible[T], error) {
	if c == nil || src == nil {
		return nil, fmt.Errorf("viewspec: Apply: %w", space.ErrNilSource)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var cur access.RandomAccessible[T] = src
	for i, st := range c.Steps {
		next, err := applyStep(st, cur)
		if err != nil {
			tracer().Errorf("viewspec: step %d (%s): %v", i, st.Op, err)

			return nil, fmt.Errorf("viewspec: step %d (%s): %w", i, st.Op, err)
		}
		cur = next
	}
	tracer().Debugf("viewspec: applied %d steps, result %T", len(c.Steps), cur)

	return cur, nil
}

func applyStep[T pixel.Number](st Step, cur access.RandomAccessible[T]) (access.RandomAccessible[T], error) {
	bounded, isBounded := cur.(access.RandomAccessibleInterval[T])
	n := cur.NumDimensions()

	switch st.Op {
	case OpInterval:
		return view.IntervalMinMax(cur, st.Min, st.Max)
	case OpZeroMin:
		if !isBounded {
			return nil, fmt.Errorf("zero-min on an unbounded view: %w", ErrInvalidStep)
		}
		return view.ZeroMin(bounded)
	case OpExtend:
		if !isBounded {
			return nil, fmt.Errorf("extend of an unbounded view: %w", ErrInvalidStep)
		}
		p, err := oob.ParsePolicy(st.Policy)
		if err != nil {
			return nil, err
		}
		f, err := oob.ForPolicy(p, pixel.FromFloat64[T](st.Value))
		if err != nil {
			return nil, err
		}
		return view.Extend(bounded, f)
	}

	m, err := stepTransform(st, n)
	if err != nil {
		return nil, err
	}
	if isBounded {
		return view.Transform(bounded, m)
	}

	return view.TransformAccessible(cur, m)
}

// stepTransform returns the view-to-source transform of a transform step.
func stepTransform(st Step, n int) (*transform.Mixed, error) {
	switch st.Op {
	case OpTranslate, OpOffset:
		if err := space.ValidateVecLen(st.Offset, n); err != nil {
			return nil, err
		}
		off := append([]int64(nil), st.Offset...)
		if st.Op == OpTranslate {
			for d := range off {
				off[d] = -off[d]
			}
		}
		return transform.Translation(off...)
	case OpPermute:
		return transform.Permutation(n, st.Axes[0], st.Axes[1])
	case OpInvert:
		return transform.Inversion(n, *st.Axis)
	case OpRotate:
		return transform.Rotation(n, *st.From, *st.To)
	}

	return nil, fmt.Errorf("op %q: %w", st.Op, ErrUnknownStep)
}
