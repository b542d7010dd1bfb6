// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/pixel"
	"github.com/katalvlaran/lvlimg/space"
)

// MinMax returns the smallest and largest element. NaN elements are
// skipped; an all-NaN source yields NaN for both.
//
// Errors: space.ErrNilSource.
func MinMax[T pixel.Number](src access.IterableInterval[T]) (lo, hi T, err error) {
	if src == nil {
		return lo, hi, fmt.Errorf("ops: MinMax: %w", space.ErrNilSource)
	}
	c := src.Cursor()
	first := true
	for c.HasNext() {
		v := c.Next()
		if v != v {
			if first {
				lo, hi = v, v
			}
			continue
		}
		if first || v < lo {
			lo = v
		}
		if first || v > hi {
			hi = v
		}
		first = false
	}

	return lo, hi, c.Err()
}

// Histogram counts elements into equally wide bins over [Lo, Hi]. Values
// outside the range are counted in Below and Above.
type Histogram struct {
	Counts []int64
	Lo, Hi float64
	Below  int64
	Above  int64
}

// NewHistogram computes the histogram of src.
//
// Errors: space.ErrNilSource.
func NewHistogram[T pixel.Number](src access.IterableInterval[T], opts ...Option) (*Histogram, error) {
	if src == nil {
		return nil, fmt.Errorf("ops: NewHistogram: %w", space.ErrNilSource)
	}
	o := gatherOptions(opts...)
	h := &Histogram{Counts: make([]int64, o.bins), Lo: o.lo, Hi: o.hi}
	if !o.hasRange {
		if pixel.KindOf[T]().IsFloat() {
			lo, hi, err := MinMax(src)
			if err != nil {
				return nil, err
			}
			h.Lo, h.Hi = float64(lo), float64(hi)
		} else {
			h.Lo, h.Hi = pixel.Range[T]()
		}
	}
	tracer().Debugf("ops: histogram of %v, %d bins over [%g, %g]", space.BoxOf(src), o.bins, h.Lo, h.Hi)

	c := src.Cursor()
	for c.HasNext() {
		h.Add(float64(c.Next()))
	}

	return h, c.Err()
}

// Bin returns the bin of v, or -1 if v is outside [Lo, Hi] or NaN.
func (h *Histogram) Bin(v float64) int {
	if v != v || v < h.Lo || v > h.Hi {
		return -1
	}
	n := len(h.Counts)
	if h.Hi == h.Lo {
		return 0
	}
	b := int(float64(n) * (v - h.Lo) / (h.Hi - h.Lo))
	if b >= n {
		b = n - 1
	}

	return b
}

// Add counts one value.
func (h *Histogram) Add(v float64) {
	if b := h.Bin(v); b >= 0 {
		h.Counts[b]++
		return
	}
	if v < h.Lo {
		h.Below++
	} else if v > h.Hi {
		h.Above++
	}
}

// Total returns the number of counted values, out-of-range ones included.
func (h *Histogram) Total() int64 {
	t := h.Below + h.Above
	for _, c := range h.Counts {
		t += c
	}

	return t
}

// BinWidth returns the value span of one bin.
func (h *Histogram) BinWidth() float64 {
	return (h.Hi - h.Lo) / float64(len(h.Counts))
}

// Quantile returns the lower edge of the bin holding the q-th fraction of
// the in-range values. q is clamped into [0, 1].
func (h *Histogram) Quantile(q float64) float64 {
	q = math.Max(0, math.Min(1, q))
	var inRange int64
	for _, c := range h.Counts {
		inRange += c
	}
	target := int64(math.Ceil(q * float64(inRange)))
	var acc int64
	for i, c := range h.Counts {
		acc += c
		if acc >= target && acc > 0 {
			return h.Lo + float64(i)*h.BinWidth()
		}
	}

	return h.Hi
}

// String renders the range, bin count and counts on one line.
func (h *Histogram) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "histogram [%g, %g] %d bins:", h.Lo, h.Hi, len(h.Counts))
	for _, c := range h.Counts {
		fmt.Fprintf(&sb, " %d", c)
	}

	return sb.String()
}
