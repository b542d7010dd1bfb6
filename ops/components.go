// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/pixel"
	"github.com/katalvlaran/lvlimg/space"
)

// Connectivity selects which neighbours join a component.
type Connectivity int

const (
	// ConnFace links positions that differ by one on exactly one axis
	// (4 neighbours in 2-D, 6 in 3-D).
	ConnFace Connectivity = iota
	// ConnFull links every position of the surrounding 3×…×3 block
	// (8 neighbours in 2-D, 26 in 3-D).
	ConnFull
)

// ConnectedComponents groups the foreground positions of src into connected
// regions. A position is foreground when its value is >= the threshold
// (WithThreshold, default DefaultThreshold); neighbours follow
// WithConnectivity (default ConnFace).
//
// Each component lists flat indices into src (see space.FlatPosition) in
// breadth-first order from its first element; components are ordered by
// that first index.
//
// Errors: space.ErrNilSource.
//
// Time:   O(N·k), k = 2n (face) or 3^n-1 (full).
// Memory: O(N) for visited flags and output.
func ConnectedComponents[T pixel.Number](src access.RandomAccessibleInterval[T], opts ...Option) ([][]int64, error) {
	if src == nil {
		return nil, fmt.Errorf("ops: ConnectedComponents: %w", space.ErrNilSource)
	}
	o := gatherOptions(opts...)
	n := src.NumDimensions()
	offsets := neighborOffsets(n, o.conn)
	tracer().Debugf("ops: components of %v, %d neighbours, threshold %g",
		space.BoxOf(src), len(offsets), o.threshold)

	// NaN never reaches the threshold.
	foreground := func(v T) bool { return float64(v) >= o.threshold }

	seen := make([]bool, space.NumElements(src))
	ra := src.RandomAccessIn(src)
	u, v := make([]int64, n), make([]int64, n)
	var comps [][]int64

	c := access.NewFlatCursor(src)
	for i := int64(0); c.HasNext(); i++ {
		c.Fwd()
		if seen[i] || !foreground(c.Get()) {
			continue
		}
		seen[i] = true
		queue := []int64{i}
		for qi := 0; qi < len(queue); qi++ {
			space.FlatPosition(src, queue[qi], u)
			for _, off := range offsets {
				for d := range v {
					v[d] = u[d] + off[d]
				}
				if !space.Contains(src, v) {
					continue
				}
				vi := space.FlatIndex(src, v)
				if seen[vi] {
					continue
				}
				ra.SetPosition(v)
				if foreground(ra.Get()) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, c.Err()
}

// neighborOffsets lists the relative positions of every neighbour, computed
// once per call.
func neighborOffsets(n int, conn Connectivity) [][]int64 {
	var out [][]int64
	if conn == ConnFace {
		for d := 0; d < n; d++ {
			for _, s := range []int64{-1, 1} {
				off := make([]int64, n)
				off[d] = s
				out = append(out, off)
			}
		}

		return out
	}

	off := make([]int64, n)
	for d := range off {
		off[d] = -1
	}
	for {
		if slices.ContainsFunc(off, func(x int64) bool { return x != 0 }) {
			out = append(out, slices.Clone(off))
		}
		d := 0
		for ; d < n && off[d] == 1; d++ {
			off[d] = -1
		}
		if d == n {
			return out
		}
		off[d]++
	}
}
