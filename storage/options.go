// SPDX-License-Identifier: MIT

// Package storage: functional configuration for container factories.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper (internal).

package storage

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/space"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCellSize is the cell extent used on every axis of a CellImg when
	// no explicit cell shape is given.
	DefaultCellSize int64 = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCellSizeInvalid = "storage: WithCellSize: size must be >= 1"
	panicCellDimsInvalid = "storage: WithCellDims: need at least one axis, every extent >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	cellSize int64   // DefaultCellSize
	cellDims []int64 // nil ⇒ cellSize on every axis
}

// WithCellSize sets a uniform cell extent for CellImg.
// Panics if n < 1.
func WithCellSize(n int64) Option {
	if n < 1 {
		panic(panicCellSizeInvalid)
	}

	return func(o *Options) {
		o.cellSize = n
		o.cellDims = nil
	}
}

// WithCellDims sets a per-axis cell shape for CellImg. The number of axes
// must match the image created with it.
// Panics on an empty shape or an extent < 1.
func WithCellDims(dims ...int64) Option {
	if len(dims) == 0 {
		panic(panicCellDimsInvalid)
	}
	for _, s := range dims {
		if s < 1 {
			panic(panicCellDimsInvalid)
		}
	}
	cp := append([]int64(nil), dims...)

	return func(o *Options) {
		o.cellDims = cp
	}
}

// defaultOptions returns Options populated with documented defaults.
func defaultOptions() Options {
	return Options{cellSize: DefaultCellSize}
}

// gatherOptions applies opts over defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// cellShape resolves the cell extents for an n-dimensional image.
func (o Options) cellShape(n int) ([]int64, error) {
	if o.cellDims == nil {
		dims := make([]int64, n)
		for d := range dims {
			dims[d] = o.cellSize
		}

		return dims, nil
	}
	if len(o.cellDims) != n {
		return nil, storageErrorf(fmt.Sprintf("cell shape has %d axes, image %d", len(o.cellDims), n), space.ErrDimensionMismatch)
	}

	return append([]int64(nil), o.cellDims...), nil
}
