// SPDX-License-Identifier: MIT

package ops

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBins is the histogram bin count.
	DefaultBins = 256

	// DefaultThreshold is the smallest value counted as foreground by
	// ConnectedComponents.
	DefaultThreshold = 1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBinsInvalid  = "ops: WithBins: bins must be >= 1"
	panicRangeInvalid = "ops: WithRange: need finite lo < hi"
	panicThreshold    = "ops: WithThreshold: threshold must not be NaN"
	panicConnectivity = "ops: WithConnectivity: unknown connectivity"
)

// Option configures an operation. Safe to apply repeatedly; options an
// operation does not use are ignored.
type Option func(*Options)

// Options is the effective configuration. Each call owns its own copy;
// nothing is shared between calls.
type Options struct {
	bins     int
	lo, hi   float64
	hasRange bool

	threshold float64
	conn      Connectivity
}

// WithBins sets the number of bins. Panics if n < 1.
func WithBins(n int) Option {
	if n < 1 {
		panic(panicBinsInvalid)
	}

	return func(o *Options) { o.bins = n }
}

// WithRange fixes the value range [lo, hi] covered by the bins. Without it
// integer element types use their full range and floating types the data
// range. Panics unless lo < hi and both are finite.
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic(panicRangeInvalid)
	}

	return func(o *Options) {
		o.lo, o.hi, o.hasRange = lo, hi, true
	}
}

// WithThreshold sets the foreground threshold of ConnectedComponents.
// Panics on NaN.
func WithThreshold(v float64) Option {
	if math.IsNaN(v) {
		panic(panicThreshold)
	}

	return func(o *Options) { o.threshold = v }
}

// WithConnectivity selects the neighbourhood of ConnectedComponents.
// Panics on an unknown value.
func WithConnectivity(c Connectivity) Option {
	if c != ConnFace && c != ConnFull {
		panic(panicConnectivity)
	}

	return func(o *Options) { o.conn = c }
}

func gatherOptions(opts ...Option) Options {
	o := Options{bins: DefaultBins, threshold: DefaultThreshold, conn: ConnFace}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
