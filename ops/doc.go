// SPDX-License-Identifier: MIT

// Package ops holds a few whole-image operations written only against the
// access contracts, so they run unchanged over any container or view:
// Fill, Copy, MinMax, Histogram and ConnectedComponents.
package ops

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'lvlimg'
func tracer() tracing.Trace {
	return tracing.Select("lvlimg")
}
