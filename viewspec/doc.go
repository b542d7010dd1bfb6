// SPDX-License-Identifier: MIT

// Package viewspec reads view chains from YAML and applies them to an
// image:
//
//	steps:
//	  - op: extend
//	    policy: mirror-single
//	  - op: interval
//	    min: [-8, -8]
//	    max: [519, 519]
//	  - op: zero-min
//	  - op: rotate
//	    from: 0
//	    to: 1
//
// Steps run top to bottom, each wrapping the result of the previous one.
// Supported ops: translate and offset (offset), interval (min, max),
// zero-min, extend (policy, value), permute (axes), invert (axis) and
// rotate (from, to). Unknown fields are rejected.
package viewspec

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'lvlimg'
func tracer() tracing.Trace {
	return tracing.Select("lvlimg")
}
