// SPDX-License-Identifier: MIT

// Package oob extends a bounded source over all of integer space.
//
// An OutOfBounds accessor wraps the source's own random access. While every
// axis is inside the source interval it forwards moves and reads unchanged;
// once an axis leaves, the coordinate handed to the source is remapped per
// policy:
//
//	constant       value outside, no source read
//	mirror-single  reflect with the edge pixel repeated   (-1 → 0)
//	mirror-double  reflect about the edge pixel centre    (-1 → 1)
//	periodic       true modulo over the extent            (-1 → max)
//	border         clamp into [min, max]
//
// Remapping is per axis and handles positions any number of extents away.
// A Factory binds a policy (and for constant its value); Create validates
// the source interval once and returns an accessor.
package oob

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'lvlimg'
func tracer() tracing.Trace {
	return tracing.Select("lvlimg")
}
