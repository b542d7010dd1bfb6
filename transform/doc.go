// SPDX-License-Identifier: MIT

// Package transform implements the mixed transform: the affine integer maps
// built from an axis permutation, per-axis inversion and a translation.
//
// A Mixed maps a target (view) position x to a source position s:
//
//	s[d] = translation[d] ± x[component[d]]     (− where inverted[d])
//
// The family is closed under Concatenate and Inverse, which is what lets an
// arbitrarily deep chain of translate/permute/invert views collapse into a
// single accessor.
package transform
