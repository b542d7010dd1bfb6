// SPDX-License-Identifier: MIT

// Package pixel defines the closed set of element kinds an image may hold
// and the minimal capabilities the access layer needs from an element:
// copy (Go value semantics), create-variable (the zero value), equality and
// ordering.
//
// Kinds are resolved through a fixed table; there is no runtime lookup by
// type name and no registration hook.
package pixel
