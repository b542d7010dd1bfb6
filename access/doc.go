// SPDX-License-Identifier: MIT

// Package access defines the accessor capability set of lvlimg.
//
// Two complementary access patterns exist:
//
//   - Cursor: sequential, stateful iteration over every position of an
//     interval in a deterministic order (flat order, axis 0 fastest, unless a
//     backing defines its own). "Fast" cursors compute their position on
//     demand from a linear counter; "localizing" cursors track it.
//   - RandomAccess: a positionable handle that can be moved anywhere in
//     space. Boundedness is not enforced here; see package oob.
//
// Sources are described by capability traits (RandomAccessible,
// RandomAccessibleInterval, IterableInterval) rather than a class tree:
// a storage backend or a view implements exactly the traits its role needs
// and algorithms are written against the traits.
//
// Concurrency: accessors are single-goroutine objects. Give every goroutine
// its own accessor (Copy, or a fresh Cursor/RandomAccess call) over shared
// storage.
package access
