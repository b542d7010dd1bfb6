// SPDX-License-Identifier: MIT

// Package storage provides the reference image containers the access layer
// runs on:
//
//   - ArrayImg: one flat row-major buffer (axis 0 fastest).
//   - CellImg: a grid of fixed-size cells, each its own flat buffer; edge
//     cells are truncated to the image bounds. Cursors walk cell by cell.
//   - PlanarImg: one buffer per XY plane; iteration order equals ArrayImg.
//
// Every container is an access.RandomAccessibleInterval and an
// access.IterableInterval with min at the origin. Random accesses do not
// check bounds; reading outside the image is the caller's responsibility
// (wrap the image with an out-of-bounds strategy when that is needed).
//
// Containers are created through a Factory so algorithms can allocate a
// same-shaped image of another element type without knowing the layout:
//
//	f, _ := storage.NewFactory(storage.LayoutCell, storage.WithCellSize(32))
//	img, _ := storage.Create[uint16](f, 512, 512, 40)
//	mask, _ := storage.CreateLike[bool](img)
package storage

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'lvlimg'
func tracer() tracing.Trace {
	return tracing.Select("lvlimg")
}
