// SPDX-License-Identifier: MIT

package view

import "github.com/katalvlaran/lvlimg/access"

// CollapseForTest reports how an accessor for outer would be composed: the
// accessor kind, the number of views folded and the boundary reached.
func CollapseForTest[T any](outer access.RandomAccessible[T]) (kind string, depth int, boundary access.RandomAccessible[T]) {
	p := collapse(outer, nil)

	return p.kind(), p.depth, p.boundary
}
