// Package lvlimg is an n-dimensional image access library: containers,
// cursors, random accesses and lazy views that compose without a per-step
// cost.
//
// What is lvlimg?
//
//	A small generic toolkit that brings together:
//		• Discrete space: points, boxes and interval utilities
//		• Access contracts: cursors, random accesses, iteration orders
//		• Storage: flat array, chunked cell and per-plane images
//		• Out-of-bounds extension: constant, mirror, periodic, border
//		• Transforms: translations, permutations, inversions, rotations
//		• Views: interval, transform and extension chains of any depth
//		• Declarative view chains loaded from YAML
//		• Whole-image operations written once for every backing
//
// Under the hood, everything is organized in subpackages:
//
//	space/      Point, RealPoint, Box, Interval traits, sentinel errors
//	access/     Cursor, RandomAccess, IterableInterval, FlatCursor
//	pixel/      element kinds and the Number constraint
//	storage/    ArrayImg, CellImg, PlanarImg, Factory and options
//	oob/        out-of-bounds policies and their accessor
//	transform/  Mixed (signed axis permutation + translation), Pair
//	view/       view types, the composition engine and the Views API
//	viewspec/   YAML view chains
//	ops/        Fill, Copy, MinMax, Histogram, ConnectedComponents
//
// Quick example:
//
//	img, _ := storage.ArrayImgFrom([]int{10, 20, 30}, 3)
//	ext, _ := view.ExtendMirrorSingle[int](img)
//	pad, _ := view.IntervalMinMax[int](ext, []int64{-2}, []int64{4})
//	// pad reads 20 10 10 20 30 30 20
//
// Views are descriptions, not copies: a 50-deep chain of translations costs
// the same per access as a single one. See examples/ for runnable programs.
//
//	go get github.com/katalvlaran/lvlimg
package lvlimg
