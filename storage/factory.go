// SPDX-License-Identifier: MIT

package storage

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/pixel"
	"github.com/katalvlaran/lvlimg/space"
)

// Layout tags a container implementation.
type Layout int

const (
	// LayoutArray is one flat slice, axis 0 fastest (ArrayImg).
	LayoutArray Layout = iota
	// LayoutCell is a grid of equally shaped chunks (CellImg).
	LayoutCell
	// LayoutPlanar is one slice per XY plane (PlanarImg).
	LayoutPlanar
)

// String returns the lower-case layout name.
func (l Layout) String() string {
	switch l {
	case LayoutArray:
		return "array"
	case LayoutCell:
		return "cell"
	case LayoutPlanar:
		return "planar"
	}

	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout maps a layout name to a Layout.
//
// Errors: space.ErrUnsupportedBacking.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "array":
		return LayoutArray, nil
	case "cell", "cells":
		return LayoutCell, nil
	case "planar":
		return LayoutPlanar, nil
	}

	return 0, storageErrorf(fmt.Sprintf("ParseLayout(%q)", name), space.ErrUnsupportedBacking)
}

// Img is a container: random-accessible and iterable over the interval
// [0, dims-1], able to copy itself and to hand out a Factory producing
// containers of the same layout.
type Img[T any] interface {
	access.RandomAccessibleInterval[T]
	access.IterableInterval[T]

	// Factory returns the factory this container was (or could have been)
	// created with.
	Factory() Factory

	// Copy returns a deep copy with the same layout.
	Copy() Img[T]
}

// Factory allocates containers of one layout. The zero Factory produces
// ArrayImg.
type Factory struct {
	layout Layout
	opts   Options
}

// NewFactory validates layout and resolves options.
//
// Errors: space.ErrUnsupportedBacking for an unknown layout.
func NewFactory(layout Layout, opts ...Option) (Factory, error) {
	switch layout {
	case LayoutArray, LayoutCell, LayoutPlanar:
	default:
		return Factory{}, storageErrorf(fmt.Sprintf("NewFactory(%s)", layout), space.ErrUnsupportedBacking)
	}

	return Factory{layout: layout, opts: gatherOptions(opts...)}, nil
}

// Layout returns the layout this factory produces.
func (f Factory) Layout() Layout { return f.layout }

// Create allocates a zero-filled container of shape dims using f.
//
// Errors: space.ErrInvalidDimensions, space.ErrDimensionMismatch (cell
// shape vs. dims), space.ErrUnsupportedBacking.
func Create[T any](f Factory, dims ...int64) (Img[T], error) {
	var (
		img Img[T]
		err error
	)
	switch f.layout {
	case LayoutArray:
		img, err = NewArrayImg[T](dims...)
	case LayoutCell:
		opts := f.opts
		if opts.cellSize == 0 {
			opts = defaultOptions()
		}
		var cellDims []int64
		if cellDims, err = opts.cellShape(len(dims)); err == nil {
			img, err = newCellImg[T](dims, cellDims)
		}
	case LayoutPlanar:
		img, err = NewPlanarImg[T](dims...)
	default:
		err = storageErrorf(fmt.Sprintf("Create(%s)", f.layout), space.ErrUnsupportedBacking)
	}
	if err != nil {
		tracer().Errorf("storage: create %s %v: %v", f.layout, dims, err)

		return nil, err
	}
	tracer().Debugf("storage: created %s image %v of %s", f.layout, dims, pixel.KindOf[T]())

	return img, nil
}

// CreateLike allocates a container with the shape and layout of src and
// element type U.
func CreateLike[U, T any](src Img[T]) (Img[U], error) {
	if src == nil {
		return nil, storageErrorf("CreateLike", space.ErrNilSource)
	}

	return Create[U](src.Factory(), space.DimensionsOf(src)...)
}

// CreateByKind allocates a container for a runtime element kind. The result
// is an Img[X] for the Go type X that kind denotes (bool for KindBit).
//
// Errors: space.ErrUnsupportedBacking for an invalid kind, plus Create's.
func CreateByKind(kind pixel.Kind, f Factory, dims ...int64) (any, error) {
	switch kind {
	case pixel.KindBit:
		return Create[bool](f, dims...)
	case pixel.KindInt8:
		return Create[int8](f, dims...)
	case pixel.KindUint8:
		return Create[uint8](f, dims...)
	case pixel.KindInt16:
		return Create[int16](f, dims...)
	case pixel.KindUint16:
		return Create[uint16](f, dims...)
	case pixel.KindInt32:
		return Create[int32](f, dims...)
	case pixel.KindUint32:
		return Create[uint32](f, dims...)
	case pixel.KindInt64:
		return Create[int64](f, dims...)
	case pixel.KindFloat32:
		return Create[float32](f, dims...)
	case pixel.KindFloat64:
		return Create[float64](f, dims...)
	}

	return nil, storageErrorf(fmt.Sprintf("CreateByKind(%s)", kind), space.ErrUnsupportedBacking)
}

// storageErrorf wraps an underlying error with a storage context tag.
func storageErrorf(tag string, err error) error {
	return fmt.Errorf("storage: %s: %w", tag, err)
}
