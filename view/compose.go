// SPDX-License-Identifier: MIT

package view

import (
	"github.com/katalvlaran/lvlimg/access"
	"github.com/katalvlaran/lvlimg/space"
	"github.com/katalvlaran/lvlimg/transform"
)

// plan is a collapsed view chain: where to get the accessor from, which
// interval of the boundary it will be used in, and the single transform
// from outer view coordinates to boundary coordinates.
type plan[T any] struct {
	boundary access.RandomAccessible[T]
	box      *space.Box       // boundary coordinates; nil when unknown
	total    *transform.Mixed // nil for identity
	depth    int              // views folded
}

// collapse walks from outer towards the storage, folding restrictions and
// mixed transforms. iv, if not nil, is the interval the accessor will be
// used in, in outer coordinates.
func collapse[T any](outer access.RandomAccessible[T], iv space.Interval) plan[T] {
	p := plan[T]{boundary: outer}
	if iv != nil {
		p.box = space.BoxOf(iv)
	}
	for {
		switch v := p.boundary.(type) {
		case *IntervalView[T]:
			if p.box == nil {
				p.box = v.box
			}
			p.boundary = v.source
		case *MixedTransformView[T]:
			var err error
			if p.box != nil {
				// hints are checked by RandomAccessIn, views by their constructors
				if p.box, err = v.transform.ApplyBox(p.box); err != nil {
					panic(viewErrorf("compose", err))
				}
			}
			if p.total == nil {
				p.total = v.transform
			} else if p.total, err = v.transform.Concatenate(p.total); err != nil {
				panic(viewErrorf("compose", err))
			}
			p.boundary = v.source
		case *IterableView[T]:
			p.boundary = v.source
		default:
			return p
		}
		p.depth++
	}
}

// kind names the accessor build will produce.
func (p plan[T]) kind() string {
	switch {
	case p.total == nil || p.total.IsIdentity():
		return "native"
	case p.total.IsTranslation():
		return "translation"
	}

	return "mixed"
}

// build creates one accessor for the plan.
func (p plan[T]) build() access.RandomAccess[T] {
	var src access.RandomAccess[T]
	if p.box != nil {
		src = p.boundary.RandomAccessIn(p.box)
	} else {
		src = p.boundary.RandomAccess()
	}
	switch p.kind() {
	case "native":
		return src
	case "translation":
		return newTranslationAccess(src, p.total)
	}

	return newMixedAccess(src, p.total)
}

// compose collapses and builds in one go.
func compose[T any](outer access.RandomAccessible[T], iv space.Interval) access.RandomAccess[T] {
	p := collapse(outer, iv)
	tracer().Debugf("view: collapsed %d views onto %T, %s accessor", p.depth, p.boundary, p.kind())

	return p.build()
}
