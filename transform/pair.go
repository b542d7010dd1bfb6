// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/lvlimg/space"

// Pair holds a transform together with its inverse. Neither direction
// refers to the other; the pair owns both.
type Pair struct {
	Forward *Mixed
	Inverse *Mixed
}

// NewPair computes the inverse of m once.
//
// Errors: space.ErrNilSource.
func NewPair(m *Mixed) (Pair, error) {
	if m == nil {
		return Pair{}, transformErrorf("NewPair", space.ErrNilSource)
	}

	return Pair{Forward: m, Inverse: m.Inverse()}, nil
}

// Swap returns the pair with directions exchanged.
func (p Pair) Swap() Pair { return Pair{Forward: p.Inverse, Inverse: p.Forward} }

// Concatenate composes both directions: forward becomes p.Forward ∘
// first.Forward and inverse first.Inverse ∘ p.Inverse.
//
// Errors: as Mixed.Concatenate.
func (p Pair) Concatenate(first Pair) (Pair, error) {
	fwd, err := p.Forward.Concatenate(first.Forward)
	if err != nil {
		return Pair{}, err
	}
	inv, err := first.Inverse.Concatenate(p.Inverse)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Forward: fwd, Inverse: inv}, nil
}
