// Package transform - the Transformation capability and the identity.
package transform

import (
	"fmt"

	"github.com/katalvlaran/coordspace/coord"
)

// Transformation maps points from one coordinate space into another and
// knows its own exact inverse.
//
// Contract:
//   - Apply is a pure function of the input point and the parameters the
//     transformation captured at construction; no hidden state.
//   - Inverse returns a Transformation undoing Apply within floating
//     tolerance, in O(1) — every concrete kind inverts structurally
//     (flip a direction flag or swap composition order), never by
//     re-deriving formulas.
type Transformation interface {
	// Apply maps p from the input space to the output space.
	Apply(p coord.Point) coord.Point

	// Inverse returns the exact inverse mapping.
	Inverse() Transformation
}

// identity is the no-op transformation; it is its own inverse.
type identity struct{}

// Identity returns the transformation that maps every point to itself.
// It is the neutral element of Compose and the result of folding an empty
// iframe-offset chain.
func Identity() Transformation { return identity{} }

func (identity) Apply(p coord.Point) coord.Point { return p }

func (identity) Inverse() Transformation { return identity{} }

// constructorErrorf tags a validation failure with the constructor name,
// preserving the sentinel for errors.Is.
func constructorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
