// Package transform - iframe-relative mappings.
package transform

import (
	"fmt"

	"github.com/katalvlaran/coordspace/coord"
)

// NewIFrame returns the logical→frame mapping (x, y) → (x − o_x, y − o_y)
// for a frame whose origin sits at offset inside its parent space.
// The inverse adds the offset back (frame→logical).
//
// Errors: coord.ErrInvalidConfiguration when offset is not finite.
func NewIFrame(offset coord.Point) (Transformation, error) {
	if !offset.IsFinite() {
		return nil, constructorErrorf("IFrame",
			fmt.Errorf("offset %v: %w", offset, coord.ErrInvalidConfiguration))
	}

	return shift{dx: offset.X, dy: offset.Y}, nil
}

// NewNestedIFrame folds a chain of frame offsets, ordered outermost to
// innermost, into one logical→innermost-frame transformation.
//
// Implementation:
//   - Stage 1: validate every offset (finite), fail on the first bad one.
//   - Stage 2: left-fold NewIFrame compositions in chain order.
//
// Edge case: an empty (or nil) chain yields the identity — both forward
// and inverse are no-ops.
//
// Errors: coord.ErrInvalidConfiguration (with the offending level index)
// when any offset is non-finite.
//
// Complexity: O(len(offsets)) to build; Apply is O(depth).
func NewNestedIFrame(offsets []coord.Point) (Transformation, error) {
	chain := Identity()
	for i, off := range offsets {
		level, err := NewIFrame(off)
		if err != nil {
			return nil, constructorErrorf(fmt.Sprintf("NestedIFrame[%d]", i), err)
		}
		chain = Compose(chain, level)
	}

	return chain, nil
}
