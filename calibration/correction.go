// Package calibration - the fitted affine correction as a Transformation.
// Both directions are precomputed at construction, so Apply and Inverse
// are plain O(1) value operations with no error paths.

package calibration

import (
	"github.com/katalvlaran/coordspace/coord"
	"github.com/katalvlaran/coordspace/matrix"
	"github.com/katalvlaran/coordspace/transform"
)

// affineParams holds one direction of a planar affine map:
//
//	x' = a·x + b·y + tx
//	y' = c·x + d·y + ty
//
// Every correction model is stored in this form; the simpler models just
// leave b, c at zero (and a, d at one for pure offsets).
type affineParams struct {
	a, b, tx float64
	c, d, ty float64
}

func (p affineParams) apply(q coord.Point) coord.Point {
	return coord.Point{
		X: p.a*q.X + p.b*q.Y + p.tx,
		Y: p.c*q.X + p.d*q.Y + p.ty,
	}
}

// affineCorrection pairs a forward map with its precomputed inverse.
// Inverse() swaps the two, so double inversion restores the original
// parameters exactly.
type affineCorrection struct {
	fwd, inv affineParams
}

func (t affineCorrection) Apply(p coord.Point) coord.Point { return t.fwd.apply(p) }

func (t affineCorrection) Inverse() transform.Transformation {
	return affineCorrection{fwd: t.inv, inv: t.fwd}
}

// newAffineCorrection validates that fwd is invertible and derives the
// inverse direction: the linear part through matrix.Inverse, then the
// translation as -L⁻¹·t.
//
// Errors:
//   - matrix.ErrSingular when the fitted linear part collapses the plane
//     (|det| < matrix.SingularEps).
func newAffineCorrection(fwd affineParams) (affineCorrection, error) {
	linear := matrix.Matrix{
		{fwd.a, fwd.b},
		{fwd.c, fwd.d},
	}
	li, err := matrix.Inverse(linear)
	if err != nil {
		return affineCorrection{}, err
	}

	inv := affineParams{
		a: li[0][0], b: li[0][1],
		c: li[1][0], d: li[1][1],
	}
	inv.tx = -(inv.a*fwd.tx + inv.b*fwd.ty)
	inv.ty = -(inv.c*fwd.tx + inv.d*fwd.ty)

	return affineCorrection{fwd: fwd, inv: inv}, nil
}
