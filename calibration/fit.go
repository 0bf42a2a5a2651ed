// Package calibration - normal-equation assembly and the Fit entry point.

package calibration

import (
	"fmt"

	"github.com/katalvlaran/coordspace/matrix"
)

// fitErrorf tags a fit failure with the model name, preserving the
// sentinel for errors.Is.
func fitErrorf(model Model, err error) error {
	return fmt.Errorf("Fit(%s): %w", model, err)
}

// Fit estimates the correction parameters of model from the given
// correspondence pairs and returns them together with a composable,
// invertible Transformation.
//
// Implementation stages:
//   - Stage 1: reject an empty set (ErrNoPairs) and any pair carrying
//     NaN/Inf (ErrNonFiniteSample, annotated with the pair index).
//   - Stage 2: per axis, assemble the design matrix D and right-hand
//     side r for the model, form the normal equations DᵀD·p = Dᵀr, and
//     delegate to matrix.Solve. The system order equals the model's
//     parameter count (1, 2 or 3), so it always fits the closed-form
//     engine regardless of how many pairs were supplied; surplus pairs
//     are absorbed in the least-squares sense.
//   - Stage 3: lift the per-axis vectors into a full affine parameter
//     set and precompute its inverse (newAffineCorrection).
//
// Behavior highlights:
//   - Too few independent pairs for the chosen model, duplicate points,
//     or collinear points under ModelAffine make DᵀD rank-deficient, so
//     they surface naturally as matrix.ErrSingular — no separate
//     counting heuristic that could disagree with the algebra.
//   - A fit whose correction would collapse the plane (for instance a
//     zero scale recovered from pathological data) is also rejected
//     with matrix.ErrSingular rather than returned uninvertible.
//
// Returns:
//   - Result: model, raw per-axis parameters, and the fitted correction.
//
// Errors:
//   - ErrNoPairs / ErrNonFiniteSample / ErrUnknownModel (input gate).
//   - matrix.ErrSingular (degenerate geometry or uninvertible fit).
//
// Determinism: fixed assembly and solve order; identical input yields
// bit-identical parameters.
// Complexity: Time O(n) over the pairs, Space O(1) beyond the result.
func Fit(model Model, pairs []Pair) (Result, error) {
	if len(pairs) == 0 {
		return Result{}, fitErrorf(model, ErrNoPairs)
	}
	for i, p := range pairs {
		if !p.Measured.IsFinite() || !p.True.IsFinite() {
			return Result{}, fitErrorf(model, fmt.Errorf("pair %d: %w", i, ErrNonFiniteSample))
		}
	}

	var fwd affineParams
	var xp, yp []float64
	var err error
	switch model {
	case ModelOffset:
		xp, yp, err = fitOffset(pairs)
		if err == nil {
			fwd = affineParams{a: 1, tx: xp[0], d: 1, ty: yp[0]}
		}
	case ModelScaleOffset:
		xp, yp, err = fitScaleOffset(pairs)
		if err == nil {
			fwd = affineParams{a: xp[0], tx: xp[1], d: yp[0], ty: yp[1]}
		}
	case ModelAffine:
		xp, yp, err = fitAffine(pairs)
		if err == nil {
			fwd = affineParams{
				a: xp[0], b: xp[1], tx: xp[2],
				c: yp[0], d: yp[1], ty: yp[2],
			}
		}
	default:
		err = ErrUnknownModel
	}
	if err != nil {
		return Result{}, fitErrorf(model, err)
	}

	correction, err := newAffineCorrection(fwd)
	if err != nil {
		return Result{}, fitErrorf(model, err)
	}

	return Result{
		Model:      model,
		XParams:    xp,
		YParams:    yp,
		Correction: correction,
	}, nil
}

// fitOffset solves x' = x + c per axis: the design column is all ones and
// the right-hand side is the residual true−measured, so the 1×1 normal
// system recovers the mean displacement.
func fitOffset(pairs []Pair) (xp, yp []float64, err error) {
	n := len(pairs)
	design := make(matrix.Matrix, n)
	rx := make([]float64, n)
	ry := make([]float64, n)
	for i, p := range pairs {
		design[i] = []float64{1}
		rx[i] = p.True.X - p.Measured.X
		ry[i] = p.True.Y - p.Measured.Y
	}

	return solveBothAxes(design, design, rx, ry)
}

// fitScaleOffset solves x' = a·x + b per axis. The two axes see different
// design matrices: X rows are [measured.X, 1], Y rows are [measured.Y, 1].
func fitScaleOffset(pairs []Pair) (xp, yp []float64, err error) {
	n := len(pairs)
	dx := make(matrix.Matrix, n)
	dy := make(matrix.Matrix, n)
	rx := make([]float64, n)
	ry := make([]float64, n)
	for i, p := range pairs {
		dx[i] = []float64{p.Measured.X, 1}
		dy[i] = []float64{p.Measured.Y, 1}
		rx[i] = p.True.X
		ry[i] = p.True.Y
	}

	return solveBothAxes(dx, dy, rx, ry)
}

// fitAffine solves x' = a·x + b·y + c per axis; both axes share the
// design rows [measured.X, measured.Y, 1].
func fitAffine(pairs []Pair) (xp, yp []float64, err error) {
	n := len(pairs)
	design := make(matrix.Matrix, n)
	rx := make([]float64, n)
	ry := make([]float64, n)
	for i, p := range pairs {
		design[i] = []float64{p.Measured.X, p.Measured.Y, 1}
		rx[i] = p.True.X
		ry[i] = p.True.Y
	}

	return solveBothAxes(design, design, rx, ry)
}

// solveBothAxes runs solveNormal for each axis and fails on the first
// error, keeping every fit path's error handling in one place.
func solveBothAxes(dx, dy matrix.Matrix, rx, ry []float64) (xp, yp []float64, err error) {
	if xp, err = solveNormal(dx, rx); err != nil {
		return nil, nil, err
	}
	if yp, err = solveNormal(dy, ry); err != nil {
		return nil, nil, err
	}

	return xp, yp, nil
}

// solveNormal forms the normal equations for the tall system design·p ≈ rhs
// and solves the resulting k×k system (k = parameter count ≤ 3):
//
//	(Dᵀ·D)·p = Dᵀ·rhs
//
// Rank-deficient correspondence geometry makes DᵀD singular and is
// reported as matrix.ErrSingular by the solve.
func solveNormal(design matrix.Matrix, rhs []float64) ([]float64, error) {
	dt := transpose(design)
	normal, err := matrix.Mul(dt, design)
	if err != nil {
		return nil, err
	}
	moment, err := matrix.MulVec(dt, rhs)
	if err != nil {
		return nil, err
	}

	return matrix.Solve(normal, moment)
}

// transpose returns Dᵀ for a well-formed design matrix.
func transpose(m matrix.Matrix) matrix.Matrix {
	rows, cols := m.Rows(), m.Cols()
	t := make(matrix.Matrix, cols)
	var i, j int
	for j = 0; j < cols; j++ {
		t[j] = make([]float64, rows)
		for i = 0; i < rows; i++ {
			t[j][i] = m[i][j]
		}
	}

	return t
}
