// SPDX-License-Identifier: MIT
// Package matrix - closed-form kernels: Det, Inverse, Solve.
// Each expands the order-1/2/3 formula directly (cofactor, adjugate,
// Cramer). No pivoting, no iteration: for the covered orders the exact
// algebraic expansion is both faster and bit-for-bit reproducible.

package matrix

import "math"

// Det computes the determinant of a square matrix of order 1–3 by direct
// cofactor expansion.
//
// Implementation:
//   - Stage 1: validateClosedForm (well-formed → square → order ≤ 3).
//   - Stage 2: switch on the order and expand the textbook formula.
//
// Returns:
//   - float64: the determinant.
//
// Errors:
//   - ErrEmptyInput       (zero rows/columns).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNonSquare        (rows != cols — explicit, never a crash).
//   - ErrUnsupportedSize  (order > 3 — never a numeric result).
//
// Determinism: pure expansion, no branching on values.
// Complexity: O(1) for the covered orders.
func Det(m Matrix) (float64, error) {
	if err := validateClosedForm(m); err != nil {
		return 0, kernelErrorf(opDet, err)
	}

	switch m.Rows() {
	case 1:
		return m[0][0], nil
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0], nil
	default: // order 3, guaranteed by validateClosedForm
		return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0]), nil
	}
}

// Inverse computes A⁻¹ for a square matrix of order 1–3 via the adjugate:
// A⁻¹ = adj(A)ᵀ-cofactors / det(A).
//
// Implementation:
//   - Stage 1: validateClosedForm, then Det; |det| < SingularEps fails.
//   - Stage 2: switch on the order and emit the adjugate divided by det.
//
// Returns:
//   - Matrix: freshly allocated inverse; the input is not mutated.
//
// Errors:
//   - ErrEmptyInput / ErrDimensionMismatch / ErrNonSquare /
//     ErrUnsupportedSize (structural, as Det).
//   - ErrSingular         (|det| < SingularEps).
//
// Determinism: closed-form, value-independent control flow after the
// singularity gate. Complexity: O(1) for the covered orders.
func Inverse(m Matrix) (Matrix, error) {
	if err := validateClosedForm(m); err != nil {
		return nil, kernelErrorf(opInverse, err)
	}
	det, _ := Det(m) // structural errors ruled out above
	if math.Abs(det) < SingularEps {
		return nil, kernelErrorf(opInverse, ErrSingular)
	}

	inv := 1.0 / det
	switch m.Rows() {
	case 1:
		return Matrix{{inv}}, nil
	case 2:
		return Matrix{
			{m[1][1] * inv, -m[0][1] * inv},
			{-m[1][0] * inv, m[0][0] * inv},
		}, nil
	default: // order 3
		return Matrix{
			{
				(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
				(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
				(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
			},
			{
				(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
				(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
				(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
			},
			{
				(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
				(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
				(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
			},
		}, nil
	}
}

// Solve returns x with A·x = b for a square system of order 1–3, using
// Cramer's rule: x_i = det(A with column i replaced by b) / det(A).
//
// Implementation:
//   - Stage 1: reject zero-size input (ErrEmptyInput), ragged rows,
//     non-square A, order > 3, then len(b) != rows (ErrDimensionMismatch).
//   - Stage 2: det(A); |det| < SingularEps fails with ErrSingular.
//   - Stage 3: per unknown, swap in b as a column of a scratch copy and
//     take the determinant ratio.
//
// Inputs:
//   - a: coefficient matrix, n×n with 1 ≤ n ≤ 3.
//   - b: right-hand side, length n.
//
// Returns:
//   - []float64: solution vector x of length n (A·x = b within floating
//     tolerance).
//
// Errors:
//   - ErrEmptyInput / ErrDimensionMismatch / ErrNonSquare /
//     ErrUnsupportedSize / ErrSingular, as documented above.
//
// Determinism: fixed column order; no pivoting.
// Complexity: O(1) for the covered orders (≤ 4 determinant expansions).
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := validateClosedForm(a); err != nil {
		return nil, kernelErrorf(opSolve, err)
	}
	if len(b) == 0 {
		return nil, kernelErrorf(opSolve, ErrEmptyInput)
	}
	if len(b) != a.Rows() {
		return nil, kernelErrorf(opSolve, ErrDimensionMismatch)
	}

	det, _ := Det(a) // structural errors ruled out above
	if math.Abs(det) < SingularEps {
		return nil, kernelErrorf(opSolve, ErrSingular)
	}

	n := a.Rows()
	x := make([]float64, n)
	scratch := a.Clone()
	var col, row int
	var dcol float64
	for col = 0; col < n; col++ {
		// Swap column col for b, take the ratio, restore the column.
		for row = 0; row < n; row++ {
			scratch[row][col] = b[row]
		}
		dcol, _ = Det(scratch) // scratch shares a's validated shape
		x[col] = dcol / det
		for row = 0; row < n; row++ {
			scratch[row][col] = a[row][col]
		}
	}

	return x, nil
}
