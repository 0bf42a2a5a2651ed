// SPDX-License-Identifier: MIT
// Package matrix - general product kernels (Mul, MulVec).
// Unlike the closed-form kernels these are not order-capped: any
// rectangular conformable operands multiply, since products appear when
// assembling normal equations from tall design matrices.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul     = "Mul"
	opMulVec  = "MulVec"
	opDet     = "Det"
	opInverse = "Inverse"
	opSolve   = "Solve"
)

// kernelErrorf wraps err with an operation tag, preserving the sentinel via
// %w so callers keep matching with errors.Is. Call only with err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the standard matrix product C = A × B.
//
// Implementation:
//   - Stage 1: validate both operands well-formed; check inner dimensions
//     (a.Cols == b.Rows).
//   - Stage 2: fixed i→k→j triple loop into a fresh result.
//
// Inputs:
//   - a: left operand, r×n.
//   - b: right operand, n×c.
//
// Returns:
//   - Matrix: freshly allocated r×c product; operands are not mutated.
//
// Errors:
//   - ErrEmptyInput          (either operand has no rows/columns).
//   - ErrDimensionMismatch   (ragged rows, or a.Cols != b.Rows).
//
// Determinism: fixed loop order, stable accumulation.
// Complexity: Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := validateWellFormed(a); err != nil {
		return nil, kernelErrorf(opMul, err)
	}
	if err := validateWellFormed(b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, kernelErrorf(opMul, ErrDimensionMismatch)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res := make(Matrix, rows)
	var i, j, k int // loop iterators (deterministic order)
	var acc float64
	for i = 0; i < rows; i++ {
		res[i] = make([]float64, cols)
		for k = 0; k < inner; k++ {
			acc = a[i][k]
			if acc == 0 {
				continue // skip zero for performance
			}
			for j = 0; j < cols; j++ {
				res[i][j] += acc * b[k][j]
			}
		}
	}

	return res, nil
}

// MulVec computes y = A × v for a column vector v.
//
// Implementation:
//   - Stage 1: validate A well-formed; check len(v) == a.Cols.
//   - Stage 2: one dot-product pass per row, fixed i→j order.
//
// Inputs:
//   - a: matrix, r×c.
//   - v: vector of length c.
//
// Returns:
//   - []float64: freshly allocated vector of length r.
//
// Errors:
//   - ErrEmptyInput          (a has no rows/columns, or v is empty).
//   - ErrDimensionMismatch   (ragged rows, or a.Cols != len(v)).
//
// Determinism: fixed loop order. Complexity: Time O(r·c), Space O(r).
func MulVec(a Matrix, v []float64) ([]float64, error) {
	if err := validateWellFormed(a); err != nil {
		return nil, kernelErrorf(opMulVec, err)
	}
	if len(v) == 0 {
		return nil, kernelErrorf(opMulVec, ErrEmptyInput)
	}
	if a.Cols() != len(v) {
		return nil, kernelErrorf(opMulVec, ErrDimensionMismatch)
	}

	rows, cols := a.Rows(), a.Cols()
	y := make([]float64, rows)
	var i, j int
	var acc float64
	for i = 0; i < rows; i++ {
		acc = 0
		for j = 0; j < cols; j++ {
			acc += a[i][j] * v[j]
		}
		y[i] = acc
	}

	return y, nil
}
