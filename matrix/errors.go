// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag via fmt.Errorf("Op: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty input -> ragged/shape -> non-square -> unsupported size
// -> dimension mismatch -> singularity.

var (
	// ErrEmptyInput is returned when an operand has zero rows or zero
	// columns. Kernels must detect this before any arithmetic.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Mul where a.Cols != b.Rows, MulVec where a.Cols != len(v),
	// Solve where len(b) != rows(a), or a ragged row set.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Det, Inverse,
	// Solve) but the input wasn't. This is an explicit check — the engine
	// never reports a wrong numeric answer for non-square input.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupportedSize is returned by the closed-form kernels (Det,
	// Inverse, Solve) for any order above 3. The engine's contract covers
	// orders 1–3 only; larger systems are a usage error, never a silently
	// wrong result.
	ErrUnsupportedSize = errors.New("matrix: order above 3 is not supported")

	// ErrSingular is returned when |det| falls below SingularEps during
	// inversion or system solving — the matrix is not invertible within
	// the engine's numeric policy.
	ErrSingular = errors.New("matrix: singular matrix")
)
