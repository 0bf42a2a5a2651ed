// SPDX-License-Identifier: MIT

// Package matrix implements the small dense linear-algebra kernels behind
// coordinate calibration: multiplication, determinant, inversion and
// linear-system solving, deliberately restricted to orders 1–3.
//
// 🚀 Why a capped engine?
//
//	Calibration fits affine correction parameters per axis, which never
//	produces a system larger than 3×3. Capping the order lets every kernel
//	use an exact closed-form expansion (direct cofactor / adjugate /
//	Cramer) instead of iterative or pivoting schemes — fully
//	deterministic, allocation-light, and trivially auditable.
//
// ✨ Contract highlights:
//   - Matrix is a plain row-major [][]float64 — construct it literally.
//   - Every kernel is total over well-formed inputs and fails fast with a
//     typed sentinel otherwise: ErrEmptyInput, ErrDimensionMismatch,
//     ErrNonSquare, ErrUnsupportedSize, ErrSingular.
//   - Order above 3 NEVER returns a numeric result — always
//     ErrUnsupportedSize.
//   - Non-square input to Det/Inverse/Solve is an explicit ErrNonSquare,
//     never an out-of-range crash or a wrong answer.
//   - Singularity is |det| < SingularEps; no regularization is attempted.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/coordspace/matrix"
//
//	a := matrix.Matrix{{2, 1}, {1, 2}}
//	x, err := matrix.Solve(a, []float64{5, 4}) // → [2, 1]
//
// All kernels are pure: operands are never mutated, results are freshly
// allocated, and concurrent calls need no locking.
package matrix
