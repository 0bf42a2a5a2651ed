// SPDX-License-Identifier: MIT
// Package matrix - core type and small structural helpers.

package matrix

// MaxOrder is the largest square order the closed-form kernels accept.
// Calibration never assembles anything larger; see package documentation.
const MaxOrder = 3

// SingularEps is the absolute determinant threshold below which a matrix is
// treated as singular by Inverse and Solve. Exact rank-deficient systems
// built from float sums land comfortably below it; well-conditioned 1–3
// order systems stay far above.
const SingularEps = 1e-12

// Matrix is a dense row-major matrix: Matrix{{a, b}, {c, d}}.
// The zero value (nil) has zero rows and is rejected by every kernel.
type Matrix [][]float64

// Rows returns the number of rows. O(1).
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns of the first row, or 0 when there are
// no rows. Rectangularity is enforced by the kernels, not here. O(1).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Clone returns a deep copy; mutating the copy never affects the original.
// Time O(r·c), Space O(r·c).
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// Identity returns the n×n identity matrix. n must be positive; a
// non-positive n yields an empty Matrix, which every kernel rejects with
// ErrEmptyInput.
func Identity(n int) Matrix {
	if n <= 0 {
		return Matrix{}
	}
	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1.0
	}

	return out
}
