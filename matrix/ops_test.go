// Package matrix_test contains unit tests for the product kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coordspace/matrix"
)

// assertMatrixInDelta compares two matrices element-wise within tol.
func assertMatrixInDelta(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), len(got), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), len(got[i]), "column count in row %d", i)
		for j := range want[i] {
			assert.InDelta(t, want[i][j], got[i][j], tol, "element [%d,%d]", i, j)
		}
	}
}

func TestMul_Basic(t *testing.T) {
	a := matrix.Matrix{{1, 2}, {3, 4}}
	b := matrix.Matrix{{5, 6}, {7, 8}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assertMatrixInDelta(t, matrix.Matrix{{19, 22}, {43, 50}}, got, 1e-12)
}

func TestMul_Rectangular(t *testing.T) {
	// (2×3) × (3×1) → (2×1); products of tall design matrices are in scope.
	a := matrix.Matrix{{1, 0, 2}, {0, 3, -1}}
	b := matrix.Matrix{{4}, {5}, {6}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assertMatrixInDelta(t, matrix.Matrix{{16}, {9}}, got, 1e-12)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	a := matrix.Matrix{{2, -1, 0}, {1, 3, 4}, {0, 0, 1}}

	got, err := matrix.Mul(a, matrix.Identity(3))
	require.NoError(t, err)
	assertMatrixInDelta(t, a, got, 1e-12)
}

func TestMul_Errors(t *testing.T) {
	ok := matrix.Matrix{{1, 2}, {3, 4}}

	t.Run("inner mismatch", func(t *testing.T) {
		_, err := matrix.Mul(ok, matrix.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})
	t.Run("empty left", func(t *testing.T) {
		_, err := matrix.Mul(matrix.Matrix{}, ok)
		assert.ErrorIs(t, err, matrix.ErrEmptyInput)
	})
	t.Run("empty right", func(t *testing.T) {
		_, err := matrix.Mul(ok, nil)
		assert.ErrorIs(t, err, matrix.ErrEmptyInput)
	})
	t.Run("empty rows", func(t *testing.T) {
		_, err := matrix.Mul(matrix.Matrix{{}, {}}, ok)
		assert.ErrorIs(t, err, matrix.ErrEmptyInput)
	})
	t.Run("ragged rows", func(t *testing.T) {
		_, err := matrix.Mul(matrix.Matrix{{1, 2}, {3}}, ok)
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})
}

func TestMulVec_Basic(t *testing.T) {
	a := matrix.Matrix{{2, 0}, {0, 3}}

	got, err := matrix.MulVec(a, []float64{4, 5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{8, 15}, got, 1e-12)
}

func TestMulVec_Errors(t *testing.T) {
	a := matrix.Matrix{{1, 2}, {3, 4}}

	t.Run("length mismatch", func(t *testing.T) {
		_, err := matrix.MulVec(a, []float64{1, 2, 3})
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})
	t.Run("empty vector", func(t *testing.T) {
		_, err := matrix.MulVec(a, nil)
		assert.ErrorIs(t, err, matrix.ErrEmptyInput)
	})
	t.Run("empty matrix", func(t *testing.T) {
		_, err := matrix.MulVec(matrix.Matrix{}, []float64{1})
		assert.ErrorIs(t, err, matrix.ErrEmptyInput)
	})
}

func TestClone_IsIndependent(t *testing.T) {
	a := matrix.Matrix{{1, 2}, {3, 4}}
	c := a.Clone()
	c[0][0] = 99

	assert.Equal(t, 1.0, a[0][0], "mutating the clone must not touch the original")
}
