// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the structural checks
//    shared by every kernel.
//  - Keep kernels minimal by delegating shape/order validation here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Rectangularity runs O(r) over row lengths only.

package matrix

// validateWellFormed ensures m has at least one row, at least one column,
// and rectangular rows.
//
// Errors: ErrEmptyInput (no rows / no columns), ErrDimensionMismatch
// (ragged rows). Complexity: O(r).
func validateWellFormed(m Matrix) error {
	if len(m) == 0 {
		return ErrEmptyInput
	}
	cols := len(m[0])
	if cols == 0 {
		return ErrEmptyInput
	}
	for i := 1; i < len(m); i++ {
		if len(m[i]) != cols {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// validateSquare checks Rows == Cols. Assumes m is well-formed (caller must
// run validateWellFormed first).
//
// Errors: ErrNonSquare. Complexity: O(1).
func validateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// validateOrder rejects square orders above MaxOrder. Assumes square input.
//
// Errors: ErrUnsupportedSize. Complexity: O(1).
func validateOrder(m Matrix) error {
	if m.Rows() > MaxOrder {
		return ErrUnsupportedSize
	}

	return nil
}

// validateClosedForm is the composite gate for Det/Inverse/Solve:
// well-formed → square → order ≤ MaxOrder, in that fixed sequence.
func validateClosedForm(m Matrix) error {
	if err := validateWellFormed(m); err != nil {
		return err
	}
	if err := validateSquare(m); err != nil {
		return err
	}
	if err := validateOrder(m); err != nil {
		return err
	}

	return nil
}
