// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep engines and kernels minimal by delegating nil/type/shape checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Type → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil || isNilDense(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameType ensures matrices a and b share an element type.
// Assumes a and b are not nil.
func ValidateSameType(a, b Matrix) error {
	if a.ElementType() != b.ElementType() {
		return validatorErrorf("ValidateSameType", ErrTypeMismatch)
	}

	return nil
}

// ValidateCompatible runs NotNil → SameType → SameShape on a and b.
// This is the precondition for every copy or src→dst filter pass.
func ValidateCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateSameType(a, b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// isNilDense detects typed-nil Dense pointers hidden in the interface.
func isNilDense(m Matrix) bool {
	switch d := m.(type) {
	case *Dense[Bit]:
		return d == nil
	case *Dense[uint8]:
		return d == nil
	case *Dense[uint16]:
		return d == nil
	case *Dense[int16]:
		return d == nil
	case *Dense[int32]:
		return d == nil
	case *Dense[float32]:
		return d == nil
	case *Dense[float64]:
		return d == nil
	}

	return false
}
