// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
// Every error returned by this package wraps exactly one of these values;
// match them with errors.Is. Call sites add context with
// fmt.Errorf("Op: %w", ErrX).

package matrix

import "errors"

// Check order, shared by every validator and filter pass:
// nil -> element type -> shape -> index.

var (
	// ErrInvalidDimensions is returned for a rows or cols value below 1.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange is returned by At/Set for coordinates outside the matrix.
	// Indexers never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned when two matrices must share a shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrTypeMismatch is returned when two matrices must share an element type.
	ErrTypeMismatch = errors.New("matrix: element type mismatch")

	// ErrNilMatrix is returned for a nil Matrix, typed-nil *Dense included.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnsupportedType is returned when a Matrix implementation is not one
	// of the Dense instantiations known to this package.
	ErrUnsupportedType = errors.New("matrix: unsupported matrix implementation")

	// ErrUnknownContinuation is returned by ParseContinuation for unknown names.
	ErrUnknownContinuation = errors.New("matrix: unknown continuation mode")
)
