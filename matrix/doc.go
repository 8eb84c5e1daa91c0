// Package matrix offers the fixed-shape 2D arrays consumed by the
// morphology packages of lvmorph.
//
// The matrix package provides:
//
//   - Matrix, the shape/type/bulk-copy contract every filter relies on.
//   - Dense[T], a generic row-major implementation over Bit (binary) and
//     the numeric grayscale types.
//   - Continuation, the boundary-extension policy (cyclic, pseudo-cyclic,
//     mirror, zero) with O(1) coordinate resolution.
//   - Validators that fail fast with sentinel errors (ErrNilMatrix,
//     ErrTypeMismatch, ErrDimensionMismatch).
//
// Shapes are immutable once created. X addresses columns, Y addresses rows.
package matrix
