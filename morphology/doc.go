// Package morphology implements pattern-based grayscale and binary
// dilation and erosion over matrix.Matrix values.
//
// What:
//
//   - Service: the elementary operation contract, Dilate and Erode of a
//     source into a destination by an arbitrary pattern.
//   - Basic: the generic implementation, single- or multi-threaded. Two
//     immutable process-wide instances are shared through Default.
//   - Kernel3x3: fused single-pass kernels for the centered 3×3 square
//     and the 5-point cross under cyclic continuation.
//   - Filter / PatternFilter: the src→dst capability both strategies share,
//     so a caller can swap one for the other.
//
// Conventions:
//
//   - Dilation:  dst(x) = max over p ∈ P of src(x − p)   (OR for Bit).
//   - Erosion:   dst(x) = min over p ∈ P of src(x − p)   (AND for Bit),
//     i.e. erosion by the point reflection of P. Passing P.Symmetric()
//     gives the textbook Minkowski subtraction by P.
//
// Complexity:
//
//   - Basic:     O(rows × cols × |P|).
//   - Kernel3x3: O(rows × cols), one read sweep.
//
// Errors:
//
//   - matrix.ErrNilMatrix, matrix.ErrTypeMismatch, matrix.ErrDimensionMismatch
//   - ErrAliased: dst and src are the same matrix.
//   - pattern.ErrEmpty: zero-value pattern.
package morphology
