// Package rectmorph performs fast dilation, erosion, opening and closing by
// rectangles and disk-like octagons over matrix.Matrix values.
//
// What:
//
//   - Rectangles of any size are decomposed into O(log side) elementary
//     passes: an origin shift, then two-point segments {0, i} with i
//     doubling along each axis, then one closing segment for the remainder.
//   - Octagons approximate disks as ceil(r/2) crosses plus one square of
//     side 2·floor(r/2)+1 (one wider with addHalf).
//   - Passes ping-pong between two scratch matrices owned by the Engine;
//     the bound target is written only by ProvideResult, at most once per
//     public call. Open/Close write it once for both of their passes.
//   - Passes by the centered 3×3 square or the cross go through fused
//     morphology.Kernel3x3 kernels when the matrix is not binary and the
//     continuation is unset or cyclic. The output is identical either way.
//
// Usage:
//
//	scratch, _ := matrix.NewDense[uint8](rows, cols)
//	e, _ := rectmorph.New(scratch, rectmorph.WithContinuation(matrix.Mirror))
//	_ = e.BindTarget(img)
//	_ = e.DilateOctagon(4, false)
//	_ = e.Open(5)
//
// Errors:
//
//   - ErrNegativeSize, ErrNegativeRadius: rejected before any pass runs.
//   - ErrNoTarget: processing before BindTarget.
//   - matrix.ErrTypeMismatch, matrix.ErrDimensionMismatch from BindTarget.
//
// An Engine is single-goroutine; create one per goroutine. The shared
// morphology services it uses are immutable and safe to share.
package rectmorph
