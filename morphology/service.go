// SPDX-License-Identifier: MIT
// Package: morphology
//
// Purpose:
//  - Service: dilation/erosion by an arbitrary pattern under any continuation.
//  - Basic: the shift-and-combine implementation, parallel by row bands.
//
// Complexity:
//  - O(W·H·|P|) time per pass, O(|P|·W) for the column lookup tables.
//
// Note:
//  - Check order per pass: nil, element type, shape, aliasing.

package morphology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmorph/internal/parallel"
	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/katalvlaran/lvmorph/pattern"
)

// ErrAliased indicates a filter pass whose destination is its own source.
var ErrAliased = errors.New("morphology: destination must differ from source")

// Operation selects dilation or erosion.
type Operation int

const (
	// Dilation grows the foreground (max / OR).
	Dilation Operation = iota
	// Erosion shrinks the foreground (min / AND).
	Erosion
)

// String implements fmt.Stringer.
func (op Operation) String() string {
	if op == Erosion {
		return "erosion"
	}

	return "dilation"
}

// Service performs elementary dilation and erosion by an arbitrary pattern.
// Implementations must be safe for concurrent use by independent callers.
type Service interface {
	// Dilate writes max_{p∈P} src(x−p) into dst. When includeOrigin is
	// true the origin is added to P first.
	Dilate(dst, src matrix.Matrix, p pattern.Pattern, mode matrix.Continuation, includeOrigin bool) error

	// Erode writes min_{p∈P} src(x−p) into dst. When includeOrigin is
	// true the origin is added to P first.
	Erode(dst, src matrix.Matrix, p pattern.Pattern, mode matrix.Continuation, includeOrigin bool) error

	// Multithreaded reports whether passes fan out across goroutines.
	Multithreaded() bool
}

// Basic is the generic Service. It holds no mutable state; a single value
// may be shared freely.
type Basic struct {
	multithreaded bool
}

var (
	singleThreaded = &Basic{multithreaded: false}
	multiThreaded  = &Basic{multithreaded: true}
)

// Default returns the shared single-threaded or multi-threaded Basic.
func Default(multithreaded bool) Service {
	if multithreaded {
		return multiThreaded
	}

	return singleThreaded
}

// Multithreaded reports whether b splits passes into row bands.
func (b *Basic) Multithreaded() bool { return b.multithreaded }

// Dilate implements Service.
func (b *Basic) Dilate(dst, src matrix.Matrix, p pattern.Pattern, mode matrix.Continuation, includeOrigin bool) error {
	if err := b.run(Dilation, dst, src, p, mode, includeOrigin); err != nil {
		return fmt.Errorf("Basic.Dilate: %w", err)
	}

	return nil
}

// Erode implements Service.
func (b *Basic) Erode(dst, src matrix.Matrix, p pattern.Pattern, mode matrix.Continuation, includeOrigin bool) error {
	if err := b.run(Erosion, dst, src, p, mode, includeOrigin); err != nil {
		return fmt.Errorf("Basic.Erode: %w", err)
	}

	return nil
}

// run validates the pass and dispatches on the concrete element type.
// Stage 1 (Validate): compatible, non-aliased matrices and a non-empty pattern.
// Stage 2 (Execute): typed kernel over row bands.
func (b *Basic) run(op Operation, dst, src matrix.Matrix, p pattern.Pattern, mode matrix.Continuation, includeOrigin bool) error {
	if err := matrix.ValidateCompatible(dst, src); err != nil {
		return err
	}
	if dst == src {
		return ErrAliased
	}
	if p.IsEmpty() {
		return pattern.ErrEmpty
	}
	if includeOrigin {
		p = p.WithOrigin()
	}
	pts := p.Points()

	switch d := dst.(type) {
	case *matrix.Dense[matrix.Bit]:
		return shiftCombine(op, d, src, pts, mode, b.multithreaded)
	case *matrix.Dense[uint8]:
		return shiftCombine(op, d, src, pts, mode, b.multithreaded)
	case *matrix.Dense[uint16]:
		return shiftCombine(op, d, src, pts, mode, b.multithreaded)
	case *matrix.Dense[int16]:
		return shiftCombine(op, d, src, pts, mode, b.multithreaded)
	case *matrix.Dense[int32]:
		return shiftCombine(op, d, src, pts, mode, b.multithreaded)
	case *matrix.Dense[float32]:
		return shiftCombine(op, d, src, pts, mode, b.multithreaded)
	case *matrix.Dense[float64]:
		return shiftCombine(op, d, src, pts, mode, b.multithreaded)
	default:
		return matrix.ErrUnsupportedType
	}
}

// shiftCombine folds the source, shifted by every pattern point, into dst
// with max (dilation) or min (erosion). The first point initializes dst.
// Out-of-range samples under ZeroConstant contribute the zero value.
func shiftCombine[T matrix.Element](op Operation, dst *matrix.Dense[T], srcM matrix.Matrix, pts []pattern.Point, mode matrix.Continuation, mt bool) error {
	src, ok := srcM.(*matrix.Dense[T])
	if !ok {
		return matrix.ErrUnsupportedType
	}
	rows, cols := dst.Rows(), dst.Cols()
	in, out := src.Data(), dst.Data()
	mode = mode.Resolve()
	erode := op == Erosion

	// Column lookup per point for separable modes; -1 marks a zero sample.
	var colIdx [][]int
	if mode != matrix.PseudoCyclic {
		colIdx = make([][]int, len(pts))
		for k, p := range pts {
			idx := make([]int, cols)
			for x := range idx {
				sx, inside := mode.Wrap(x-p.X, cols)
				if !inside {
					sx = -1
				}
				idx[x] = sx
			}
			colIdx[k] = idx
		}
	}

	parallel.Rows(rows, mt, func(y0, y1 int) {
		var zero T
		n := rows * cols
		for y := y0; y < y1; y++ {
			row := out[y*cols : (y+1)*cols]
			for k, p := range pts {
				first := k == 0
				if mode == matrix.PseudoCyclic {
					s, _ := mode.Locate(-p.X, y-p.Y, cols, rows)
					for x := range row {
						row[x] = fold(row[x], in[s], first, erode)
						if s++; s == n {
							s = 0
						}
					}
					continue
				}
				sy, inside := mode.Wrap(y-p.Y, rows)
				if !inside {
					for x := range row {
						row[x] = fold(row[x], zero, first, erode)
					}
					continue
				}
				srow := in[sy*cols : (sy+1)*cols]
				for x, sx := range colIdx[k] {
					v := zero
					if sx >= 0 {
						v = srow[sx]
					}
					row[x] = fold(row[x], v, first, erode)
				}
			}
		}
	})

	return nil
}

// fold combines one shifted sample into the accumulator.
// The builtin min/max propagate NaN regardless of argument order, which
// keeps results independent of the order points are visited in.
func fold[T matrix.Element](acc, v T, first, erode bool) T {
	switch {
	case first:
		return v
	case erode:
		return min(acc, v)
	default:
		return max(acc, v)
	}
}

// floorMod is the mathematical modulus: the result is always in [0, n).
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}
