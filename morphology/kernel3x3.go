package morphology

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/internal/parallel"
	"github.com/katalvlaran/lvmorph/matrix"
)

// Shape3x3 selects the neighborhood of a Kernel3x3.
type Shape3x3 int

const (
	// Square is the full centered 3×3 square.
	Square Shape3x3 = iota
	// Cross is the 5-point diamond.
	Cross
)

// String implements fmt.Stringer.
func (s Shape3x3) String() string {
	if s == Cross {
		return "cross"
	}

	return "square"
}

// Kernel3x3 is a fused dilation or erosion by the 3×3 square or cross with
// cyclic continuation. It reads each source row once per output row and
// needs no intermediate buffer, unlike the two-pass decomposition of the
// square.
//
// A kernel is bound to one shape (rows×cols) at construction. It is not
// defined for binary matrices; Apply rejects them with matrix.ErrTypeMismatch.
type Kernel3x3 struct {
	op            Operation
	shape         Shape3x3
	rows, cols    int
	multithreaded bool
}

// NewKernel3x3 creates a kernel for rows×cols matrices.
// Returns matrix.ErrInvalidDimensions for non-positive dimensions.
func NewKernel3x3(op Operation, shape Shape3x3, rows, cols int) (*Kernel3x3, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrix.ErrInvalidDimensions
	}

	return &Kernel3x3{op: op, shape: shape, rows: rows, cols: cols}, nil
}

// SetMultithreading toggles row-band parallelism and returns k.
func (k *Kernel3x3) SetMultithreading(enabled bool) *Kernel3x3 {
	k.multithreaded = enabled
	return k
}

// Multithreaded reports the current threading mode.
func (k *Kernel3x3) Multithreaded() bool { return k.multithreaded }

// Operation returns the kernel's operation.
func (k *Kernel3x3) Operation() Operation { return k.op }

// Shape returns the kernel's neighborhood.
func (k *Kernel3x3) Shape() Shape3x3 { return k.shape }

// Apply implements Filter.
func (k *Kernel3x3) Apply(dst, src matrix.Matrix) error {
	if err := matrix.ValidateCompatible(dst, src); err != nil {
		return fmt.Errorf("Kernel3x3.Apply: %w", err)
	}
	if dst.Rows() != k.rows || dst.Cols() != k.cols {
		return fmt.Errorf("Kernel3x3.Apply: %w", matrix.ErrDimensionMismatch)
	}
	if dst == src {
		return fmt.Errorf("Kernel3x3.Apply: %w", ErrAliased)
	}

	var err error
	switch d := dst.(type) {
	case *matrix.Dense[uint8]:
		err = fused(k, d, src)
	case *matrix.Dense[uint16]:
		err = fused(k, d, src)
	case *matrix.Dense[int16]:
		err = fused(k, d, src)
	case *matrix.Dense[int32]:
		err = fused(k, d, src)
	case *matrix.Dense[float32]:
		err = fused(k, d, src)
	case *matrix.Dense[float64]:
		err = fused(k, d, src)
	case *matrix.Dense[matrix.Bit]:
		err = matrix.ErrTypeMismatch
	default:
		err = matrix.ErrUnsupportedType
	}
	if err != nil {
		return fmt.Errorf("Kernel3x3.Apply: %w", err)
	}

	return nil
}

// fused computes every output sample from its cyclic 3×3 neighborhood in
// one sweep.
func fused[T matrix.Element](k *Kernel3x3, dst *matrix.Dense[T], srcM matrix.Matrix) error {
	src, ok := srcM.(*matrix.Dense[T])
	if !ok {
		return matrix.ErrUnsupportedType
	}
	rows, cols := k.rows, k.cols
	in, out := src.Data(), dst.Data()
	erode := k.op == Erosion
	cross := k.shape == Cross

	parallel.Rows(rows, k.multithreaded, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			up := in[floorMod(y-1, rows)*cols:][:cols]
			mid := in[y*cols:][:cols]
			down := in[floorMod(y+1, rows)*cols:][:cols]
			row := out[y*cols:][:cols]
			for x := range row {
				xl := x - 1
				if xl < 0 {
					xl = cols - 1
				}
				xr := x + 1
				if xr == cols {
					xr = 0
				}
				var v T
				switch {
				case cross && erode:
					v = min(mid[x], mid[xl], mid[xr], up[x], down[x])
				case cross:
					v = max(mid[x], mid[xl], mid[xr], up[x], down[x])
				case erode:
					v = min(mid[x], mid[xl], mid[xr],
						up[x], up[xl], up[xr],
						down[x], down[xl], down[xr])
				default:
					v = max(mid[x], mid[xl], mid[xr],
						up[x], up[xl], up[xr],
						down[x], down[xl], down[xr])
				}
				row[x] = v
			}
		}
	})

	return nil
}
