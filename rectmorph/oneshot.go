package rectmorph

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/matrix"
)

// DilateSquare dilates m in place by the side×side square, using scratch
// as the engine's work matrix. The engine is discarded afterwards; callers
// running several operations should keep an Engine instead.
func DilateSquare(m, scratch matrix.Matrix, side int, opts ...Option) error {
	e, err := oneShot(m, scratch, opts...)
	if err != nil {
		return fmt.Errorf("DilateSquare: %w", err)
	}

	return e.DilateSquare(side)
}

// ErodeSquare erodes m in place by the side×side square; see DilateSquare.
func ErodeSquare(m, scratch matrix.Matrix, side int, opts ...Option) error {
	e, err := oneShot(m, scratch, opts...)
	if err != nil {
		return fmt.Errorf("ErodeSquare: %w", err)
	}

	return e.ErodeSquare(side)
}

func oneShot(m, scratch matrix.Matrix, opts ...Option) (*Engine, error) {
	e, err := New(scratch, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.BindTarget(m); err != nil {
		return nil, err
	}

	return e, nil
}
