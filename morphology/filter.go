package morphology

import (
	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/katalvlaran/lvmorph/pattern"
)

// Filter is a single src→dst pass. dst and src must be distinct matrices of
// the same shape and element type.
type Filter interface {
	Apply(dst, src matrix.Matrix) error
}

// PatternFilter adapts a Service call with a fixed operation, pattern and
// continuation to the Filter interface.
type PatternFilter struct {
	Service       Service
	Op            Operation
	Pattern       pattern.Pattern
	Continuation  matrix.Continuation
	IncludeOrigin bool
}

// Apply implements Filter.
func (f PatternFilter) Apply(dst, src matrix.Matrix) error {
	if f.Op == Erosion {
		return f.Service.Erode(dst, src, f.Pattern, f.Continuation, f.IncludeOrigin)
	}

	return f.Service.Dilate(dst, src, f.Pattern, f.Continuation, f.IncludeOrigin)
}
