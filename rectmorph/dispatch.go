package rectmorph

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/katalvlaran/lvmorph/morphology"
	"github.com/katalvlaran/lvmorph/pattern"
)

// serviceFor returns the service generic passes go through.
func (e *Engine) serviceFor() morphology.Service {
	if e.service != nil {
		return e.service
	}

	return morphology.Default(e.multithreading)
}

// fastPathLegal reports whether the fused 3×3 kernels may replace a generic
// pass: they implement cyclic continuation only and are not defined for
// binary matrices.
func (e *Engine) fastPathLegal() bool {
	if e.binary {
		return false
	}

	return e.continuation == matrix.ContinuationNone || e.continuation == matrix.Cyclic
}

// filterFor picks the strategy for one elementary pass by p. Both
// strategies produce identical output wherever the fused kernel is legal.
func (e *Engine) filterFor(op morphology.Operation, p pattern.Pattern) (morphology.Filter, bool) {
	if e.fastPathLegal() {
		if shape, ok := kernelShape(p); ok {
			return e.kernels[op][shape], true
		}
	}

	return morphology.PatternFilter{
		Service:      e.serviceFor(),
		Op:           op,
		Pattern:      p,
		Continuation: e.continuation,
	}, false
}

// kernelShapes maps each fused kernel to the neighborhood it scans.
var kernelShapes = [...]pattern.Connectivity{
	morphology.Square: pattern.Conn8,
	morphology.Cross:  pattern.Conn4,
}

// kernelShape reports which fused kernel, if any, computes a pass by p.
func kernelShape(p pattern.Pattern) (morphology.Shape3x3, bool) {
	for shape, conn := range kernelShapes {
		if p.Equal(pattern.Neighborhood(conn)) {
			return morphology.Shape3x3(shape), true
		}
	}

	return 0, false
}

// elementary runs one pass work→result and swaps.
func (e *Engine) elementary(op morphology.Operation, p pattern.Pattern) error {
	f, fast := e.filterFor(op, p)
	if err := f.Apply(e.result(), e.work()); err != nil {
		return fmt.Errorf("%s by %v: %w", op, p, err)
	}
	e.swap()
	e.stats.Steps++
	if fast {
		e.stats.FastSteps++
	}
	e.log.Trace().
		Stringer("op", op).
		Int("points", p.Len()).
		Bool("fast", fast).
		Msg("elementary step")

	return nil
}
