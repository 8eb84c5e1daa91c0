// SPDX-License-Identifier: MIT
// Package: rectmorph
//
// Purpose:
//  - Engine: scratch ping-pong pair, bound target, runtime settings, Stats.
//  - Target reconciliation (BindTarget, LoadFrom, ProvideResult).
//
// Complexity:
//  - Swap O(1); BindTarget, LoadFrom and ProvideResult O(W·H) each.
//
// Note:
//  - An Engine is single-goroutine; parallelism lives inside each pass.

package rectmorph

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/katalvlaran/lvmorph/morphology"
	"github.com/rs/zerolog"
)

// Stats counts the work an engine has done since construction or the last
// ResetStats.
type Stats struct {
	Steps     int // elementary passes, fast or generic
	FastSteps int // passes served by a fused 3×3 kernel
	Copies    int // full-matrix copies made by ProvideResult
	Loads     int // full-matrix copies into the pair by BindTarget/LoadFrom
}

// Engine runs rectangle and octagon morphology on a bound target through a
// ping-pong pair of scratch matrices.
//
// The pair holds work (the latest data) and result (the destination of
// the next pass). Each elementary pass writes work→result and swaps the
// two handles, so no data is copied between passes; the target receives
// the latest data only in ProvideResult.
//
// An Engine is not safe for concurrent use. Parallelism, when enabled,
// happens inside each pass.
type Engine struct {
	pair   [2]matrix.Matrix
	active int // index of work in pair
	target matrix.Matrix

	binary         bool
	multithreading bool
	continuation   matrix.Continuation
	service        morphology.Service // nil: shared default
	kernels        [2][2]*morphology.Kernel3x3

	log   zerolog.Logger
	stats Stats
}

// New creates an engine owning scratch and a second matrix of the same
// shape and element type. Binary scratch matrices (matrix.TypeBit) get no
// 3×3 kernels; every other type gets the four fused kernels.
// Returns ErrNilScratch for a nil scratch.
func New(scratch matrix.Matrix, opts ...Option) (*Engine, error) {
	if err := matrix.ValidateNotNil(scratch); err != nil {
		return nil, ErrNilScratch
	}
	s := gatherSettings(opts...)

	e := &Engine{
		pair:           [2]matrix.Matrix{scratch, scratch.Like()},
		binary:         scratch.ElementType().IsBinary(),
		multithreading: s.multithreading,
		continuation:   s.continuation,
		service:        s.service,
	}
	if s.logger != nil {
		e.log = *s.logger
	} else {
		e.log = Logger()
	}
	if !e.binary {
		for _, op := range []morphology.Operation{morphology.Dilation, morphology.Erosion} {
			for i := range kernelShapes {
				shape := morphology.Shape3x3(i)
				k, err := morphology.NewKernel3x3(op, shape, scratch.Rows(), scratch.Cols())
				if err != nil {
					return nil, fmt.Errorf("New: %w", err)
				}
				e.kernels[op][shape] = k.SetMultithreading(e.multithreading)
			}
		}
	}

	return e, nil
}

// Binary reports whether the engine works on Bit matrices.
func (e *Engine) Binary() bool { return e.binary }

// Multithreading reports the current threading mode.
func (e *Engine) Multithreading() bool { return e.multithreading }

// Continuation reports the current boundary policy.
func (e *Engine) Continuation() matrix.Continuation { return e.continuation }

// Stats returns the counters accumulated so far.
func (e *Engine) Stats() Stats { return e.stats }

// ResetStats zeroes the counters.
func (e *Engine) ResetStats() { e.stats = Stats{} }

// SetMultithreading switches every later pass, including the 3×3 kernels,
// between parallel and single-goroutine execution.
func (e *Engine) SetMultithreading(enabled bool) *Engine {
	e.multithreading = enabled
	for _, byShape := range e.kernels {
		for _, k := range byShape {
			if k != nil {
				k.SetMultithreading(enabled)
			}
		}
	}

	return e
}

// SetContinuation sets the boundary policy of every later pass.
// matrix.ContinuationNone lets the engine pick its fastest extension and
// keeps the 3×3 fast path available. Panics if mode is not one of the
// declared Continuation constants, like WithContinuation.
//
// Decomposed operations equal a single pass by the whole element only
// under None, Cyclic and PseudoCyclic. Under Mirror and ZeroConstant the
// first pass (the origin shift) already drops or replaces border samples
// and later passes carry that loss inward, so a rectangle, octagon, open
// or close can differ from the one-pass result up to the element's extent
// away from the border. Close(7) on a 40×40 block under Mirror is one
// such case.
func (e *Engine) SetContinuation(mode matrix.Continuation) *Engine {
	if !knownContinuation(mode) {
		panic(panicSetContinuationInvalid)
	}
	e.continuation = mode
	return e
}

// Target returns the bound target, or nil.
func (e *Engine) Target() matrix.Matrix { return e.target }

// BindTarget validates m against the scratch pair (element type, then
// shape), records it as the reconciliation target and loads its content
// into work. On error nothing changes.
func (e *Engine) BindTarget(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Engine.BindTarget: %w", err)
	}
	if err := matrix.ValidateSameType(e.work(), m); err != nil {
		return fmt.Errorf("Engine.BindTarget: %w", err)
	}
	if err := matrix.ValidateSameShape(e.work(), m); err != nil {
		return fmt.Errorf("Engine.BindTarget: %w", err)
	}
	e.target = m
	if err := e.loadTarget(); err != nil {
		return fmt.Errorf("Engine.BindTarget: %w", err)
	}
	e.log.Debug().
		Int("rows", m.Rows()).Int("cols", m.Cols()).
		Stringer("type", m.ElementType()).
		Msg("target bound")

	return nil
}

// LoadFrom copies src into the bound target and into work, so the next
// operation starts from src.
func (e *Engine) LoadFrom(src matrix.Matrix) error {
	if e.target == nil {
		return fmt.Errorf("Engine.LoadFrom: %w", ErrNoTarget)
	}
	if err := e.target.CopyFrom(src); err != nil {
		return fmt.Errorf("Engine.LoadFrom: %w", err)
	}
	if err := e.loadTarget(); err != nil {
		return fmt.Errorf("Engine.LoadFrom: %w", err)
	}

	return nil
}

// ProvideResult makes the target hold the latest data. It copies work into
// the target unless the target already is work; if the target is the
// result handle the pair is swapped afterwards so work stays the latest.
func (e *Engine) ProvideResult() error {
	if e.target == nil {
		return fmt.Errorf("Engine.ProvideResult: %w", ErrNoTarget)
	}
	if e.target == e.work() {
		return nil
	}
	if err := e.target.CopyFrom(e.work()); err != nil {
		return fmt.Errorf("Engine.ProvideResult: %w", err)
	}
	e.stats.Copies++
	if e.target == e.result() {
		e.swap()
	}

	return nil
}

// work is the handle holding the latest data.
func (e *Engine) work() matrix.Matrix { return e.pair[e.active] }

// result is the handle the next pass writes into.
func (e *Engine) result() matrix.Matrix { return e.pair[1-e.active] }

// swap exchanges the roles of work and result. O(1), no data moves.
func (e *Engine) swap() { e.active ^= 1 }

// loadTarget makes work hold the target's content.
func (e *Engine) loadTarget() error {
	if e.target == e.result() {
		e.swap()
	}
	if e.target == e.work() {
		return nil
	}
	if err := e.work().CopyFrom(e.target); err != nil {
		return err
	}
	e.stats.Loads++

	return nil
}

// requireTarget is the precondition of every processing call.
func (e *Engine) requireTarget(op string) error {
	if e.target == nil {
		return fmt.Errorf("Engine.%s: %w", op, ErrNoTarget)
	}

	return nil
}

// finish reconciles the target when provide is set.
func (e *Engine) finish(op string, provide bool) error {
	if !provide {
		return nil
	}
	if err := e.ProvideResult(); err != nil {
		return fmt.Errorf("Engine.%s: %w", op, err)
	}

	return nil
}
