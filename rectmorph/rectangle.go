// SPDX-License-Identifier: MIT
// Package: rectmorph
//
// Purpose:
//  - Rectangle and square dilation/erosion through logarithmic decomposition:
//    one origin shift, then doubling pairs along X and along Y.
//  - Centered 3×3 squares go straight to the fused kernel when legal.
//
// Complexity:
//  - O(W·H·(1 + log sizeX + log sizeY)) time, no allocation per pass.
//
// Note:
//  - The chain equals a single pass by the whole rectangle under None,
//    Cyclic and PseudoCyclic only. See Engine.SetContinuation.

package rectmorph

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/morphology"
	"github.com/katalvlaran/lvmorph/pattern"
)

// DilateRectangle dilates the target by the rectangle
// [minX, minX+sizeX) × [minY, minY+sizeY) and provides the result.
// A zero size leaves that axis unchanged. Negative sizes fail with
// ErrNegativeSize before anything is modified.
// Under Mirror and ZeroConstant the origin shift clips border data first,
// so the result may differ from a one-pass dilation away from the border
// too (see SetContinuation).
func (e *Engine) DilateRectangle(minX, minY, sizeX, sizeY int) error {
	return e.rectangle("DilateRectangle", morphology.Dilation, minX, minY, sizeX, sizeY, true)
}

// ErodeRectangle erodes the target by the rectangle
// [minX, minX+sizeX) × [minY, minY+sizeY) and provides the result.
// Boundary caveats are those of DilateRectangle.
func (e *Engine) ErodeRectangle(minX, minY, sizeX, sizeY int) error {
	return e.rectangle("ErodeRectangle", morphology.Erosion, minX, minY, sizeX, sizeY, true)
}

// DilateRectangleDeferred is DilateRectangle without ProvideResult: the
// latest data stays in the scratch pair until the next provided operation
// or an explicit ProvideResult.
func (e *Engine) DilateRectangleDeferred(minX, minY, sizeX, sizeY int) error {
	return e.rectangle("DilateRectangleDeferred", morphology.Dilation, minX, minY, sizeX, sizeY, false)
}

// ErodeRectangleDeferred is ErodeRectangle without ProvideResult.
func (e *Engine) ErodeRectangleDeferred(minX, minY, sizeX, sizeY int) error {
	return e.rectangle("ErodeRectangleDeferred", morphology.Erosion, minX, minY, sizeX, sizeY, false)
}

// DilateSquare dilates by the side×side square starting at (-side/2, -side/2).
func (e *Engine) DilateSquare(side int) error {
	return e.rectangle("DilateSquare", morphology.Dilation, -side/2, -side/2, side, side, true)
}

// ErodeSquare erodes by the side×side square starting at (-side/2, -side/2).
func (e *Engine) ErodeSquare(side int) error {
	return e.rectangle("ErodeSquare", morphology.Erosion, -side/2, -side/2, side, side, true)
}

// DilateSquareHalf dilates by the (2·halfSide+1)² square centered at the origin.
func (e *Engine) DilateSquareHalf(halfSide int) error {
	side := 2*halfSide + 1
	return e.rectangle("DilateSquareHalf", morphology.Dilation, -halfSide, -halfSide, side, side, true)
}

// ErodeSquareHalf erodes by the (2·halfSide+1)² square centered at the origin.
func (e *Engine) ErodeSquareHalf(halfSide int) error {
	side := 2*halfSide + 1
	return e.rectangle("ErodeSquareHalf", morphology.Erosion, -halfSide, -halfSide, side, side, true)
}

// rectangle validates, decomposes and optionally provides.
func (e *Engine) rectangle(name string, op morphology.Operation, minX, minY, sizeX, sizeY int, provide bool) error {
	if err := e.requireTarget(name); err != nil {
		return err
	}
	if sizeX < 0 || sizeY < 0 {
		return fmt.Errorf("Engine.%s(%d,%d,%d,%d): %w", name, minX, minY, sizeX, sizeY, ErrNegativeSize)
	}
	before := e.stats.Steps
	if err := e.decomposeRectangle(op, minX, minY, sizeX, sizeY); err != nil {
		return fmt.Errorf("Engine.%s: %w", name, err)
	}
	e.log.Debug().
		Str("call", name).
		Int("minX", minX).Int("minY", minY).
		Int("sizeX", sizeX).Int("sizeY", sizeY).
		Int("steps", e.stats.Steps-before).
		Bool("provide", provide).
		Msg("rectangle")

	return e.finish(name, provide)
}

// decomposeRectangle turns the rectangle into a logarithmic chain of
// elementary passes. Offsets are negated for erosion, so the chain erodes
// by the rectangle itself rather than by its reflection.
//
// Chain: one origin shift (if the corner is not the origin), then the
// doubling segments along X, then along Y. Minkowski sums commute, so the
// axis order does not change the result.
func (e *Engine) decomposeRectangle(op morphology.Operation, minX, minY, sizeX, sizeY int) error {
	if minX == -1 && minY == -1 && sizeX == 3 && sizeY == 3 && e.fastPathLegal() {
		return e.elementary(op, pattern.Square3x3())
	}
	sign := 1
	if op == morphology.Erosion {
		sign = -1
	}
	if minX != 0 || minY != 0 {
		if err := e.elementary(op, pattern.Single(sign*minX, sign*minY)); err != nil {
			return err
		}
	}
	if err := e.doubling(op, sizeX, func(d int) pattern.Pattern { return pattern.Pair(sign*d, 0) }); err != nil {
		return err
	}

	return e.doubling(op, sizeY, func(d int) pattern.Pattern { return pattern.Pair(0, sign*d) })
}

// doubling grows a one-sample segment to exactly size samples.
//
// Invariant: before each loop pass the covered segment is [0, i). Summing
// it with {0, i} covers [0, 2i), so i doubles per pass while 2i ≤ size.
// The closing pass sums with {0, size−i}; since size−i < i the union is
// exactly [0, size). Sizes 0 and 1 issue no pass.
func (e *Engine) doubling(op morphology.Operation, size int, segment func(d int) pattern.Pattern) error {
	i := 1
	for ; 2*i <= size; i *= 2 {
		if err := e.elementary(op, segment(i)); err != nil {
			return err
		}
	}
	if i < size {
		return e.elementary(op, segment(size-i))
	}

	return nil
}
