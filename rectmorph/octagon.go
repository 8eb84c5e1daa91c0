package rectmorph

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/morphology"
	"github.com/katalvlaran/lvmorph/pattern"
)

// DilateOctagon dilates by the octagon approximating a disk of the given
// radius: ceil(radius/2) cross passes, then a centered square of side
// 2·floor(radius/2)+1, one sample wider when addHalf is set.
// Radius 0 without addHalf is the identity. Radius 0 with addHalf is the
// 2×2 square at (-1, -1): the sample grows left and up only, not in all
// four directions.
func (e *Engine) DilateOctagon(radius int, addHalf bool) error {
	return e.octagon("DilateOctagon", morphology.Dilation, radius, addHalf, true)
}

// ErodeOctagon erodes by the same octagon as DilateOctagon.
func (e *Engine) ErodeOctagon(radius int, addHalf bool) error {
	return e.octagon("ErodeOctagon", morphology.Erosion, radius, addHalf, true)
}

// DilateOctagonDiameter dilates by the octagon of the given diameter
// (radius diameter/2, half-sample growth for odd diameters).
func (e *Engine) DilateOctagonDiameter(diameter int) error {
	return e.octagonDiameter("DilateOctagonDiameter", morphology.Dilation, diameter)
}

// ErodeOctagonDiameter erodes by the octagon of the given diameter.
func (e *Engine) ErodeOctagonDiameter(diameter int) error {
	return e.octagonDiameter("ErodeOctagonDiameter", morphology.Erosion, diameter)
}

// octagonDiameter rejects negative diameters up front: -1/2 truncates to a
// legal radius of 0.
func (e *Engine) octagonDiameter(name string, op morphology.Operation, diameter int) error {
	if diameter < 0 {
		if err := e.requireTarget(name); err != nil {
			return err
		}
		return fmt.Errorf("Engine.%s(%d): %w", name, diameter, ErrNegativeRadius)
	}

	return e.octagon(name, op, diameter/2, diameter%2 != 0, true)
}

// octagon sums L1 balls (crosses) with one L∞ ball (square).
// Cost: O(radius) cross passes plus O(log radius) square passes.
func (e *Engine) octagon(name string, op morphology.Operation, radius int, addHalf, provide bool) error {
	if err := e.requireTarget(name); err != nil {
		return err
	}
	if radius < 0 {
		return fmt.Errorf("Engine.%s(%d): %w", name, radius, ErrNegativeRadius)
	}
	before := e.stats.Steps
	crossCount := (radius + 1) / 2
	for range crossCount {
		if err := e.elementary(op, pattern.Cross()); err != nil {
			return fmt.Errorf("Engine.%s: %w", name, err)
		}
	}
	side := 2*(radius/2) + 1
	if addHalf {
		side++
	}
	if err := e.decomposeRectangle(op, -side/2, -side/2, side, side); err != nil {
		return fmt.Errorf("Engine.%s: %w", name, err)
	}
	e.log.Debug().
		Str("call", name).
		Int("radius", radius).
		Bool("addHalf", addHalf).
		Int("crosses", crossCount).
		Int("squareSide", side).
		Int("steps", e.stats.Steps-before).
		Msg("octagon")

	return e.finish(name, provide)
}
