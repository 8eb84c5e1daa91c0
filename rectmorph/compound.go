package rectmorph

import "github.com/katalvlaran/lvmorph/morphology"

// Open is erosion followed by dilation by the side×side square starting at
// (-side/2, -side/2). It removes foreground details smaller than the square.
// The target is written once, after the dilation.
func (e *Engine) Open(side int) error {
	return e.OpenRectangle(-side/2, -side/2, side, side)
}

// Close is dilation followed by erosion by the same square as Open.
// It fills background gaps smaller than the square.
func (e *Engine) Close(side int) error {
	return e.CloseRectangle(-side/2, -side/2, side, side)
}

// OpenRectangle opens by an arbitrary rectangle.
//
// Open, Close and their rectangle and octagon forms inherit the boundary
// behavior of their passes: exact under None, Cyclic and PseudoCyclic.
// Under Mirror or ZeroConstant each half loses border data to its origin
// shift; under Mirror, Close(7) of a 40×40 block with a 5-sample margin
// differs from the source well inside the border (see SetContinuation).
func (e *Engine) OpenRectangle(minX, minY, sizeX, sizeY int) error {
	if err := e.rectangle("OpenRectangle", morphology.Erosion, minX, minY, sizeX, sizeY, false); err != nil {
		return err
	}

	return e.rectangle("OpenRectangle", morphology.Dilation, minX, minY, sizeX, sizeY, true)
}

// CloseRectangle closes by an arbitrary rectangle.
func (e *Engine) CloseRectangle(minX, minY, sizeX, sizeY int) error {
	if err := e.rectangle("CloseRectangle", morphology.Dilation, minX, minY, sizeX, sizeY, false); err != nil {
		return err
	}

	return e.rectangle("CloseRectangle", morphology.Erosion, minX, minY, sizeX, sizeY, true)
}

// OpenOctagon opens by the octagon of DilateOctagon.
func (e *Engine) OpenOctagon(radius int, addHalf bool) error {
	if err := e.octagon("OpenOctagon", morphology.Erosion, radius, addHalf, false); err != nil {
		return err
	}

	return e.octagon("OpenOctagon", morphology.Dilation, radius, addHalf, true)
}

// CloseOctagon closes by the octagon of DilateOctagon.
func (e *Engine) CloseOctagon(radius int, addHalf bool) error {
	if err := e.octagon("CloseOctagon", morphology.Dilation, radius, addHalf, false); err != nil {
		return err
	}

	return e.octagon("CloseOctagon", morphology.Erosion, radius, addHalf, true)
}
