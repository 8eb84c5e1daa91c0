// Package imageconv converts between image.Image and the matrices used by
// the morphology packages.
//
// Any image is first rendered onto an *image.Gray with
// golang.org/x/image/draw, so paletted, RGBA, YCbCr and 16-bit inputs are
// all accepted. Matrix row y and column x correspond to pixel
// (Bounds().Min.X+x, Bounds().Min.Y+y).
package imageconv

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/lvmorph/matrix"
)

// ErrEmptyImage indicates an image with zero width or height.
var ErrEmptyImage = errors.New("imageconv: image has no pixels")

// gray renders img onto a zero-origin *image.Gray.
func gray(img image.Image) (*image.Gray, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	if g, ok := img.(*image.Gray); ok && b.Min == (image.Point{}) && g.Stride == b.Dx() {
		return g, nil
	}
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(g, image.Point{}, img, b, xdraw.Src, nil)

	return g, nil
}

// ToGray returns the luminance of img as a Dense[uint8].
func ToGray(img image.Image) (*matrix.Dense[uint8], error) {
	g, err := gray(img)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDense[uint8](g.Rect.Dy(), g.Rect.Dx())
	if err != nil {
		return nil, err
	}
	w := g.Rect.Dx()
	data := m.Data()
	for y := 0; y < g.Rect.Dy(); y++ {
		copy(data[y*w:(y+1)*w], g.Pix[y*g.Stride:y*g.Stride+w])
	}

	return m, nil
}

// ToBinary returns a Dense[Bit] that is 1 where the luminance of img is
// at least threshold.
func ToBinary(img image.Image, threshold uint8) (*matrix.Dense[matrix.Bit], error) {
	g, err := ToGray(img)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDense[matrix.Bit](g.Rows(), g.Cols())
	if err != nil {
		return nil, err
	}
	out := m.Data()
	for i, v := range g.Data() {
		if v >= threshold {
			out[i] = 1
		}
	}

	return m, nil
}

// FromGray renders a Dense[uint8] as an *image.Gray.
func FromGray(m *matrix.Dense[uint8]) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, m.Cols(), m.Rows()))
	copy(g.Pix, m.Data())

	return g
}

// FromBinary renders a Dense[Bit] as an *image.Gray with 0 → 0 and
// non-zero → 255.
func FromBinary(m *matrix.Dense[matrix.Bit]) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, m.Cols(), m.Rows()))
	for i, v := range m.Data() {
		if v != 0 {
			g.Pix[i] = 255
		}
	}

	return g
}

// Scale resizes img to w×h with Catmull-Rom interpolation, for callers
// that downsample before running large structuring elements.
func Scale(img image.Image, w, h int) (*image.Gray, error) {
	if img.Bounds().Empty() || w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	return dst, nil
}
