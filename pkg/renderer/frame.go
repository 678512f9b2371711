package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gmittal/spheretrace/pkg/core"
	"github.com/gmittal/spheretrace/pkg/scene"
)

// Frame is the output buffer of a render. It is addressed in window
// coordinates, centered on (0, 0) with +Y up, and stored as an RGBA image
// with rows growing downward.
type Frame struct {
	img    *image.RGBA
	width  int
	height int
}

// NewFrame creates a black frame of the given size.
func NewFrame(width, height int) (*Frame, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return &Frame{img: img, width: width, height: height}, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: frame size %dx%d must be positive", core.ErrInvalidConfiguration, width, height)
	}
	if width > scene.MaxWindowDimension || height > scene.MaxWindowDimension {
		return fmt.Errorf("%w: frame size %dx%d exceeds %d", core.ErrInvalidConfiguration, width, height, scene.MaxWindowDimension)
	}
	return nil
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// Image returns the underlying buffer.
func (f *Frame) Image() *image.RGBA { return f.img }

// WindowRange returns the inclusive window coordinate range swept by a
// render: [-w/2, w/2] × [-h/2, h/2]. The top and right edges fall one past
// the buffer and are clipped.
func (f *Frame) WindowRange() (minX, maxX, minY, maxY int) {
	return -f.width / 2, f.width / 2, -f.height / 2, f.height / 2
}

// ToBuffer converts window coordinates to buffer coordinates, flipping Y.
func (f *Frame) ToBuffer(x, y int) (int, int) {
	return x + f.width/2, f.height - (y + f.height/2)
}

// Set writes c at window coordinate (x, y). Coordinates outside the buffer
// are dropped and reported as false.
func (f *Frame) Set(x, y int, c core.Color) bool {
	bx, by := f.ToBuffer(x, y)
	if bx < 0 || bx >= f.width || by < 0 || by >= f.height {
		return false
	}
	f.img.SetRGBA(bx, by, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
	return true
}

// At reads the color at window coordinate (x, y).
func (f *Frame) At(x, y int) (core.Color, bool) {
	bx, by := f.ToBuffer(x, y)
	if bx < 0 || bx >= f.width || by < 0 || by >= f.height {
		return core.Color{}, false
	}
	px := f.img.RGBAAt(bx, by)
	return core.NewColor(px.R, px.G, px.B), true
}
