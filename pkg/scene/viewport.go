package scene

import (
	"fmt"

	"github.com/gmittal/spheretrace/pkg/core"
)

// MaxWindowDimension bounds the window width and height a scene can be built
// for, so a bad size fails validation instead of exhausting memory.
const MaxWindowDimension = 8192

// Viewport is the image plane primary rays pass through. It sits at
// distance size along +Z and spans size units across the window.
type Viewport struct {
	size        float32
	widthScale  float32
	heightScale float32
}

// NewViewport precomputes the per-axis scale from window pixels to plane units.
func NewViewport(size float32, windowWidth, windowHeight int) (Viewport, error) {
	if !(size > 0) || !core.Finite(size) {
		return Viewport{}, fmt.Errorf("%w: viewport size %v must be positive", core.ErrInvalidConfiguration, size)
	}
	if windowWidth <= 0 || windowHeight <= 0 {
		return Viewport{}, fmt.Errorf("%w: window size %dx%d must be positive", core.ErrInvalidConfiguration, windowWidth, windowHeight)
	}
	if windowWidth > MaxWindowDimension || windowHeight > MaxWindowDimension {
		return Viewport{}, fmt.Errorf("%w: window size %dx%d exceeds %d", core.ErrInvalidConfiguration, windowWidth, windowHeight, MaxWindowDimension)
	}
	return Viewport{
		size:        size,
		widthScale:  size / float32(windowWidth),
		heightScale: size / float32(windowHeight),
	}, nil
}

// Size returns the plane extent, which is also its distance from the camera.
func (v Viewport) Size() float32 {
	return v.size
}

// Project maps a window coordinate to its point on the image plane.
func (v Viewport) Project(x, y int) core.Vector {
	return core.NewVector(float32(x)*v.widthScale, float32(y)*v.heightScale, v.size)
}

// IsZero reports whether the viewport was never constructed.
func (v Viewport) IsZero() bool {
	return v.size == 0
}
