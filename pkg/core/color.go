package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit RGB color. Arithmetic saturates at the channel limits
// instead of wrapping.
type Color struct {
	R, G, B uint8
}

var _ color.Color = Color{}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the color returned for rays that hit nothing.
func Black() Color {
	return Color{}
}

// Scale multiplies every channel by factor, truncating toward zero and
// clamping to [0, 255].
func (c Color) Scale(factor float32) Color {
	return Color{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

// Add returns the per-channel sum, saturating at 255.
func (c Color) Add(other Color) Color {
	return Color{
		R: addChannel(c.R, other.R),
		G: addChannel(c.G, other.G),
		B: addChannel(c.B, other.B),
	}
}

// IsBlack reports whether all channels are zero.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// RGBA implements color.Color. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

// Hex formats the color as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor parses "#RRGGBB" (the leading # is optional).
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: color %q is not #RRGGBB", ErrInvalidConfiguration, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidConfiguration, s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) String() string {
	return c.Hex()
}

func scaleChannel(ch uint8, factor float32) uint8 {
	v := float32(ch) * factor
	// NaN fails every comparison and lands here too.
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func addChannel(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
