package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gmittal/spheretrace/pkg/renderer"
)

// DefaultFontSize is the point size used for TrueType captions.
const DefaultFontSize = 14

// Options controls how a frame is written out.
type Options struct {
	Caption  string  // drawn in the bottom-left corner when set
	FontPath string  // TrueType font for the caption; basicfont when empty
	FontSize float64 // points, DefaultFontSize when zero
}

// Compose copies the frame onto a drawing context and overlays the caption.
// The frame itself is left untouched.
func Compose(frame *renderer.Frame, opts Options) (*gg.Context, error) {
	dc := gg.NewContext(frame.Width(), frame.Height())
	dc.DrawImage(frame.Image(), 0, 0)

	if opts.Caption == "" {
		return dc, nil
	}

	face, err := captionFace(opts)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	const pad = 4.0
	w, h := dc.MeasureString(opts.Caption)
	y := float64(frame.Height()) - pad
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, y-h-pad, w+2*pad, h+2*pad)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawString(opts.Caption, pad, y)
	return dc, nil
}

// SavePNG writes the frame to path, creating parent directories.
func SavePNG(frame *renderer.Frame, path string, opts Options) error {
	dc, err := Compose(frame, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return nil
}

// WritePNG encodes the frame as PNG to w.
func WritePNG(w io.Writer, frame *renderer.Frame, opts Options) error {
	dc, err := Compose(frame, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// LoadFace parses a TrueType font file at the given point size.
func LoadFace(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

func captionFace(opts Options) (font.Face, error) {
	if opts.FontPath == "" {
		return basicfont.Face7x13, nil
	}
	size := opts.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	return LoadFace(opts.FontPath, size)
}
