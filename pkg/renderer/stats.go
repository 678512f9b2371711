package renderer

import "time"

// RenderStats contains statistics about a finished frame
type RenderStats struct {
	Width         int           // Frame width in pixels
	Height        int           // Frame height in pixels
	Workers       int           // Rows rendered concurrently
	TracedPixels  int           // Primary rays cast
	ClippedPixels int           // Traced pixels that fell outside the buffer
	LitPixels     int           // Pixels that came back non-black
	Elapsed       time.Duration // Wall time for the whole frame
}

// rowStats is accumulated by a single worker for one row.
type rowStats struct {
	traced  int
	clipped int
	lit     int
}

func (s *RenderStats) addRow(r rowStats) {
	s.TracedPixels += r.traced
	s.ClippedPixels += r.clipped
	s.LitPixels += r.lit
}

// Coverage returns the share of traced pixels that hit something.
func (s RenderStats) Coverage() float64 {
	if s.TracedPixels == 0 {
		return 0
	}
	return float64(s.LitPixels) / float64(s.TracedPixels)
}
