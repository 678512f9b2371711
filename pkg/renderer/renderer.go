package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gmittal/spheretrace/pkg/core"
	"github.com/gmittal/spheretrace/pkg/tracer"
)

// PixelTracer is the per-pixel contract the renderer drives.
type PixelTracer interface {
	RenderPixel(x, y int) (core.Color, error)
}

var _ PixelTracer = (*tracer.Tracer)(nil)

// PixelError reports which pixel failed to trace.
type PixelError struct {
	X, Y int
	Err  error
}

func (e *PixelError) Error() string {
	return fmt.Sprintf("pixel (%d, %d): %v", e.X, e.Y, e.Err)
}

func (e *PixelError) Unwrap() error {
	return e.Err
}

// Config controls the worker pool.
type Config struct {
	Workers int // 0 means runtime.NumCPU()
}

// Renderer traces every pixel of a frame on a bounded pool of goroutines,
// one row per task.
type Renderer struct {
	tracer  PixelTracer
	width   int
	height  int
	workers int
}

// New creates a renderer for a width×height window.
func New(pt PixelTracer, width, height int, config Config) (*Renderer, error) {
	if pt == nil {
		return nil, errors.New("renderer: tracer is nil")
	}
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if config.Workers < 0 {
		return nil, fmt.Errorf("%w: workers %d must not be negative", core.ErrInvalidConfiguration, config.Workers)
	}
	workers := config.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{tracer: pt, width: width, height: height, workers: workers}, nil
}

// Render traces the whole frame. Cancelling ctx stops the render between
// pixels. The first tracing failure cancels the remaining rows and is
// returned as a *PixelError.
func (r *Renderer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	start := time.Now()
	stats := RenderStats{Width: r.width, Height: r.height, Workers: r.workers}

	frame, err := NewFrame(r.width, r.height)
	if err != nil {
		return nil, stats, err
	}

	minX, maxX, minY, maxY := frame.WindowRange()
	rows := make([]rowStats, maxY-minY+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for y := minY; y <= maxY; y++ {
		y := y
		row := &rows[y-minY]
		g.Go(func() error {
			return r.renderRow(gctx, frame, y, minX, maxX, row)
		})
	}
	err = g.Wait()

	for _, row := range rows {
		stats.addRow(row)
	}
	stats.Elapsed = time.Since(start)
	if err != nil {
		return nil, stats, err
	}
	return frame, stats, nil
}

// renderRow writes one window row. Distinct rows land on distinct buffer
// rows, so workers never touch the same pixel.
func (r *Renderer) renderRow(ctx context.Context, frame *Frame, y, minX, maxX int, row *rowStats) error {
	for x := minX; x <= maxX; x++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := r.tracer.RenderPixel(x, y)
		if err != nil {
			return &PixelError{X: x, Y: y, Err: err}
		}
		row.traced++
		if !c.IsBlack() {
			row.lit++
		}
		if !frame.Set(x, y, c) {
			row.clipped++
		}
	}
	return nil
}
