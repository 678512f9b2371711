package tracer

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gmittal/spheretrace/pkg/core"
	"github.com/gmittal/spheretrace/pkg/scene"
)

// Config controls recursion and the ray parameter intervals.
type Config struct {
	MaxDepth   int     // reflection bounces after the primary hit
	Epsilon    float32 // lower bound for reflected rays, keeps them off their own surface
	PrimaryMin float32 // lower bound for primary rays; 1 is the viewport plane
}

// DefaultConfig returns four reflection bounces and a 0.001 epsilon.
func DefaultConfig() Config {
	return Config{
		MaxDepth:   4,
		Epsilon:    0.001,
		PrimaryMin: 1,
	}
}

// Validate checks the config ranges.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", core.ErrInvalidConfiguration, c.MaxDepth)
	}
	if !(c.Epsilon > 0) || !core.Finite(c.Epsilon) {
		return fmt.Errorf("%w: epsilon %v must be positive", core.ErrInvalidConfiguration, c.Epsilon)
	}
	if !(c.PrimaryMin >= 0) || !core.Finite(c.PrimaryMin) {
		return fmt.Errorf("%w: primary ray minimum %v must not be negative", core.ErrInvalidConfiguration, c.PrimaryMin)
	}
	return nil
}

// Tracer shades rays against a read-only scene. It holds no mutable state,
// so one Tracer may serve any number of goroutines.
type Tracer struct {
	scene  *scene.Scene
	config Config
}

// New creates a tracer for s.
func New(s *scene.Scene, config Config) (*Tracer, error) {
	if s == nil {
		return nil, errors.New("tracer: scene is nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Tracer{scene: s, config: config}, nil
}

// Config returns the tracer configuration.
func (t *Tracer) Config() Config {
	return t.config
}

// Scene returns the scene being traced.
func (t *Tracer) Scene() *scene.Scene {
	return t.scene
}

// RenderPixel traces the primary ray through window coordinate (x, y), where
// (0, 0) is the window center and +Y points up.
func (t *Tracer) RenderPixel(x, y int) (core.Color, error) {
	direction := t.scene.Viewport.Project(x, y).Subtract(t.scene.Camera)
	ray := core.NewRay(t.scene.Camera, direction)
	return t.TraceRay(ray, t.config.PrimaryMin, math32.Inf(1), t.config.MaxDepth)
}

// RenderPixel traces one pixel of s with DefaultConfig.
func RenderPixel(s *scene.Scene, x, y int) (core.Color, error) {
	t, err := New(s, DefaultConfig())
	if err != nil {
		return core.Color{}, err
	}
	return t.RenderPixel(x, y)
}

// TraceRay returns the color seen along ray for hits with tMin < t < tMax,
// following reflections for at most depth more bounces.
func (t *Tracer) TraceRay(ray core.Ray, tMin, tMax float32, depth int) (core.Color, error) {
	hit, ok := t.ClosestIntersection(ray, tMin, tMax)
	if !ok {
		return core.Black(), nil
	}

	local, err := t.LocalColor(hit, ray.Direction)
	if err != nil {
		return core.Color{}, err
	}

	r := hit.Sphere.Reflective
	if depth <= 0 || r <= 0 {
		return local, nil
	}

	reflected, err := ReflectedRay(hit, ray)
	if err != nil {
		return core.Color{}, err
	}
	reflectedColor, err := t.TraceRay(reflected, t.config.Epsilon, tMax, depth-1)
	if err != nil {
		return core.Color{}, err
	}

	return local.Scale(1 - r).Add(reflectedColor.Scale(r)), nil
}

// ReflectedRay mirrors the incoming direction about the surface normal and
// starts the new ray at the hit point.
func ReflectedRay(hit Hit, incoming core.Ray) (core.Ray, error) {
	normal, err := hit.Sphere.Normal(hit.Point)
	if err != nil {
		return core.Ray{}, fmt.Errorf("normal at %v: %w", hit.Point, err)
	}
	return core.NewRay(hit.Point, incoming.Direction.Negate().Reflect(normal)), nil
}
