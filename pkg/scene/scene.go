package scene

import (
	"fmt"

	"github.com/gmittal/spheretrace/pkg/core"
)

// Scene holds everything a frame is traced against. It is read-only once
// built and safe to share between goroutines.
type Scene struct {
	Camera   core.Vector
	Viewport Viewport
	Spheres  []Sphere
	Lights   []Light
}

// New validates every sphere and light and returns a scene with the camera
// at the origin. All problems are reported together as core.ValidationErrors.
func New(viewport Viewport, spheres []Sphere, lights []Light) (*Scene, error) {
	var errs core.ValidationErrors

	if viewport.IsZero() {
		errs.Add(fmt.Errorf("%w: viewport is not initialized", core.ErrInvalidConfiguration))
	}
	for i, s := range spheres {
		if err := s.Validate(); err != nil {
			errs.Add(fmt.Errorf("sphere %d: %w", i, err))
		}
	}
	for i, l := range lights {
		if err := l.Validate(); err != nil {
			errs.Add(fmt.Errorf("light %d: %w", i, err))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &Scene{
		Camera:   core.Vector{},
		Viewport: viewport,
		Spheres:  append([]Sphere(nil), spheres...),
		Lights:   append([]Light(nil), lights...),
	}, nil
}
