package scene

import (
	"fmt"

	"github.com/gmittal/spheretrace/pkg/core"
)

// Sphere is the only traceable surface.
type Sphere struct {
	Center     core.Vector
	Radius     float32
	Color      core.Color
	Specular   float32 // shininess exponent
	Reflective float32 // share of the final color taken from the reflected ray, in [0, 1]
}

// NewSphere creates a sphere and validates it.
func NewSphere(center core.Vector, radius float32, color core.Color, specular, reflective float32) (Sphere, error) {
	s := Sphere{
		Center:     center,
		Radius:     radius,
		Color:      color,
		Specular:   specular,
		Reflective: reflective,
	}
	if err := s.Validate(); err != nil {
		return Sphere{}, err
	}
	return s, nil
}

// Validate reports the first problem that would make the sphere untraceable.
func (s Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: sphere center %v is not finite", core.ErrDegenerateGeometry, s.Center)
	}
	if !(s.Radius > 0) || !core.Finite(s.Radius) {
		return fmt.Errorf("%w: sphere radius %v must be positive and finite", core.ErrDegenerateGeometry, s.Radius)
	}
	if !(s.Specular >= 0) || !core.Finite(s.Specular) {
		return fmt.Errorf("%w: sphere specular exponent %v must be non-negative", core.ErrInvalidConfiguration, s.Specular)
	}
	if !(s.Reflective >= 0 && s.Reflective <= 1) {
		return fmt.Errorf("%w: sphere reflectivity %v must be in [0, 1]", core.ErrInvalidConfiguration, s.Reflective)
	}
	return nil
}

// Normal returns the outward unit normal at a point on the surface.
func (s Sphere) Normal(point core.Vector) (core.Vector, error) {
	return point.Subtract(s.Center).Normalize()
}
