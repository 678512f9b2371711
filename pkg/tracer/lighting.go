package tracer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gmittal/spheretrace/pkg/core"
	"github.com/gmittal/spheretrace/pkg/scene"
)

// LocalColor shades the hit from the scene lights, without reflections.
// direction is the incoming ray direction.
func (t *Tracer) LocalColor(hit Hit, direction core.Vector) (core.Color, error) {
	normal, err := hit.Sphere.Normal(hit.Point)
	if err != nil {
		return core.Color{}, fmt.Errorf("normal at %v: %w", hit.Point, err)
	}
	coeff, err := t.LightCoefficient(hit.Point, normal, direction, hit.Sphere.Specular)
	if err != nil {
		return core.Color{}, err
	}
	return hit.Sphere.Color.Scale(coeff), nil
}

// LightCoefficient sums the ambient, diffuse and specular contributions of
// every light at point and clamps the total to at most 1. normal must be unit
// length; view is the direction the point is seen along.
func (t *Tracer) LightCoefficient(point, normal, view core.Vector, specular float32) (float32, error) {
	var coeff float32
	for _, light := range t.scene.Lights {
		switch light.Kind {
		case scene.Ambient:
			coeff += light.Intensity
			continue
		case scene.Directional, scene.Point:
		default:
			return 0, fmt.Errorf("%w: unknown light kind %d", core.ErrInvalidConfiguration, int(light.Kind))
		}

		toLight := lightDirection(light, point)
		if t.InShadow(point, toLight, light.Kind) {
			continue
		}

		diffuse, err := cosine(toLight, normal)
		if err != nil {
			return 0, fmt.Errorf("%s light at %v: %w", light.Kind, point, err)
		}
		coeff += light.Intensity * diffuse

		spec, err := cosine(toLight.Reflect(normal), view.Negate())
		if err != nil {
			return 0, fmt.Errorf("%s light at %v: %w", light.Kind, point, err)
		}
		coeff += light.Intensity * math32.Pow(spec, specular)
	}

	if !core.Finite(coeff) {
		return 0, fmt.Errorf("%w: light coefficient %v at %v", core.ErrNonFinite, coeff, point)
	}
	return math32.Min(coeff, 1), nil
}

// InShadow reports whether any sphere blocks toLight before it reaches the
// light. Point light directions span exactly point→light, so the light sits
// at t = 1; directional lights are at infinity.
func (t *Tracer) InShadow(point, toLight core.Vector, kind scene.LightKind) bool {
	tLight := math32.Inf(1)
	if kind == scene.Point {
		tLight = 1
	}
	_, blocked := t.ClosestIntersection(core.NewRay(point, toLight), 0, tLight)
	return blocked
}

func lightDirection(light scene.Light, point core.Vector) core.Vector {
	if light.Kind == scene.Point {
		return light.Vector.Subtract(point)
	}
	return light.Vector
}

// cosine returns the cosine of the angle between a and b, floored at 0.
func cosine(a, b core.Vector) (float32, error) {
	ua, err := a.Normalize()
	if err != nil {
		return 0, err
	}
	ub, err := b.Normalize()
	if err != nil {
		return 0, err
	}
	return math32.Max(0, ua.Dot(ub)), nil
}
