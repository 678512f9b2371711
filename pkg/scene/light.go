package scene

import (
	"fmt"

	"github.com/gmittal/spheretrace/pkg/core"
)

// LightKind selects how a light contributes to shading.
type LightKind int

const (
	// Ambient lights add their intensity everywhere.
	Ambient LightKind = iota
	// Directional lights shine from a fixed direction at infinity.
	Directional
	// Point lights shine from a world position.
	Point
)

func (k LightKind) String() string {
	switch k {
	case Ambient:
		return "ambient"
	case Directional:
		return "directional"
	case Point:
		return "point"
	default:
		return fmt.Sprintf("LightKind(%d)", int(k))
	}
}

// ParseLightKind maps "ambient", "directional" or "point" to a LightKind.
func ParseLightKind(s string) (LightKind, error) {
	switch s {
	case "ambient":
		return Ambient, nil
	case "directional":
		return Directional, nil
	case "point":
		return Point, nil
	default:
		return 0, fmt.Errorf("%w: unknown light type %q", core.ErrInvalidConfiguration, s)
	}
}

// Light is a tagged light source. Vector is unused for ambient lights, the
// direction the light comes from for directional lights, and the world
// position for point lights.
type Light struct {
	Kind      LightKind
	Intensity float32
	Vector    core.Vector
}

// NewAmbientLight creates an ambient light.
func NewAmbientLight(intensity float32) (Light, error) {
	return newLight(Ambient, intensity, core.Vector{})
}

// NewDirectionalLight creates a light arriving from direction.
func NewDirectionalLight(intensity float32, direction core.Vector) (Light, error) {
	return newLight(Directional, intensity, direction)
}

// NewPointLight creates a light at position.
func NewPointLight(intensity float32, position core.Vector) (Light, error) {
	return newLight(Point, intensity, position)
}

func newLight(kind LightKind, intensity float32, v core.Vector) (Light, error) {
	l := Light{Kind: kind, Intensity: intensity, Vector: v}
	if err := l.Validate(); err != nil {
		return Light{}, err
	}
	return l, nil
}

// Validate checks the intensity and the kind-specific vector.
func (l Light) Validate() error {
	if !(l.Intensity >= 0) || !core.Finite(l.Intensity) {
		return fmt.Errorf("%w: %s light intensity %v must be non-negative", core.ErrInvalidConfiguration, l.Kind, l.Intensity)
	}
	switch l.Kind {
	case Ambient:
	case Directional:
		if _, err := l.Vector.Normalize(); err != nil {
			return fmt.Errorf("directional light direction %v: %w", l.Vector, err)
		}
	case Point:
		if !l.Vector.IsFinite() {
			return fmt.Errorf("%w: point light position %v is not finite", core.ErrDegenerateGeometry, l.Vector)
		}
	default:
		return fmt.Errorf("%w: unknown light kind %d", core.ErrInvalidConfiguration, int(l.Kind))
	}
	return nil
}
