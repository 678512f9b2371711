package scene

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/gmittal/spheretrace/pkg/core"
	"github.com/google/go-cmp/cmp"
)

func TestNewSphere_Validation(t *testing.T) {
	red := core.NewColor(255, 0, 0)
	origin := core.NewVector(0, 0, 5)

	tests := []struct {
		name       string
		center     core.Vector
		radius     float32
		specular   float32
		reflective float32
		wantErr    error
	}{
		{"valid", origin, 1, 500, 0.2, nil},
		{"zero radius", origin, 0, 0, 0, core.ErrDegenerateGeometry},
		{"negative radius", origin, -1, 0, 0, core.ErrDegenerateGeometry},
		{"NaN radius", origin, math32.NaN(), 0, 0, core.ErrDegenerateGeometry},
		{"infinite center", core.NewVector(math32.Inf(1), 0, 0), 1, 0, 0, core.ErrDegenerateGeometry},
		{"negative specular", origin, 1, -1, 0, core.ErrInvalidConfiguration},
		{"reflective above one", origin, 1, 0, 1.5, core.ErrInvalidConfiguration},
		{"negative reflective", origin, 1, 0, -0.1, core.ErrInvalidConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSphere(tt.center, tt.radius, red, tt.specular, tt.reflective)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if s.Radius != tt.radius {
					t.Errorf("Expected radius %v, got %v", tt.radius, s.Radius)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSphere_Normal(t *testing.T) {
	s, err := NewSphere(core.NewVector(0, 0, 5), 2, core.Black(), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	n, err := s.Normal(core.NewVector(0, 0, 3))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != core.NewVector(0, 0, -1) {
		t.Errorf("Expected (0, 0, -1), got %v", n)
	}
}

func TestNewLights(t *testing.T) {
	if _, err := NewAmbientLight(0.5); err != nil {
		t.Errorf("Ambient light: unexpected error %v", err)
	}
	if _, err := NewAmbientLight(-0.1); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Negative intensity: expected ErrInvalidConfiguration, got %v", err)
	}
	if _, err := NewDirectionalLight(0.2, core.Vector{}); !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Zero direction: expected ErrDegenerateVector, got %v", err)
	}
	if _, err := NewPointLight(0.7, core.NewVector(0, math32.NaN(), 0)); !errors.Is(err, core.ErrDegenerateGeometry) {
		t.Errorf("NaN position: expected ErrDegenerateGeometry, got %v", err)
	}

	l, err := NewPointLight(0.7, core.NewVector(0, 0.5, 6.5))
	if err != nil {
		t.Fatal(err)
	}
	want := Light{Kind: Point, Intensity: 0.7, Vector: core.NewVector(0, 0.5, 6.5)}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("Point light mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLightKind(t *testing.T) {
	for _, kind := range []LightKind{Ambient, Directional, Point} {
		got, err := ParseLightKind(kind.String())
		if err != nil {
			t.Fatalf("%s: unexpected error %v", kind, err)
		}
		if got != kind {
			t.Errorf("Expected %s, got %s", kind, got)
		}
	}
	if _, err := ParseLightKind("spot"); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for spot, got %v", err)
	}
}

func TestViewport(t *testing.T) {
	v, err := NewViewport(1, 768, 384)
	if err != nil {
		t.Fatal(err)
	}

	got := v.Project(384, -192)
	want := core.NewVector(0.5, -0.5, 1)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if center := v.Project(0, 0); center != core.NewVector(0, 0, 1) {
		t.Errorf("Center pixel should project onto the view axis, got %v", center)
	}
}

func TestViewport_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		size          float32
		width, height int
	}{
		{"zero size", 0, 100, 100},
		{"negative size", -1, 100, 100},
		{"zero width", 1, 0, 100},
		{"negative height", 1, 100, -5},
		{"too wide", 1, MaxWindowDimension + 1, 100},
		{"too tall", 1, 100, 1 << 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewViewport(tt.size, tt.width, tt.height); !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestNew_CollectsAllErrors(t *testing.T) {
	viewport, err := NewViewport(1, 10, 10)
	if err != nil {
		t.Fatal(err)
	}

	spheres := []Sphere{
		{Center: core.NewVector(0, 0, 5), Radius: 0},
		{Center: core.NewVector(0, 0, 5), Radius: 1},
	}
	lights := []Light{
		{Kind: Ambient, Intensity: -1},
		{Kind: Directional, Intensity: 1},
	}

	_, err = New(viewport, spheres, lights)
	var ve core.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationErrors, got %T: %v", err, err)
	}
	if len(ve) != 3 {
		t.Errorf("Expected 3 problems, got %d: %v", len(ve), err)
	}
	if !errors.Is(err, core.ErrDegenerateGeometry) || !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Expected both error kinds, got %v", err)
	}
}

func TestNew_RequiresViewport(t *testing.T) {
	if _, err := New(Viewport{}, nil, nil); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestNew_CopiesInputs(t *testing.T) {
	viewport, _ := NewViewport(1, 10, 10)
	spheres := []Sphere{{Center: core.NewVector(0, 0, 5), Radius: 1}}

	s, err := New(viewport, spheres, nil)
	if err != nil {
		t.Fatal(err)
	}
	spheres[0].Radius = 42
	if s.Spheres[0].Radius != 1 {
		t.Error("Scene should not alias the caller's sphere slice")
	}
	if s.Camera != (core.Vector{}) {
		t.Errorf("Camera should sit at the origin, got %v", s.Camera)
	}
}

func TestPresets(t *testing.T) {
	list := ListPresets()
	if len(list) != 3 {
		t.Fatalf("Expected 3 presets, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("Presets not sorted: %s before %s", list[i-1].Name, list[i].Name)
		}
	}

	for _, p := range list {
		t.Run(p.Name, func(t *testing.T) {
			s, err := p.Build(p.Width, p.Height)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(s.Spheres) == 0 || len(s.Lights) == 0 {
				t.Error("Preset should have spheres and lights")
			}
		})
	}

	if _, ok := LookupPreset("missing"); ok {
		t.Error("Unknown preset should not be found")
	}
	p, _ := LookupPreset("default")
	if _, err := p.Build(0, 10); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for zero width, got %v", err)
	}
}
