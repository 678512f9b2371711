package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gmittal/spheretrace/pkg/core"
	"github.com/gmittal/spheretrace/pkg/scene"
	"github.com/google/go-cmp/cmp"
)

func TestLoadScene_MatchesDefaultPreset(t *testing.T) {
	sf, err := LoadScene(filepath.Join("testdata", "default.json"))
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}
	if sf.Width != 768 || sf.Height != 768 || sf.MaxDepth != 4 {
		t.Errorf("Unexpected settings %dx%d depth %d", sf.Width, sf.Height, sf.MaxDepth)
	}

	preset, _ := scene.LookupPreset("default")
	want, err := preset.Build(sf.Width, sf.Height)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want.Spheres, sf.Scene.Spheres); diff != "" {
		t.Errorf("Spheres mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Lights, sf.Scene.Lights); diff != "" {
		t.Errorf("Lights mismatch (-want +got):\n%s", diff)
	}
	if sf.Scene.Viewport.Project(10, 10) != want.Viewport.Project(10, 10) {
		t.Error("Viewport differs from the preset")
	}
}

func TestParseScene_Defaults(t *testing.T) {
	sf, err := ParseScene([]byte(`{"spheres": [{"center": [0, 0, 5], "radius": 1, "color": "#FF0000"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if sf.Width != DefaultWidth || sf.Height != DefaultHeight || sf.MaxDepth != DefaultDepth {
		t.Errorf("Expected defaults, got %dx%d depth %d", sf.Width, sf.Height, sf.MaxDepth)
	}
	if sf.Scene.Viewport.Size() != DefaultViewportSize {
		t.Errorf("Expected viewport size %v, got %v", DefaultViewportSize, sf.Scene.Viewport.Size())
	}
	if len(sf.Scene.Lights) != 0 {
		t.Errorf("Expected no lights, got %d", len(sf.Scene.Lights))
	}
}

func TestParseScene_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		count   int
	}{
		{"invalid JSON", `{"width": `, core.ErrInvalidConfiguration, 0},
		{"not an object", `[1, 2, 3]`, core.ErrInvalidConfiguration, 0},
		{"negative depth", `{"depth": -1}`, core.ErrInvalidConfiguration, 1},
		{"zero width", `{"width": 0}`, core.ErrInvalidConfiguration, 1},
		{"huge height", `{"height": 1000000}`, core.ErrInvalidConfiguration, 1},
		{"zero radius", `{"spheres": [{"center": [0,0,5], "radius": 0, "color": "#FFFFFF"}]}`, core.ErrDegenerateGeometry, 1},
		{"missing radius", `{"spheres": [{"center": [0,0,5], "color": "#FFFFFF"}]}`, core.ErrDegenerateGeometry, 1},
		{"short center", `{"spheres": [{"center": [0,5], "radius": 1, "color": "#FFFFFF"}]}`, core.ErrInvalidConfiguration, 1},
		{"bad channel", `{"spheres": [{"center": [0,0,5], "radius": 1, "color": [0, 256, 0]}]}`, core.ErrInvalidConfiguration, 1},
		{"unknown light", `{"lights": [{"type": "spot", "intensity": 1}]}`, core.ErrInvalidConfiguration, 1},
		{"zero direction", `{"lights": [{"type": "directional", "intensity": 1, "direction": [0,0,0]}]}`, core.ErrDegenerateVector, 1},
		{
			"collects every problem",
			`{"depth": -2,
			  "spheres": [{"center": [0,0,5], "radius": -1, "color": "#FFFFFF"}],
			  "lights": [{"type": "ambient", "intensity": -0.5}, {"type": "point", "intensity": 1}]}`,
			core.ErrInvalidConfiguration,
			4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if tt.count == 0 {
				return
			}
			var ve core.ValidationErrors
			if !errors.As(err, &ve) {
				t.Fatalf("Expected ValidationErrors, got %T", err)
			}
			if len(ve) != tt.count {
				t.Errorf("Expected %d problems, got %d: %v", tt.count, len(ve), err)
			}
		})
	}
}

func TestLoadScene_MissingFile(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
