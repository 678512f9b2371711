package scene

import (
	"fmt"
	"sort"

	"github.com/gmittal/spheretrace/pkg/core"
)

// Preset is a named scene with the window size it was composed for.
type Preset struct {
	Name        string
	Description string
	Width       int
	Height      int
	build       func(viewport Viewport) (*Scene, error)
}

// Build constructs the preset for a window of the given size.
func (p Preset) Build(width, height int) (*Scene, error) {
	viewport, err := NewViewport(1, width, height)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", p.Name, err)
	}
	return p.build(viewport)
}

var presets = map[string]Preset{
	"default": {
		Name:        "default",
		Description: "Two glossy spheres flanking a green one above a blue floor",
		Width:       768,
		Height:      768,
		build:       newDefaultScene,
	},
	"classic": {
		Name:        "classic",
		Description: "Red, green and blue spheres over a reflective yellow floor",
		Width:       600,
		Height:      600,
		build:       newClassicScene,
	},
	"single": {
		Name:        "single",
		Description: "One matte red sphere under full ambient light",
		Width:       256,
		Height:      256,
		build:       newSingleSphereScene,
	},
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// ListPresets returns all presets sorted by name.
func ListPresets() []Preset {
	list := make([]Preset, 0, len(presets))
	for _, p := range presets {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

func newDefaultScene(viewport Viewport) (*Scene, error) {
	spheres := []Sphere{
		{Center: core.NewVector(-1.6, -0.25, 7), Radius: 0.9, Color: core.NewColor(0xFF, 0x00, 0x33), Specular: 1000, Reflective: 0.7},
		{Center: core.NewVector(1.6, -0.25, 7), Radius: 0.9, Color: core.NewColor(0xFF, 0x99, 0x00), Specular: 1000, Reflective: 0.7},
		{Center: core.NewVector(0, -0.9, 6), Radius: 0.7, Color: core.NewColor(0x00, 0xFF, 0x00), Specular: 80, Reflective: 0.45},
		{Center: core.NewVector(0.4, -5001, 0), Radius: 5000, Color: core.NewColor(0x00, 0x00, 0xFF), Specular: 10, Reflective: 0.3},
	}
	lights := []Light{
		{Kind: Ambient, Intensity: 0.1},
		{Kind: Directional, Intensity: 0.2, Vector: core.NewVector(-1.5, 0.8, -1.5)},
		{Kind: Point, Intensity: 0.7, Vector: core.NewVector(0, 0.5, 6.5)},
	}
	return New(viewport, spheres, lights)
}

func newClassicScene(viewport Viewport) (*Scene, error) {
	spheres := []Sphere{
		{Center: core.NewVector(0, -1, 6), Radius: 1, Color: core.NewColor(0xFF, 0x00, 0x00), Specular: 500, Reflective: 0.2},
		{Center: core.NewVector(2, 0, 7), Radius: 1, Color: core.NewColor(0x00, 0x00, 0xFF), Specular: 500, Reflective: 0.3},
		{Center: core.NewVector(-2, 0, 7), Radius: 1, Color: core.NewColor(0x00, 0xFF, 0x00), Specular: 10, Reflective: 0.4},
		{Center: core.NewVector(0, -5001, 3), Radius: 5000, Color: core.NewColor(0xFF, 0xFF, 0x00), Specular: 1000, Reflective: 0.5},
	}
	lights := []Light{
		{Kind: Ambient, Intensity: 0.2},
		{Kind: Point, Intensity: 0.6, Vector: core.NewVector(2, 1, 3)},
		{Kind: Directional, Intensity: 0.2, Vector: core.NewVector(1, 4, 4)},
	}
	return New(viewport, spheres, lights)
}

func newSingleSphereScene(viewport Viewport) (*Scene, error) {
	spheres := []Sphere{
		{Center: core.NewVector(0, 0, 5), Radius: 1, Color: core.NewColor(0xFF, 0x00, 0x00)},
	}
	lights := []Light{
		{Kind: Ambient, Intensity: 1},
	}
	return New(viewport, spheres, lights)
}
