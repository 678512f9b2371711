package loaders

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/gmittal/spheretrace/pkg/core"
	"github.com/gmittal/spheretrace/pkg/scene"
)

// Defaults applied when a scene file leaves a field out.
const (
	DefaultWidth        = 768
	DefaultHeight       = 768
	DefaultDepth        = 4
	DefaultViewportSize = 1
)

// SceneFile is a scene loaded from JSON together with the render settings
// stored alongside it.
type SceneFile struct {
	Width    int
	Height   int
	MaxDepth int
	Scene    *scene.Scene
}

// LoadScene reads and parses a JSON scene file.
func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	sf, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return sf, nil
}

// ParseScene builds a scene from JSON. Every malformed field is reported in
// one core.ValidationErrors.
func ParseScene(data []byte) (*SceneFile, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: scene is not valid JSON", core.ErrInvalidConfiguration)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: scene must be a JSON object", core.ErrInvalidConfiguration)
	}

	var errs core.ValidationErrors
	sf := &SceneFile{
		Width:    intOr(doc.Get("width"), DefaultWidth),
		Height:   intOr(doc.Get("height"), DefaultHeight),
		MaxDepth: intOr(doc.Get("depth"), DefaultDepth),
	}
	if sf.MaxDepth < 0 {
		errs.Add(fmt.Errorf("%w: depth %d must not be negative", core.ErrInvalidConfiguration, sf.MaxDepth))
	}

	size := float32(DefaultViewportSize)
	if v := doc.Get("viewport.size"); v.Exists() {
		size = float32(v.Float())
	}
	viewport, err := scene.NewViewport(size, sf.Width, sf.Height)
	errs.Add(err)

	var spheres []scene.Sphere
	for i, value := range doc.Get("spheres").Array() {
		s, err := parseSphere(value)
		if err != nil {
			errs.Add(fmt.Errorf("sphere %d: %w", i, err))
			continue
		}
		spheres = append(spheres, s)
	}

	var lights []scene.Light
	for i, value := range doc.Get("lights").Array() {
		l, err := parseLight(value)
		if err != nil {
			errs.Add(fmt.Errorf("light %d: %w", i, err))
			continue
		}
		lights = append(lights, l)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	sf.Scene, err = scene.New(viewport, spheres, lights)
	if err != nil {
		return nil, err
	}
	return sf, nil
}

func parseSphere(v gjson.Result) (scene.Sphere, error) {
	center, err := parseVector(v.Get("center"), "center")
	if err != nil {
		return scene.Sphere{}, err
	}
	radius := v.Get("radius")
	if !radius.Exists() {
		return scene.Sphere{}, fmt.Errorf("%w: radius is required", core.ErrDegenerateGeometry)
	}
	color, err := parseColor(v.Get("color"))
	if err != nil {
		return scene.Sphere{}, err
	}
	return scene.NewSphere(center, float32(radius.Float()), color,
		float32(v.Get("specular").Float()), float32(v.Get("reflective").Float()))
}

func parseLight(v gjson.Result) (scene.Light, error) {
	kind, err := scene.ParseLightKind(v.Get("type").String())
	if err != nil {
		return scene.Light{}, err
	}
	intensity := float32(v.Get("intensity").Float())

	switch kind {
	case scene.Directional:
		dir, err := parseVector(v.Get("direction"), "direction")
		if err != nil {
			return scene.Light{}, err
		}
		return scene.NewDirectionalLight(intensity, dir)
	case scene.Point:
		pos, err := parseVector(v.Get("position"), "position")
		if err != nil {
			return scene.Light{}, err
		}
		return scene.NewPointLight(intensity, pos)
	default:
		return scene.NewAmbientLight(intensity)
	}
}

func parseVector(v gjson.Result, field string) (core.Vector, error) {
	parts := v.Array()
	if !v.IsArray() || len(parts) != 3 {
		return core.Vector{}, fmt.Errorf("%w: %s must be an array of 3 numbers", core.ErrInvalidConfiguration, field)
	}
	for _, p := range parts {
		if p.Type != gjson.Number {
			return core.Vector{}, fmt.Errorf("%w: %s must be an array of 3 numbers", core.ErrInvalidConfiguration, field)
		}
	}
	return core.NewVector(float32(parts[0].Float()), float32(parts[1].Float()), float32(parts[2].Float())), nil
}

// parseColor accepts "#RRGGBB" or [r, g, b] with channels in 0..255.
func parseColor(v gjson.Result) (core.Color, error) {
	switch {
	case !v.Exists():
		return core.Color{}, fmt.Errorf("%w: color is required", core.ErrInvalidConfiguration)
	case v.Type == gjson.String:
		return core.ParseHexColor(v.String())
	case v.IsArray():
		parts := v.Array()
		if len(parts) != 3 {
			return core.Color{}, fmt.Errorf("%w: color must have 3 channels", core.ErrInvalidConfiguration)
		}
		var ch [3]uint8
		for i, p := range parts {
			n := p.Int()
			if p.Type != gjson.Number || n < 0 || n > 255 {
				return core.Color{}, fmt.Errorf("%w: color channel %s out of range", core.ErrInvalidConfiguration, p.Raw)
			}
			ch[i] = uint8(n)
		}
		return core.NewColor(ch[0], ch[1], ch[2]), nil
	default:
		return core.Color{}, fmt.Errorf("%w: color must be \"#RRGGBB\" or [r, g, b]", core.ErrInvalidConfiguration)
	}
}

func intOr(v gjson.Result, def int) int {
	if !v.Exists() {
		return def
	}
	return int(v.Int())
}
