package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"glshapes/pkg/shape"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// Shape kinds accepted in a scene file
const (
	KindAxes   = "axes"
	KindQuad   = "quad"
	KindCuboid = "cuboid"
	KindSphere = "sphere"
)

// Window describes the viewer window
type Window struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Title    string `toml:"title"`
	VSync    *bool  `toml:"vsync"`
	FPSLimit int    `toml:"fps_limit"`
}

// ShapeSpec is one shape entry. Rotate holds degrees about X, Y then Z.
type ShapeSpec struct {
	Kind      string      `toml:"kind"`
	Translate [3]float32  `toml:"translate"`
	Scale     *[3]float32 `toml:"scale"`
	Rotate    [3]float32  `toml:"rotate"`

	// quad
	Facing string `toml:"facing"`

	// sphere
	LatitudeBands     int `toml:"latitude_bands"`
	LongitudeSegments int `toml:"longitude_segments"`
}

// Scene is the viewer configuration file
type Scene struct {
	Window Window      `toml:"window"`
	Shapes []ShapeSpec `toml:"shape"`
}

// Default returns the built-in scene: one of each shape
func Default() Scene {
	return Scene{
		Window: defaultWindow(),
		Shapes: defaultShapes(),
	}
}

func defaultWindow() Window {
	vsync := true
	return Window{
		Width:  1024,
		Height: 768,
		Title:  "glshapes",
		VSync:  &vsync,
	}
}

func defaultShapes() []ShapeSpec {
	return []ShapeSpec{
		{Kind: KindAxes, Scale: &[3]float32{1.5, 1.5, 1.5}},
		{Kind: KindQuad, Facing: "+y", Translate: [3]float32{0, -1, 0}, Scale: &[3]float32{8, 8, 1}},
		{Kind: KindCuboid, Translate: [3]float32{-2, 0, 0}, Scale: &[3]float32{1, 1.5, 0.75}, Rotate: [3]float32{0, 30, 0}},
		{Kind: KindSphere, Translate: [3]float32{2, 0, 0}},
	}
}

// Load reads a scene file. An empty path yields the default scene.
func Load(path string) (Scene, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("could not open scene file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene, rejecting unknown keys and filling in defaults
// for anything left out.
func Parse(r io.Reader) (Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Scene{}, fmt.Errorf("could not decode scene at %d:%d: %w", row, col, err)
		}
		return Scene{}, fmt.Errorf("could not decode scene: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

func (s *Scene) applyDefaults() {
	def := defaultWindow()
	if s.Window.Width == 0 {
		s.Window.Width = def.Width
	}
	if s.Window.Height == 0 {
		s.Window.Height = def.Height
	}
	if s.Window.Title == "" {
		s.Window.Title = def.Title
	}
	if s.Window.VSync == nil {
		s.Window.VSync = def.VSync
	}
	if len(s.Shapes) == 0 {
		s.Shapes = defaultShapes()
	}
}

// Validate checks what the shape builders cannot: window size, shape kinds
// and quad facings. Geometry parameters are checked when shapes are built.
func (s Scene) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	if s.Window.FPSLimit < 0 {
		return fmt.Errorf("window fps_limit %d must not be negative", s.Window.FPSLimit)
	}
	for i, spec := range s.Shapes {
		if _, err := spec.generator(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

func (spec ShapeSpec) generator() (shape.Generator, error) {
	switch strings.ToLower(spec.Kind) {
	case KindAxes:
		return shape.Axes{}, nil
	case KindCuboid:
		return shape.Cuboid{}, nil
	case KindQuad:
		q := shape.Quad{}
		if spec.Facing != "" {
			f, err := shape.ParseFacing(spec.Facing)
			if err != nil {
				return nil, err
			}
			q.Facing = f
		}
		return q, nil
	case KindSphere:
		sp := shape.DefaultSphere()
		if spec.LatitudeBands != 0 {
			sp.LatitudeBands = spec.LatitudeBands
		}
		if spec.LongitudeSegments != 0 {
			sp.LongitudeSegments = spec.LongitudeSegments
		}
		return sp, nil
	case "":
		return nil, errors.New("missing kind")
	}
	return nil, fmt.Errorf("unknown kind %q", spec.Kind)
}

// Builder returns a configured builder for the entry
func (spec ShapeSpec) Builder() (*shape.Builder, error) {
	gen, err := spec.generator()
	if err != nil {
		return nil, err
	}
	b := shape.New(gen).Translate(spec.Translate[0], spec.Translate[1], spec.Translate[2])
	if spec.Scale != nil {
		b.Scale(spec.Scale[0], spec.Scale[1], spec.Scale[2])
	}
	for i, deg := range spec.Rotate {
		if deg == 0 {
			continue
		}
		axis := mgl32.Vec3{}
		axis[i] = 1
		b.Rotate(mgl32.DegToRad(deg), axis)
	}
	return b, nil
}

// Builders returns one builder per shape entry, in file order
func (s Scene) Builders() ([]*shape.Builder, error) {
	out := make([]*shape.Builder, 0, len(s.Shapes))
	for i, spec := range s.Shapes {
		b, err := spec.Builder()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}
