package shapes

import (
	"embed"
	"fmt"

	"glshapes/internal/graphics"
	renderer "glshapes/internal/graphics/renderer"
	"glshapes/pkg/shape"

	"github.com/go-gl/gl/v4.1-core/gl"
)

//go:embed shaders
var shaderFS embed.FS

const (
	checkerSize  = 512
	checkerCells = 16
)

// Shapes draws built shapes: triangle meshes lit and textured with a
// checkerboard, line meshes colored by axis. Added shapes are owned by the
// renderable and released in Dispose.
type Shapes struct {
	device  *graphics.Device
	lit     *graphics.Shader
	lines   *graphics.Shader
	texture *graphics.Texture
	shapes  []*shape.Shape

	Wireframe bool
	LineWidth float32
}

// NewShapes creates a shapes renderable drawing through device
func NewShapes(device *graphics.Device) *Shapes {
	return &Shapes{device: device, LineWidth: 1}
}

// Add takes ownership of the given shapes
func (s *Shapes) Add(shapes ...*shape.Shape) {
	s.shapes = append(s.shapes, shapes...)
}

// Bounds returns the union of all shape bounds
func (s *Shapes) Bounds() shape.Bounds {
	var b shape.Bounds
	for i, sh := range s.shapes {
		sb := sh.Bounds()
		if i == 0 {
			b = sb
			continue
		}
		for k := 0; k < 3; k++ {
			b.Min[k] = min(b.Min[k], sb.Min[k])
			b.Max[k] = max(b.Max[k], sb.Max[k])
		}
	}
	return b
}

// Init compiles the shaders and uploads the checker texture
func (s *Shapes) Init() error {
	var err error
	s.lit, err = graphics.LoadShader(shaderFS, "shaders/lit.vert", "shaders/lit.frag")
	if err != nil {
		return fmt.Errorf("lit shader: %w", err)
	}
	s.lines, err = graphics.LoadShader(shaderFS, "shaders/line.vert", "shaders/line.frag")
	if err != nil {
		s.lit.Delete()
		return fmt.Errorf("line shader: %w", err)
	}

	img, err := graphics.CheckerImage(checkerSize, checkerCells)
	if err != nil {
		s.disposeGL()
		return err
	}
	s.texture, err = graphics.NewTexture(img)
	if err != nil {
		s.disposeGL()
		return err
	}
	return nil
}

// Render draws every shape
func (s *Shapes) Render(ctx renderer.RenderContext) {
	if s.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	s.lit.Use()
	s.lit.SetMat4("proj", ctx.Proj)
	s.lit.SetMat4("view", ctx.View)
	s.lit.SetVec3("lightDir", ctx.LightDir)
	s.lit.SetVec3("eye", ctx.Eye)
	s.lit.SetInt("albedo", 0)
	s.texture.Bind(0)
	for _, sh := range s.shapes {
		if sh.Primitive() == shape.Triangles {
			s.device.Draw(sh)
		}
	}

	s.lines.Use()
	s.lines.SetMat4("proj", ctx.Proj)
	s.lines.SetMat4("view", ctx.View)
	gl.LineWidth(s.LineWidth)
	for _, sh := range s.shapes {
		if sh.Primitive() == shape.Lines {
			s.device.Draw(sh)
		}
	}
}

// Dispose releases all shapes and GL resources
func (s *Shapes) Dispose() {
	for _, sh := range s.shapes {
		sh.Release()
	}
	s.shapes = nil
	s.disposeGL()
}

func (s *Shapes) disposeGL() {
	if s.texture != nil {
		s.texture.Delete()
		s.texture = nil
	}
	if s.lines != nil {
		s.lines.Delete()
		s.lines = nil
	}
	if s.lit != nil {
		s.lit.Delete()
		s.lit = nil
	}
}
