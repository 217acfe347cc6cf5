package renderer

import (
	"glshapes/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera   *graphics.Camera
	DT       float64
	View     mgl32.Mat4
	Proj     mgl32.Mat4
	Eye      mgl32.Vec3
	LightDir mgl32.Vec3 // direction the light travels, normalized
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
