package renderer

import (
	"fmt"

	"glshapes/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera

	ClearColor mgl32.Vec4
	LightDir   mgl32.Vec3
}

// NewRenderer configures GL state and initializes the renderables in order.
// If one fails, the ones already initialized are disposed.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		camera:     camera,
		ClearColor: mgl32.Vec4{0.12, 0.13, 0.16, 1.0},
		LightDir:   mgl32.Vec3{-0.4, -1.0, -0.6}.Normalize(),
	}
	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d (%T): %w", i, rb, err)
		}
		r.renderables = append(r.renderables, rb)
	}
	return r, nil
}

// Context builds the per-frame render context from the camera
func (r *Renderer) Context(dt float64) RenderContext {
	return RenderContext{
		Camera:   r.camera,
		DT:       dt,
		View:     r.camera.GetViewMatrix(),
		Proj:     r.camera.GetProjectionMatrix(),
		Eye:      r.camera.Position(),
		LightDir: r.LightDir,
	}
}

// Render clears the frame and renders every feature
func (r *Renderer) Render(dt float64) {
	c := r.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := r.Context(dt)
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the GL viewport and the camera aspect ratio
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
}
