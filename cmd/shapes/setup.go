package main

import (
	"fmt"

	"glshapes/internal/config"
	"glshapes/internal/graphics"
	"glshapes/internal/graphics/renderables/shapes"
	renderer "glshapes/internal/graphics/renderer"
	"glshapes/pkg/shape"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(cfg config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}

	if cfg.VSync != nil && *cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	config.SetFPSLimit(cfg.FPSLimit)

	return window, nil
}

// ViewerComponents holds everything the frame loop drives
type ViewerComponents struct {
	Renderer *renderer.Renderer
	Shapes   *shapes.Shapes
}

// Dispose releases the renderer and every built shape
func (c *ViewerComponents) Dispose() {
	c.Renderer.Dispose()
}

func setupViewer(window *glfw.Window, scene config.Scene) (*ViewerComponents, error) {
	builders, err := scene.Builders()
	if err != nil {
		return nil, err
	}

	device := graphics.NewDevice()
	shapesRenderer := shapes.NewShapes(device)
	for i, b := range builders {
		s, err := b.Build(device)
		if err != nil {
			shapesRenderer.Dispose()
			return nil, fmt.Errorf("shape %d (%s): %w", i, scene.Shapes[i].Kind, err)
		}
		shapesRenderer.Add(s)
	}

	fbW, fbH := window.GetFramebufferSize()
	camera := graphics.NewCamera(fbW, fbH)
	camera.Frame(shapesRenderer.Bounds())

	r, err := renderer.NewRenderer(camera, shapesRenderer)
	if err != nil {
		shapesRenderer.Dispose()
		return nil, err
	}
	r.UpdateViewport(fbW, fbH)

	return &ViewerComponents{
		Renderer: r,
		Shapes:   shapesRenderer,
	}, nil
}

func meshStats(scene config.Scene) ([]string, error) {
	builders, err := scene.Builders()
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(builders))
	for i, b := range builders {
		m, err := b.Mesh()
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, scene.Shapes[i].Kind, err)
		}
		bounds := m.Bounds()
		lines = append(lines, fmt.Sprintf("%-7s %-9s vertices=%-5d indices=%-6d %s=%-5d min=%v max=%v",
			scene.Shapes[i].Kind, m.Primitive, len(m.Vertices), len(m.Indices),
			primitiveNoun(m.Primitive), m.PrimitiveCount(), bounds.Min, bounds.Max))
	}
	return lines, nil
}

func primitiveNoun(p shape.Primitive) string {
	if p == shape.Lines {
		return "lines"
	}
	return "tris"
}
