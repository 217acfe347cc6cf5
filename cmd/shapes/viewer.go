package main

import (
	"log"
	"time"

	"glshapes/internal/config"
	"glshapes/internal/graphics"
	"glshapes/internal/input"
	"glshapes/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Viewer runs the frame loop
type Viewer struct {
	window     *glfw.Window
	components *ViewerComponents
	input      *input.InputManager
	limiter    *FrameLimiter

	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewViewer creates a viewer over initialized components
func NewViewer(window *glfw.Window, c *ViewerComponents, im *input.InputManager) *Viewer {
	now := time.Now()
	return &Viewer{
		window:           window,
		components:       c,
		input:            im,
		limiter:          NewFrameLimiter(),
		lastFPSCheckTime: now,
		lastTime:         now,
	}
}

func (v *Viewer) camera() *graphics.Camera {
	return v.components.Renderer.GetCamera()
}

// Run loops until the window closes or exit receives
func (v *Viewer) Run(exit <-chan struct{}) {
	for !v.window.ShouldClose() {
		select {
		case <-exit:
			return
		default:
		}
		v.tick()
	}
}

func (v *Viewer) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(v.lastTime).Seconds()
	v.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	v.handleInputActions(dt)
	v.renderFrame(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); v.window.SwapBuffers() }()
	v.input.PostUpdate()

	v.reportSlowFrame(now)
	v.limiter.Wait(config.GetFPSLimit())
}

func (v *Viewer) renderFrame(dt float64) {
	defer profiling.Track("renderer.Render")()

	v.components.Shapes.Wireframe = config.GetWireframe()
	v.components.Shapes.LineWidth = config.GetLineWidth()
	v.components.Renderer.Render(dt)
	v.frames++

	if time.Since(v.lastFPSCheckTime) >= time.Second {
		log.Printf("FPS: %d", v.frames)
		v.frames = 0
		v.lastFPSCheckTime = time.Now()
	}
}

// RefreshRender draws a frame without advancing time
func (v *Viewer) RefreshRender() {
	v.components.Renderer.Render(0)
	v.window.SwapBuffers()
}

func (v *Viewer) reportSlowFrame(frameStart time.Time) {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		return
	}
	// swap time includes the vsync wait
	processing := time.Since(frameStart) - profiling.SumWithPrefix("glfw.SwapBuffers")
	target := time.Second / time.Duration(limit)
	if processing > target {
		log.Printf("Frame processing too slow: %s (target: %s) [%s]",
			profiling.FormatMs(processing), profiling.FormatMs(target), profiling.TopN(3))
	}
}
