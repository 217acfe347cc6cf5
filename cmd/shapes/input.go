package main

import (
	"log"

	"glshapes/internal/config"
	"glshapes/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	orbitDegreesPerPixel  = 0.3
	orbitDegreesPerSecond = 90
	zoomStep              = 0.9
	zoomPerSecond         = 0.5
)

func setupInputHandlers(window *glfw.Window, v *Viewer, im *input.InputManager) {
	var lastX, lastY float64

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
		if action == glfw.Press {
			lastX, lastY = w.GetCursorPos()
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		dx, dy := xpos-lastX, ypos-lastY
		lastX, lastY = xpos, ypos
		if im.IsActive(input.ActionDrag) {
			v.camera().Orbit(float32(-dx)*orbitDegreesPerPixel, float32(dy)*orbitDegreesPerPixel)
		}
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		switch {
		case yoff > 0:
			v.camera().Zoom(zoomStep)
		case yoff < 0:
			v.camera().Zoom(1 / zoomStep)
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		v.components.Renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// Keep drawing while the OS blocks the main loop during a resize
	window.SetRefreshCallback(func(w *glfw.Window) {
		v.RefreshRender()
	})
}

func (v *Viewer) handleInputActions(dt float64) {
	im := v.input

	if im.JustPressed(input.ActionQuit) {
		v.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		log.Printf("wireframe: %v", config.ToggleWireframe())
	}
	if im.JustPressed(input.ActionFrameScene) {
		v.camera().Frame(v.components.Shapes.Bounds())
	}
	if im.JustPressed(input.ActionLineWider) {
		config.SetLineWidth(config.GetLineWidth() + 1)
	}
	if im.JustPressed(input.ActionLineThinner) {
		config.SetLineWidth(config.GetLineWidth() - 1)
	}

	step := float32(dt) * orbitDegreesPerSecond
	var dYaw, dPitch float32
	if im.IsActive(input.ActionOrbitLeft) {
		dYaw -= step
	}
	if im.IsActive(input.ActionOrbitRight) {
		dYaw += step
	}
	if im.IsActive(input.ActionOrbitUp) {
		dPitch += step
	}
	if im.IsActive(input.ActionOrbitDown) {
		dPitch -= step
	}
	if dYaw != 0 || dPitch != 0 {
		v.camera().Orbit(dYaw, dPitch)
	}

	zoom := float32(dt) * zoomPerSecond
	if im.IsActive(input.ActionZoomIn) {
		v.camera().Zoom(1 - zoom)
	}
	if im.IsActive(input.ActionZoomOut) {
		v.camera().Zoom(1 + zoom)
	}
}
