package config

import "sync"

// RenderSettings holds viewer settings that input handlers change at runtime
type RenderSettings struct {
	mu        sync.RWMutex
	wireframe bool
	lineWidth float32
	fpsLimit  int
}

var globalRenderSettings = &RenderSettings{
	lineWidth: 2,
	fpsLimit:  0, // unlimited, vsync decides
}

// GetWireframe reports whether triangle meshes are drawn as outlines
func GetWireframe() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

// SetWireframe enables or disables wireframe drawing
func SetWireframe(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = enabled
}

// ToggleWireframe flips wireframe drawing and returns the new state
func ToggleWireframe() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = !globalRenderSettings.wireframe
	return globalRenderSettings.wireframe
}

// GetLineWidth returns the width used for line shapes
func GetLineWidth() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.lineWidth
}

// SetLineWidth sets the line width, clamped to what core profiles guarantee
func SetLineWidth(width float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if width < 1 {
		width = 1
	}
	if width > 8 {
		width = 8
	}
	globalRenderSettings.lineWidth = width
}

// GetFPSLimit returns the frame cap, 0 meaning none
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap; negative values disable it
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	globalRenderSettings.fpsLimit = limit
}
