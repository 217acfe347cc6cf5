package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	assert.True(t, im.JustPressed(ActionToggleWireframe))
	assert.True(t, im.IsActive(ActionToggleWireframe))

	im.PostUpdate()
	assert.False(t, im.JustPressed(ActionToggleWireframe))
	assert.True(t, im.IsActive(ActionToggleWireframe))

	// repeats keep the key held without a new edge
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	assert.False(t, im.JustPressed(ActionToggleWireframe))

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	assert.True(t, im.JustReleased(ActionToggleWireframe))
	assert.False(t, im.IsActive(ActionToggleWireframe))
}

func TestSharedAction(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyKPAdd, glfw.Press)
	assert.True(t, im.JustPressed(ActionLineWider))
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyKPAdd, glfw.Release)
	im.PostUpdate()

	im.HandleKeyEvent(glfw.KeyEqual, glfw.Press)
	assert.True(t, im.JustPressed(ActionLineWider))
}

func TestMouseButton(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	assert.True(t, im.IsActive(ActionDrag))
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	assert.True(t, im.IsActive(ActionDrag))
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	assert.False(t, im.IsActive(ActionDrag))
}

func TestUnbindAndBounds(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyEscape)
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	assert.False(t, im.IsActive(ActionQuit))

	im.BindKey(glfw.KeyQ, ActionCount)
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	assert.False(t, im.IsActive(Action(-1)))
	assert.False(t, im.JustPressed(ActionCount))
}
