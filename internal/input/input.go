package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical viewer action, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionToggleWireframe
	ActionFrameScene
	ActionLineWider
	ActionLineThinner
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
	ActionDrag
	ActionCount // sentinel for array sizing
)

// InputManager maps keys and mouse buttons to actions and tracks their
// state with per-frame edge detection
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyW, ActionToggleWireframe)
	im.BindKey(glfw.KeyF, ActionFrameScene)
	im.BindKey(glfw.KeyEqual, ActionLineWider)
	im.BindKey(glfw.KeyKPAdd, ActionLineWider)
	im.BindKey(glfw.KeyMinus, ActionLineThinner)
	im.BindKey(glfw.KeyKPSubtract, ActionLineThinner)
	im.BindKey(glfw.KeyLeft, ActionOrbitLeft)
	im.BindKey(glfw.KeyRight, ActionOrbitRight)
	im.BindKey(glfw.KeyUp, ActionOrbitUp)
	im.BindKey(glfw.KeyDown, ActionOrbitDown)
	im.BindKey(glfw.KeyPageUp, ActionZoomIn)
	im.BindKey(glfw.KeyPageDown, ActionZoomOut)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionDrag)

	return im
}

// BindKey binds a key to an action. Several keys may share an action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

// BindMouseButton binds a mouse button to an action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent updates state from a GLFW key event
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions := im.keyToActions[key]
	im.mu.RUnlock()

	im.apply(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent updates state from a GLFW mouse button event
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions := im.mouseButtonToActions[button]
	im.mu.RUnlock()

	im.apply(actions, action == glfw.Press)
}

func (im *InputManager) apply(actions []Action, pressed bool) {
	if len(actions) == 0 {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, act := range actions {
		// edges are latched until PostUpdate
		if pressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !pressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = pressed
	}
}

// PostUpdate clears edge flags. Call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
	clear(im.justReleased[:])
}

// IsActive reports whether the action is held
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed reports whether the action went down this frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased reports whether the action went up this frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}
