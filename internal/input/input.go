// Package input maps keyboard and mouse events to viewer actions.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionOrbit
	ActionZoomIn
	ActionZoomOut
	ActionToggleOutline
	ActionTogglePause
	ActionNextFrame
	ActionPrevFrame
	ActionFirstFrame
	ActionToggleProfiling
	ActionCount // Sentinel value for array sizing
)

// InputManager tracks which actions are held and which changed since the
// last PostUpdate. Events arrive from GLFW callbacks; queries come from the
// render loop.
type InputManager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
	// repeats counts key repeat events since the last PostUpdate.
	repeats [ActionCount]int
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyQ, ActionQuit)
	im.BindKey(glfw.KeyEqual, ActionZoomIn)
	im.BindKey(glfw.KeyKPAdd, ActionZoomIn)
	im.BindKey(glfw.KeyMinus, ActionZoomOut)
	im.BindKey(glfw.KeyKPSubtract, ActionZoomOut)
	im.BindKey(glfw.KeyF, ActionToggleOutline)
	im.BindKey(glfw.KeySpace, ActionTogglePause)
	im.BindKey(glfw.KeyRight, ActionNextFrame)
	im.BindKey(glfw.KeyPeriod, ActionNextFrame)
	im.BindKey(glfw.KeyLeft, ActionPrevFrame)
	im.BindKey(glfw.KeyComma, ActionPrevFrame)
	im.BindKey(glfw.KeyHome, ActionFirstFrame)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionOrbit)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, act := range im.keyToActions[key] {
		if action == glfw.Repeat {
			im.repeats[act]++
		}
		im.update(act, action == glfw.Press || action == glfw.Repeat)
	}
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, act := range im.mouseButtonToActions[button] {
		im.update(act, action == glfw.Press)
	}
}

func (im *InputManager) update(act Action, isPressed bool) {
	if isPressed && !im.currentState[act] {
		im.justPressed[act] = true
	}
	if !isPressed && im.currentState[act] {
		im.justReleased[act] = true
	}
	im.currentState[act] = isPressed
}

// Attach installs key and mouse button callbacks on window.
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
}

// PostUpdate must be called at the end of each frame to reset edge flags.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i := Action(0); i < ActionCount; i++ {
		im.justPressed[i] = false
		im.justReleased[i] = false
		im.repeats[i] = 0
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}

// Presses returns how many times the action fired this frame: the initial
// press plus key repeats. Used for stepping through frames with a held key.
func (im *InputManager) Presses(action Action) int {
	if action < 0 || action >= ActionCount {
		return 0
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	n := im.repeats[action]
	if im.justPressed[action] {
		n++
	}
	return n
}
