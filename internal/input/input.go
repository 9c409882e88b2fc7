package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"sphereflake/internal/session"
)

// Action represents a logical viewer action, not a physical key.
// Non-negative values are session commands.
type Action int

// Actions handled by the host rather than the session
const (
	ActionQuit Action = -1 - iota
	ActionScreenshot
)

// CommandAction wraps a session command.
func CommandAction(c session.Command) Action {
	return Action(c)
}

// Command returns the session command of a, if it is one.
func (a Action) Command() (session.Command, bool) {
	if a < 0 || session.Command(a) >= session.CommandCount {
		return 0, false
	}
	return session.Command(a), true
}

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionScreenshot:
		return "screenshot"
	}
	return session.Command(a).String()
}

// Binding is a physical key with or without shift held.
type Binding struct {
	Key   glfw.Key
	Shift bool
}

// InputManager maps physical keys to logical actions and queues the actions
// triggered since the last Drain.
type InputManager struct {
	mu sync.Mutex

	bindings map[Binding]Action
	pending  []Action
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{bindings: make(map[Binding]Action)}

	im.BindKey(glfw.Key1, false, CommandAction(session.StencilGold))
	im.BindKey(glfw.Key2, false, CommandAction(session.StencilPierrot))
	im.BindKey(glfw.Key3, false, CommandAction(session.StencilVitro))

	im.BindKey(glfw.KeyA, false, CommandAction(session.OrbitLeft))
	im.BindKey(glfw.KeyD, false, CommandAction(session.OrbitRight))
	im.BindKey(glfw.KeyW, false, CommandAction(session.OrbitUp))
	im.BindKey(glfw.KeyS, false, CommandAction(session.OrbitDown))

	im.BindKey(glfw.KeyA, true, CommandAction(session.YawLeft))
	im.BindKey(glfw.KeyD, true, CommandAction(session.YawRight))
	im.BindKey(glfw.KeyW, true, CommandAction(session.PitchUp))
	im.BindKey(glfw.KeyS, true, CommandAction(session.PitchDown))

	// [ and ] move, { and } (shifted) change the field of view
	im.BindKey(glfw.KeyLeftBracket, false, CommandAction(session.MoveForward))
	im.BindKey(glfw.KeyRightBracket, false, CommandAction(session.MoveBackward))
	im.BindKey(glfw.KeyLeftBracket, true, CommandAction(session.NarrowFOV))
	im.BindKey(glfw.KeyRightBracket, true, CommandAction(session.WidenFOV))

	im.BindKey(glfw.KeySpace, false, CommandAction(session.Reset))
	im.BindKey(glfw.KeyEscape, false, ActionQuit)
	im.BindKey(glfw.KeyP, false, ActionScreenshot)

	return im
}

// BindKey binds a physical key, shifted or not, to a logical action
func (im *InputManager) BindKey(key glfw.Key, shift bool, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.bindings[Binding{Key: key, Shift: shift}] = action
}

// UnbindKey removes both bindings of a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.bindings, Binding{Key: key})
	delete(im.bindings, Binding{Key: key, Shift: true})
}

// Resolve returns the action bound to key under mods
func (im *InputManager) Resolve(key glfw.Key, mods glfw.ModifierKey) (Action, bool) {
	im.mu.Lock()
	defer im.mu.Unlock()

	a, ok := im.bindings[Binding{Key: key, Shift: mods&glfw.ModShift != 0}]
	return a, ok
}

// HandleKeyEvent queues the bound action on press and on key repeat
// This can be called from a custom key callback
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	a, ok := im.Resolve(key, mods)
	if !ok {
		return
	}

	im.mu.Lock()
	im.pending = append(im.pending, a)
	im.mu.Unlock()
}

// SetKeyCallback sets up the GLFW key callback for this input manager
// This should be called once during initialization
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action, mods)
	})
}

// Drain returns the queued actions in arrival order and clears the queue
func (im *InputManager) Drain() []Action {
	im.mu.Lock()
	defer im.mu.Unlock()

	out := im.pending
	im.pending = nil
	return out
}
