package app

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the platform surface the render loop runs against.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	Poll()
	Swap()
	FramebufferSize() (width, height int)
}

type Key int

const (
	KeyEscape = Key(glfw.KeyEscape)
	KeyEnter  = Key(glfw.KeyEnter)
	KeySpace  = Key(glfw.KeySpace)

	KeyQ = Key(glfw.KeyQ)
	KeyE = Key(glfw.KeyE)
	KeyW = Key(glfw.KeyW)
	KeyS = Key(glfw.KeyS)
	KeyA = Key(glfw.KeyA)
	KeyD = Key(glfw.KeyD)
)

type Action int

const (
	Release = Action(glfw.Release)
	Press   = Action(glfw.Press)
	Repeat  = Action(glfw.Repeat)
)

type MouseButton int

const (
	MouseLeft  = MouseButton(glfw.MouseButton1)
	MouseRight = MouseButton(glfw.MouseButton2)
)

// WindowManager owns the glfw window and its gl context.
type WindowManager struct {
	width, height int
	window        *glfw.Window

	events *Observer
	input  *InputManager
}

// NewWindowManager initializes glfw, creates the window, makes its
// context current on the calling thread and loads the gl function
// pointers through glfw's proc-address resolution. The calling
// goroutine must be locked to the main thread.
func NewWindowManager(cfg Config, events *Observer, input *InputManager) (*WindowManager, error) {
	m := &WindowManager{
		width:  cfg.Width,
		height: cfg.Height,
		events: events,
		input:  input,
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	m.window = window

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("load gl: %w", err)
	}

	// callbacks
	window.SetCloseCallback(m.onClose)
	window.SetKeyCallback(m.onKey)
	window.SetFramebufferSizeCallback(m.onResize)
	window.SetCursorPosCallback(m.onMouseMove)
	window.SetMouseButtonCallback(m.onMouseButton)
	window.SetScrollCallback(m.onMouseScroll)

	return m, nil
}

func (m *WindowManager) ShouldClose() bool {
	return m.window.ShouldClose()
}

func (m *WindowManager) SetShouldClose(v bool) {
	m.window.SetShouldClose(v)
}

// Poll drains the platform event queue. Callbacks fire here, on the
// main thread, before Poll returns.
func (m *WindowManager) Poll() {
	glfw.PollEvents()
}

func (m *WindowManager) Swap() {
	m.window.SwapBuffers()
}

func (m *WindowManager) FramebufferSize() (width, height int) {
	return m.window.GetFramebufferSize()
}

func (m *WindowManager) Size() (width, height int) {
	return m.width, m.height
}

func (m *WindowManager) Cleanup() {
	glfw.Terminate()
}

func (m *WindowManager) onClose(w *glfw.Window) {
	m.events.Publish(MessageClose{})
}

func (m *WindowManager) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	m.input.KeyEvent(Key(key), Action(action))
}

func (m *WindowManager) onResize(w *glfw.Window, width, height int) {
	m.width, m.height = width, height
	m.events.Publish(MessageResize{Width: width, Height: height})
}

func (m *WindowManager) onMouseMove(w *glfw.Window, xpos, ypos float64) {
	m.events.Publish(MessageMouseMove{X: xpos, Y: ypos})
}

func (m *WindowManager) onMouseButton(w *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	m.events.Publish(MessageMouseButton{Button: MouseButton(b), Action: Action(action)})
}

func (m *WindowManager) onMouseScroll(w *glfw.Window, xoff, yoff float64) {
	m.events.Publish(MessageScroll{X: xoff, Y: yoff})
}
