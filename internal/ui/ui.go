package ui

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/event"
)

type WindowConfig struct {
	Title         string
	Width, Height int
	GLMajor       int
	GLMinor       int
	CoreProfile   bool
	SwapInterval  int
}

// Host owns the GLFW library, one window and its GL context. Every GLFW
// callback is installed once and forwarded to Events.
type Host struct {
	win    *glfw.Window
	events *event.Dispatcher
	log    *zap.Logger
	closed bool
}

// Open initializes GLFW and creates the window with its context current on
// the calling thread. GLFW is terminated again before any error returns.
func Open(cfg WindowConfig, log *zap.Logger) (*Host, error) {
	const op = "ui.Open"

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%s glfw.Init: %w", op, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%s glfw.CreateWindow: %w", op, err)
	}

	win.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	h := &Host{
		win:    win,
		events: event.NewDispatcher(),
		log:    log,
	}
	h.installCallbacks()

	log.Info("Window created",
		zap.String("title", cfg.Title), zap.Int("width", cfg.Width), zap.Int("height", cfg.Height),
		zap.Int("glMajor", cfg.GLMajor), zap.Int("glMinor", cfg.GLMinor))

	return h, nil
}

func (h *Host) installCallbacks() {
	h.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.events.EmitResize(event.Resize{Width: width, Height: height})
	})
	h.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		h.events.EmitKey(event.KeyEvent{
			Key:      event.Key(key),
			Scancode: scancode,
			Action:   event.Action(action),
			Mods:     event.ModifierKey(mods),
		})
	})
	h.win.SetCharCallback(func(_ *glfw.Window, char rune) {
		h.events.EmitChar(event.CharEvent{Char: char})
	})
	h.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		h.events.EmitMouseButton(event.MouseButtonEvent{
			Button: event.MouseButton(button),
			Action: event.Action(action),
			Mods:   event.ModifierKey(mods),
		})
	})
	h.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.events.EmitCursor(event.CursorEvent{X: x, Y: y})
	})
	h.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		h.events.EmitScroll(event.ScrollEvent{XOff: xoff, YOff: yoff})
	})
}

func (h *Host) Events() *event.Dispatcher {
	return h.events
}

func (h *Host) ShouldClose() bool {
	return h.win.ShouldClose()
}

func (h *Host) SetShouldClose(v bool) {
	h.win.SetShouldClose(v)
}

func (h *Host) PollEvents() {
	glfw.PollEvents()
}

func (h *Host) SwapBuffers() {
	h.win.SwapBuffers()
}

// ProcAddress resolves GL entry points for the current context.
func (h *Host) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (h *Host) DisplaySize() [2]float32 {
	w, hh := h.win.GetSize()
	return [2]float32{float32(w), float32(hh)}
}

func (h *Host) FramebufferSize() [2]float32 {
	w, hh := h.win.GetFramebufferSize()
	return [2]float32{float32(w), float32(hh)}
}

func (h *Host) CursorPos() (float64, float64) {
	return h.win.GetCursorPos()
}

func (h *Host) Focused() bool {
	return h.win.GetAttrib(glfw.Focused) != 0
}

func (h *Host) MouseButtonDown(b event.MouseButton) bool {
	return h.win.GetMouseButton(glfw.MouseButton(b)) == glfw.Press
}

func (h *Host) Time() float64 {
	return glfw.GetTime()
}

func (h *Host) ClipboardText() (string, error) {
	return h.win.GetClipboardString(), nil
}

func (h *Host) SetClipboardText(text string) {
	h.win.SetClipboardString(text)
}

// Close destroys the window and releases GLFW. It is safe to call twice.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true

	h.win.Destroy()
	glfw.Terminate()
	h.log.Info("Window closed")
}
