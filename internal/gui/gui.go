// Package gui hosts the immediate-mode overlay drawn on top of the scene.
//
// imgui keeps a single process-wide context; Overlay is the only owner of
// it and the rest of the program talks to the overlay through NewFrame,
// Build, Render, Draw and Dispose.
package gui

import (
	"math"

	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/event"
)

// Surface is what the overlay reads from the window every frame.
type Surface interface {
	DisplaySize() [2]float32
	FramebufferSize() [2]float32
	CursorPos() (x, y float64)
	Focused() bool
	MouseButtonDown(b event.MouseButton) bool
	Time() float64
	ClipboardText() (string, error)
	SetClipboardText(text string)
}

// Renderer turns finalized draw data into GPU work.
type Renderer interface {
	CreateFontTexture(image *imgui.Alpha8Image) imgui.TextureID
	Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData)
	Dispose()
}

type Overlay struct {
	log *zap.Logger

	ctx      *imgui.Context
	io       imgui.IO
	surface  Surface
	renderer Renderer

	time             float64
	mouseJustPressed [3]bool
	rendered         bool
	disposed         bool
}

func New(surface Surface, events *event.Dispatcher, renderer Renderer, log *zap.Logger) *Overlay {
	ctx := imgui.CreateContext(nil)
	imgui.StyleColorsDark()

	o := &Overlay{
		log:      log,
		ctx:      ctx,
		io:       imgui.CurrentIO(),
		surface:  surface,
		renderer: renderer,
	}

	o.io.SetIniFilename("")
	o.io.SetClipboard(clipboard{surface: surface})
	o.setKeyMapping()

	image := o.io.Fonts().TextureDataAlpha8()
	o.io.Fonts().SetTextureID(renderer.CreateFontTexture(image))
	log.Debug("Font atlas uploaded", zap.Int("width", image.Width), zap.Int("height", image.Height))

	events.OnKey(o.keyChange)
	events.OnChar(o.charChange)
	events.OnMouseButton(o.mouseButtonChange)
	events.OnScroll(o.mouseScrollChange)

	return o
}

func (o *Overlay) setKeyMapping() {
	for imguiKey, key := range map[int]event.Key{
		imgui.KeyTab:        event.KeyTab,
		imgui.KeyLeftArrow:  event.KeyLeft,
		imgui.KeyRightArrow: event.KeyRight,
		imgui.KeyUpArrow:    event.KeyUp,
		imgui.KeyDownArrow:  event.KeyDown,
		imgui.KeyPageUp:     event.KeyPageUp,
		imgui.KeyPageDown:   event.KeyPageDown,
		imgui.KeyHome:       event.KeyHome,
		imgui.KeyEnd:        event.KeyEnd,
		imgui.KeyInsert:     event.KeyInsert,
		imgui.KeyDelete:     event.KeyDelete,
		imgui.KeyBackspace:  event.KeyBackspace,
		imgui.KeySpace:      event.KeySpace,
		imgui.KeyEnter:      event.KeyEnter,
		imgui.KeyEscape:     event.KeyEscape,
		imgui.KeyA:          event.KeyA,
		imgui.KeyC:          event.KeyC,
		imgui.KeyV:          event.KeyV,
		imgui.KeyX:          event.KeyX,
		imgui.KeyY:          event.KeyY,
		imgui.KeyZ:          event.KeyZ,
	} {
		o.io.KeyMap(imguiKey, int(key))
	}
}

// NewFrame feeds this frame's window state to imgui and opens a frame.
func (o *Overlay) NewFrame() {
	ds := o.surface.DisplaySize()
	o.io.SetDisplaySize(imgui.Vec2{X: ds[0], Y: ds[1]})

	now := o.surface.Time()
	if o.time > 0 && now > o.time {
		o.io.SetDeltaTime(float32(now - o.time))
	}
	o.time = now

	if o.surface.Focused() {
		x, y := o.surface.CursorPos()
		o.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		o.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	// A press and release inside one poll must still register as a click.
	for i := range o.mouseJustPressed {
		down := o.mouseJustPressed[i] || o.surface.MouseButtonDown(event.MouseButton(i))
		o.io.SetMouseButtonDown(i, down)
		o.mouseJustPressed[i] = false
	}

	o.rendered = false
	imgui.NewFrame()
}

func (o *Overlay) Build() {
	imgui.ShowDemoWindow(nil)
}

// Render finalizes the frame's command lists without touching the GPU.
func (o *Overlay) Render() {
	imgui.Render()
	o.rendered = true
}

// Draw submits the last finalized frame.
func (o *Overlay) Draw() {
	if !o.rendered {
		return
	}

	o.renderer.Render(o.surface.DisplaySize(), o.surface.FramebufferSize(), imgui.RenderedDrawData())
}

// WantsInput reports whether imgui claimed keyboard or mouse this frame.
func (o *Overlay) WantsInput() bool {
	return o.io.WantCaptureKeyboard() || o.io.WantCaptureMouse()
}

func (o *Overlay) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	o.renderer.Dispose()
	o.ctx.Destroy()
}

func (o *Overlay) keyChange(e event.KeyEvent) {
	if e.Key < 0 {
		return
	}

	switch e.Action {
	case event.Press:
		o.io.KeyPress(int(e.Key))
	case event.Release:
		o.io.KeyRelease(int(e.Key))
	}

	o.io.KeyCtrl(int(event.KeyLeftControl), int(event.KeyRightControl))
	o.io.KeyShift(int(event.KeyLeftShift), int(event.KeyRightShift))
	o.io.KeyAlt(int(event.KeyLeftAlt), int(event.KeyRightAlt))
	o.io.KeySuper(int(event.KeyLeftSuper), int(event.KeyRightSuper))
}

func (o *Overlay) charChange(e event.CharEvent) {
	o.io.AddInputCharacters(string(e.Char))
}

func (o *Overlay) mouseButtonChange(e event.MouseButtonEvent) {
	if e.Action == event.Press && int(e.Button) < len(o.mouseJustPressed) {
		o.mouseJustPressed[e.Button] = true
	}
}

func (o *Overlay) mouseScrollChange(e event.ScrollEvent) {
	o.io.AddMouseWheelDelta(float32(e.XOff), float32(e.YOff))
}

type clipboard struct {
	surface Surface
}

func (c clipboard) Text() (string, error) {
	return c.surface.ClipboardText()
}

func (c clipboard) SetText(text string) {
	c.surface.SetClipboardText(text)
}
