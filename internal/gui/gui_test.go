package gui

import (
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/event"
)

type fakeSurface struct {
	now       float64
	focused   bool
	cursor    [2]float64
	buttons   map[event.MouseButton]bool
	clipboard string
}

func (s *fakeSurface) DisplaySize() [2]float32     { return [2]float32{800, 600} }
func (s *fakeSurface) FramebufferSize() [2]float32 { return [2]float32{1600, 1200} }
func (s *fakeSurface) CursorPos() (float64, float64) {
	return s.cursor[0], s.cursor[1]
}
func (s *fakeSurface) Focused() bool { return s.focused }
func (s *fakeSurface) MouseButtonDown(b event.MouseButton) bool {
	return s.buttons[b]
}
func (s *fakeSurface) Time() float64 {
	s.now += 1.0 / 60
	return s.now
}
func (s *fakeSurface) ClipboardText() (string, error) { return s.clipboard, nil }
func (s *fakeSurface) SetClipboardText(text string)   { s.clipboard = text }

type fakeRenderer struct {
	fontW, fontH int
	renders      int
	lists        int
	displaySize  [2]float32
	fbSize       [2]float32
	disposed     int
}

func (r *fakeRenderer) CreateFontTexture(image *imgui.Alpha8Image) imgui.TextureID {
	r.fontW, r.fontH = image.Width, image.Height
	return imgui.TextureID(42)
}

func (r *fakeRenderer) Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	r.renders++
	r.displaySize = displaySize
	r.fbSize = framebufferSize
	r.lists = len(drawData.CommandLists())
}

func (r *fakeRenderer) Dispose() {
	r.disposed++
}

func newOverlay(t *testing.T) (*Overlay, *fakeSurface, *fakeRenderer, *event.Dispatcher) {
	t.Helper()

	s := &fakeSurface{focused: true, buttons: map[event.MouseButton]bool{}}
	r := &fakeRenderer{}
	d := event.NewDispatcher()

	o := New(s, d, r, zaptest.NewLogger(t))
	t.Cleanup(o.Dispose)

	return o, s, r, d
}

func TestOverlayUploadsFontAtlas(t *testing.T) {
	_, _, r, _ := newOverlay(t)

	assert.Positive(t, r.fontW)
	assert.Positive(t, r.fontH)
}

func TestOverlayFrame(t *testing.T) {
	o, _, r, _ := newOverlay(t)

	for i := 0; i < 3; i++ {
		o.NewFrame()
		o.Build()
		o.Render()
		o.Draw()
	}

	assert.Equal(t, 3, r.renders)
	assert.Positive(t, r.lists, "the demo window produces draw lists")
	assert.Equal(t, [2]float32{800, 600}, r.displaySize)
	assert.Equal(t, [2]float32{1600, 1200}, r.fbSize)
}

func TestOverlayDrawWithoutRender(t *testing.T) {
	o, _, r, _ := newOverlay(t)

	o.Draw()
	assert.Zero(t, r.renders)

	o.NewFrame()
	o.Build()
	o.Draw()
	assert.Zero(t, r.renders, "an unfinished frame is not submitted")
	o.Render()
}

func TestOverlayInput(t *testing.T) {
	o, s, _, d := newOverlay(t)

	s.cursor = [2]float64{120, 80}
	d.EmitMouseButton(event.MouseButtonEvent{Button: event.MouseButtonLeft, Action: event.Press})
	d.EmitMouseButton(event.MouseButtonEvent{Button: event.MouseButton(7), Action: event.Press})
	d.EmitKey(event.KeyEvent{Key: event.KeyLeftControl, Action: event.Press, Mods: event.ModControl})
	d.EmitKey(event.KeyEvent{Key: event.KeyUnknown, Action: event.Press})
	d.EmitChar(event.CharEvent{Char: 'q'})
	d.EmitScroll(event.ScrollEvent{YOff: -1})

	// A click released before the next poll is still seen for one frame.
	assert.True(t, o.mouseJustPressed[event.MouseButtonLeft])

	o.NewFrame()
	assert.False(t, o.mouseJustPressed[event.MouseButtonLeft])
	o.Build()
	o.Render()

	d.EmitKey(event.KeyEvent{Key: event.KeyLeftControl, Action: event.Release})
	s.focused = false

	assert.NotPanics(t, func() {
		o.NewFrame()
		o.Build()
		o.Render()
		o.Draw()
	})
}

func TestOverlayClipboard(t *testing.T) {
	_, s, _, _ := newOverlay(t)
	s.clipboard = "copied"

	c := clipboard{surface: s}
	text, err := c.Text()
	require.NoError(t, err)
	assert.Equal(t, "copied", text)

	c.SetText("pasted")
	assert.Equal(t, "pasted", s.clipboard)
}

func TestOverlayDisposeOnce(t *testing.T) {
	s := &fakeSurface{buttons: map[event.MouseButton]bool{}}
	r := &fakeRenderer{}

	o := New(s, event.NewDispatcher(), r, zaptest.NewLogger(t))
	o.Dispose()
	o.Dispose()

	assert.Equal(t, 1, r.disposed)
}
