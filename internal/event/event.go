package event

import "strconv"

// Key, Action, ModifierKey and MouseButton share their numeric values with
// GLFW so a window host converts them without a lookup table.
type (
	Key         int
	Action      int
	ModifierKey int
	MouseButton int
)

const (
	Release Action = iota
	Press
	Repeat
)

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

const (
	KeyUnknown Key = -1

	KeySpace Key = 32
	KeyA     Key = 65
	KeyC     Key = 67
	KeyQ     Key = 81
	KeyV     Key = 86
	KeyX     Key = 88
	KeyY     Key = 89
	KeyZ     Key = 90

	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyInsert    Key = 260
	KeyDelete    Key = 261
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyPageUp    Key = 266
	KeyPageDown  Key = 267
	KeyHome      Key = 268
	KeyEnd       Key = 269

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
)

type Resize struct {
	Width, Height int
}

type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

type MouseButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

type CursorEvent struct {
	X, Y float64
}

type ScrollEvent struct {
	XOff, YOff float64
}

type CharEvent struct {
	Char rune
}

// Chord is a key that must be pressed while Mods are held. Other modifiers
// held at the same time do not prevent a match.
type Chord struct {
	Key  Key
	Mods ModifierKey
}

func (c Chord) Pressed(e KeyEvent) bool {
	if e.Action != Press || e.Key != c.Key {
		return false
	}

	return e.Mods&c.Mods == c.Mods
}

func (c Chord) String() string {
	s := ""
	for _, m := range []struct {
		mod  ModifierKey
		name string
	}{
		{ModControl, "Ctrl+"},
		{ModAlt, "Alt+"},
		{ModShift, "Shift+"},
		{ModSuper, "Super+"},
	} {
		if c.Mods&m.mod != 0 {
			s += m.name
		}
	}

	if c.Key >= KeySpace && c.Key <= KeyZ {
		return s + string(rune(c.Key))
	}

	return s + "key(" + strconv.Itoa(int(c.Key)) + ")"
}
