package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChordPressed(t *testing.T) {
	quit := Chord{Key: KeyQ, Mods: ModControl}

	tests := []struct {
		name string
		ev   KeyEvent
		want bool
	}{
		{"ctrl+q press", KeyEvent{Key: KeyQ, Action: Press, Mods: ModControl}, true},
		{"ctrl+shift+q press", KeyEvent{Key: KeyQ, Action: Press, Mods: ModControl | ModShift}, true},
		{"ctrl+q repeat", KeyEvent{Key: KeyQ, Action: Repeat, Mods: ModControl}, false},
		{"ctrl+q release", KeyEvent{Key: KeyQ, Action: Release, Mods: ModControl}, false},
		{"q without ctrl", KeyEvent{Key: KeyQ, Action: Press}, false},
		{"q with alt", KeyEvent{Key: KeyQ, Action: Press, Mods: ModAlt}, false},
		{"ctrl+w press", KeyEvent{Key: 87, Action: Press, Mods: ModControl}, false},
		{"ctrl alone", KeyEvent{Key: KeyLeftControl, Action: Press, Mods: ModControl}, false},
		{"unknown key", KeyEvent{Key: KeyUnknown, Action: Press, Mods: ModControl}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quit.Pressed(tt.ev))
		})
	}
}

func TestChordPressedAllCombinations(t *testing.T) {
	quit := Chord{Key: KeyQ, Mods: ModControl}
	keys := []Key{KeyA, KeyQ, KeyZ, KeyEscape, KeyLeftControl}
	actions := []Action{Release, Press, Repeat}

	for _, k := range keys {
		for _, a := range actions {
			for m := ModifierKey(0); m < ModSuper<<1; m++ {
				ev := KeyEvent{Key: k, Action: a, Mods: m}
				want := k == KeyQ && a == Press && m&ModControl != 0
				assert.Equal(t, want, quit.Pressed(ev), "%+v", ev)
			}
		}
	}
}

func TestChordString(t *testing.T) {
	assert.Equal(t, "Ctrl+Q", Chord{Key: KeyQ, Mods: ModControl}.String())
	assert.Equal(t, "Ctrl+Shift+Z", Chord{Key: KeyZ, Mods: ModControl | ModShift}.String())
	assert.Equal(t, "key(256)", Chord{Key: KeyEscape}.String())
}

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher()

	var got []string
	d.OnResize(func(e Resize) { got = append(got, "first") })
	d.OnResize(func(e Resize) { got = append(got, "second") })
	d.OnKey(func(e KeyEvent) { got = append(got, "key") })

	d.EmitResize(Resize{Width: 10, Height: 20})
	d.EmitKey(KeyEvent{Key: KeyQ})
	d.EmitScroll(ScrollEvent{YOff: 1})

	assert.Equal(t, []string{"first", "second", "key"}, got)
}

func TestDispatcherPayload(t *testing.T) {
	d := NewDispatcher()

	var (
		cur  CursorEvent
		char CharEvent
		btn  MouseButtonEvent
	)
	d.OnCursor(func(e CursorEvent) { cur = e })
	d.OnChar(func(e CharEvent) { char = e })
	d.OnMouseButton(func(e MouseButtonEvent) { btn = e })

	d.EmitCursor(CursorEvent{X: 1.5, Y: 2.5})
	d.EmitChar(CharEvent{Char: 'ж'})
	d.EmitMouseButton(MouseButtonEvent{Button: MouseButtonRight, Action: Press})

	assert.Equal(t, CursorEvent{X: 1.5, Y: 2.5}, cur)
	assert.Equal(t, 'ж', char.Char)
	assert.Equal(t, MouseButtonRight, btn.Button)
}
