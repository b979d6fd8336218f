package app

import (
	"io"
	"os"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/event"
	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render"
)

// WindowConfig mirrors ui.WindowConfig so this package stays free of cgo.
type WindowConfig struct {
	Title         string
	Width, Height int
	GLMajor       int
	GLMinor       int
	CoreProfile   bool
	SwapInterval  int
}

type Config struct {
	Window WindowConfig

	VertexShader   string
	FragmentShader string
	ClearColor     render.Color
	Quit           event.Chord

	// Stdout receives the driver info lines and startup diagnostics.
	Stdout io.Writer
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:        "GLFW OpenGL Starter Example",
			Width:        800,
			Height:       600,
			GLMajor:      3,
			GLMinor:      3,
			CoreProfile:  true,
			SwapInterval: 1,
		},
		VertexShader:   "shaders/default.vert",
		FragmentShader: "shaders/default.frag",
		ClearColor:     render.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		Quit:           event.Chord{Key: event.KeyQ, Mods: event.ModControl},
		Stdout:         os.Stdout,
	}
}
