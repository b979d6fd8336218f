package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/event"
	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render"
)

const (
	ExitOK      = 0
	ExitFailure = -1
)

var (
	ErrWindow = errors.New("window creation failed")
	ErrLoader = errors.New("GPU function loading failed")
)

type Window interface {
	ShouldClose() bool
	SetShouldClose(v bool)
	PollEvents()
	SwapBuffers()
	Events() *event.Dispatcher
	Close()
}

type Overlay interface {
	NewFrame()
	Build()
	Render()
	Draw()
	Dispose()
}

// Platform creates the three things the program cannot build on its own:
// the window with its context, the GL entry points, and the GUI overlay.
type Platform interface {
	OpenWindow(cfg WindowConfig) (Window, error)
	LoadGPU(win Window) (render.Device, error)
	NewOverlay(win Window, dev render.Device) (Overlay, error)
}

// Run performs setup, drives the frame loop until the window is asked to
// close, tears everything down and returns the process exit status.
func Run(cfg Config, p Platform, log *zap.Logger) int {
	err := run(cfg, p, log)
	if err == nil {
		return ExitOK
	}

	switch {
	case errors.Is(err, ErrWindow):
		fmt.Fprintln(cfg.Stdout, "Failed to create GLFW window!")
	case errors.Is(err, ErrLoader):
		fmt.Fprintln(cfg.Stdout, "Failed to initialize OpenGL loader!")
	default:
		fmt.Fprintf(cfg.Stdout, "Startup failed: %v\n", err)
	}
	log.Error("Startup failed", zap.Error(err))

	return ExitFailure
}

func run(cfg Config, p Platform, log *zap.Logger) error {
	const op = "app.Run"

	win, err := p.OpenWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrWindow, err)
	}
	defer win.Close()

	dev, err := p.LoadGPU(win)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrLoader, err)
	}

	info := render.ReadInfo(dev)
	if err := info.Fprint(cfg.Stdout); err != nil {
		log.Warn("Write driver info", zap.Error(err))
	}
	log.Debug("Driver", zap.String("version", info.Version), zap.String("renderer", info.Renderer))

	bindInput(win, dev, cfg.Quit, log)

	mesh := render.NewMesh(dev, render.Triangle)
	defer mesh.Delete()

	pg := render.CreateProgram(dev, log)
	defer pg.Delete()

	if err := pg.AttachShader(render.VertexStage, cfg.VertexShader); err != nil {
		log.Warn("Vertex stage unusable", zap.Error(err))
	}
	if err := pg.AttachShader(render.FragmentStage, cfg.FragmentShader); err != nil {
		log.Warn("Fragment stage unusable", zap.Error(err))
	}
	if err := pg.Link(); err != nil {
		log.Warn("Shader program not linked, scene geometry will not be drawn", zap.Error(err))
	}

	scene := render.NewScene(dev, cfg.ClearColor, mesh, pg)

	var overlay Overlay = nopOverlay{}
	if ov, err := p.NewOverlay(win, dev); err != nil {
		log.Error("GUI overlay disabled", zap.Error(err))
	} else {
		overlay = ov
	}
	defer overlay.Dispose()

	NewLoop(win, scene, overlay, log).Run()

	return nil
}

// bindInput registers the two handlers the program itself cares about.
func bindInput(win Window, dev render.Device, quit event.Chord, log *zap.Logger) {
	win.Events().OnResize(func(e event.Resize) {
		render.Viewport(dev, e.Width, e.Height)
	})
	win.Events().OnKey(func(e event.KeyEvent) {
		if quit.Pressed(e) {
			log.Info("Quit requested", zap.Stringer("chord", quit))
			win.SetShouldClose(true)
		}
	})
}

type nopOverlay struct{}

func (nopOverlay) NewFrame() {}
func (nopOverlay) Build()    {}
func (nopOverlay) Render()   {}
func (nopOverlay) Draw()     {}
func (nopOverlay) Dispose()  {}
