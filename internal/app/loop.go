package app

import (
	"go.uber.org/zap"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render"
)

type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "terminating"
}

type Loop struct {
	win     Window
	scene   *render.Scene
	overlay Overlay
	log     *zap.Logger

	state  State
	frames uint64
	drawn  uint64
}

func NewLoop(win Window, scene *render.Scene, overlay Overlay, log *zap.Logger) *Loop {
	return &Loop{
		win:     win,
		scene:   scene,
		overlay: overlay,
		log:     log,
		state:   Running,
	}
}

// Run iterates until the window's close flag is observed at the top of an
// iteration.
func (l *Loop) Run() {
	l.log.Info("Frame loop started")

	for !l.win.ShouldClose() {
		l.Frame()
	}

	l.state = Terminating
	l.log.Info("Frame loop finished", zap.Uint64("frames", l.frames), zap.Uint64("sceneDraws", l.drawn))
}

func (l *Loop) Frame() {
	l.win.PollEvents()

	l.overlay.NewFrame()
	l.overlay.Build()
	l.overlay.Render()

	if l.scene.Draw() {
		l.drawn++
	}

	l.overlay.Draw()

	l.win.SwapBuffers()
	l.frames++
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Frames() uint64 {
	return l.frames
}
