// Package platform wires the GLFW window host, the go-gl device and the
// imgui overlay into app.Platform.
package platform

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/app"
	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/gui"
	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render"
	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render/glcore"
	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/ui"
)

type Desktop struct {
	Log *zap.Logger
}

func (d Desktop) OpenWindow(cfg app.WindowConfig) (app.Window, error) {
	h, err := ui.Open(ui.WindowConfig(cfg), d.Log.Named("ui"))
	if err != nil {
		return nil, err
	}

	return h, nil
}

func (d Desktop) LoadGPU(win app.Window) (render.Device, error) {
	const op = "platform.LoadGPU"

	h, ok := win.(*ui.Host)
	if !ok {
		return nil, fmt.Errorf("%s: unsupported window %T", op, win)
	}

	dev, err := glcore.Load(h.ProcAddress)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dev, nil
}

func (d Desktop) NewOverlay(win app.Window, dev render.Device) (app.Overlay, error) {
	const op = "platform.NewOverlay"

	h, ok := win.(*ui.Host)
	if !ok {
		return nil, fmt.Errorf("%s: unsupported window %T", op, win)
	}
	gd, ok := dev.(*glcore.Device)
	if !ok {
		return nil, fmt.Errorf("%s: unsupported device %T", op, dev)
	}

	r, err := glcore.NewGUIRenderer(gd, d.Log.Named("gui"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return gui.New(h, h.Events(), r, d.Log.Named("gui")), nil
}
