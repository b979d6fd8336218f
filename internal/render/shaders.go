package render

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Program owns a GL program object and the transient shader stages attached
// to it until Link.
type Program struct {
	dev Device
	log *zap.Logger

	id      uint32
	shaders []uint32
	linked  bool
}

func CreateProgram(dev Device, log *zap.Logger) *Program {
	return &Program{
		dev: dev,
		log: log,
		id:  dev.CreateProgram(),
	}
}

// AttachShader reads path and compiles it as stage. A compile failure is
// logged and returned, but the stage is attached anyway so the following
// Link fails the same way the driver would report it.
func (p *Program) AttachShader(stage Stage, path string) error {
	const op = "render.AttachShader"

	src, err := os.ReadFile(path)
	if err != nil {
		p.log.Error("Failed to read shader source",
			zap.String("stage", stage.String()), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s: read %s: %w", op, path, err)
	}

	if err := p.AttachSource(stage, path, string(src)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p *Program) AttachSource(stage Stage, name, src string) error {
	const op = "render.AttachSource"

	if p.id == 0 {
		return fmt.Errorf("%s: program deleted", op)
	}

	shader := p.dev.CreateShader(stage)
	if shader == 0 {
		p.log.Error("Failed to create shader object", zap.String("stage", stage.String()))
		return fmt.Errorf("%s: create %s shader", op, stage)
	}

	ok, infoLog := p.dev.CompileShader(shader, src)

	p.dev.AttachShader(p.id, shader)
	p.shaders = append(p.shaders, shader)

	if !ok {
		p.log.Error("Failed to compile shader",
			zap.String("stage", stage.String()), zap.String("source", name), zap.String("log", infoLog))
		return fmt.Errorf("%s: compile %s shader %s: %s", op, stage, name, infoLog)
	}

	return nil
}

// Link links every attached stage, then detaches and deletes them whatever
// the outcome.
func (p *Program) Link() error {
	const op = "render.Link"

	if p.id == 0 {
		return fmt.Errorf("%s: program deleted", op)
	}

	ok, infoLog := p.dev.LinkProgram(p.id)
	p.detachShaders()

	p.linked = ok
	if !ok {
		p.log.Error("Failed to link program", zap.Uint32("program", p.id), zap.String("log", infoLog))
		return fmt.Errorf("%s: %s", op, infoLog)
	}

	return nil
}

func (p *Program) detachShaders() {
	for _, shader := range p.shaders {
		p.dev.DetachShader(p.id, shader)
		p.dev.DeleteShader(shader)
	}
	p.shaders = nil
}

func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) Linked() bool {
	return p.linked
}

// Use binds the program for drawing. It reports false, binding nothing,
// when the program never linked.
func (p *Program) Use() bool {
	if !p.linked {
		return false
	}

	p.dev.UseProgram(p.id)
	return true
}

func (p *Program) Delete() {
	if p.id == 0 {
		return
	}

	p.detachShaders()
	p.dev.DeleteProgram(p.id)
	p.id = 0
	p.linked = false
}
