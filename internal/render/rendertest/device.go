// Package rendertest provides a recording render.Device for tests that run
// without a GL context.
package rendertest

import (
	"strings"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render"
)

type Draw struct {
	VAO     uint32
	Program uint32
	Mode    render.Primitive
	First   int32
	Count   int32
}

type Buffer struct {
	Data  []float32
	Usage render.Usage
}

// Device records every call. Shader sources containing FailCompile fail to
// compile; programs with any failed stage, or when FailLink is set, fail to
// link.
type Device struct {
	FailCompile string
	FailLink    bool
	Strings     map[render.StringName]string

	// Hook, when set, sees every call name as it is recorded.
	Hook func(name string)

	Calls     []string
	Viewports [][4]int32
	Enabled   map[render.Capability]bool
	Clears    []render.BufferBits
	Color     render.Color

	Buffers      map[uint32]*Buffer
	VertexArrays map[uint32]bool
	Attribs      map[uint32][]render.AttribLayout
	Draws        []Draw

	Shaders  map[uint32]render.Stage
	Compiled map[uint32]bool
	Programs map[uint32][]uint32
	Linked   map[uint32]bool
	Deleted  []string

	next       uint32
	boundVAO   uint32
	boundVBO   uint32
	curProgram uint32
}

func NewDevice() *Device {
	return &Device{
		Strings: map[render.StringName]string{
			render.Version:                "3.3.0 Fake",
			render.ShadingLanguageVersion: "3.30 Fake",
			render.Renderer:               "rendertest",
			render.Vendor:                 "kogiokka",
		},
		Enabled:      map[render.Capability]bool{},
		Buffers:      map[uint32]*Buffer{},
		VertexArrays: map[uint32]bool{},
		Attribs:      map[uint32][]render.AttribLayout{},
		Shaders:      map[uint32]render.Stage{},
		Compiled:     map[uint32]bool{},
		Programs:     map[uint32][]uint32{},
		Linked:       map[uint32]bool{},
	}
}

func (d *Device) record(name string) {
	d.Calls = append(d.Calls, name)
	if d.Hook != nil {
		d.Hook(name)
	}
}

func (d *Device) id() uint32 {
	d.next++
	return d.next
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.record("Viewport")
	d.Viewports = append(d.Viewports, [4]int32{x, y, width, height})
}

// LastViewport returns the most recent viewport, or zeros when none was set.
func (d *Device) LastViewport() [4]int32 {
	if len(d.Viewports) == 0 {
		return [4]int32{}
	}
	return d.Viewports[len(d.Viewports)-1]
}

func (d *Device) Enable(c render.Capability) {
	d.record("Enable")
	d.Enabled[c] = true
}

func (d *Device) ClearColor(c render.Color) {
	d.record("ClearColor")
	d.Color = c
}

func (d *Device) Clear(bits render.BufferBits) {
	d.record("Clear")
	d.Clears = append(d.Clears, bits)
}

func (d *Device) GenVertexArray() uint32 {
	d.record("GenVertexArray")
	id := d.id()
	d.VertexArrays[id] = true
	return id
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray")
	d.boundVAO = vao
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray")
	delete(d.VertexArrays, vao)
	d.Deleted = append(d.Deleted, "vao")
}

func (d *Device) GenBuffer() uint32 {
	d.record("GenBuffer")
	id := d.id()
	d.Buffers[id] = &Buffer{}
	return id
}

func (d *Device) BindArrayBuffer(vbo uint32) {
	d.record("BindArrayBuffer")
	d.boundVBO = vbo
}

func (d *Device) ArrayBufferData(data []float32, usage render.Usage) {
	d.record("ArrayBufferData")
	if b, ok := d.Buffers[d.boundVBO]; ok {
		b.Data = append([]float32(nil), data...)
		b.Usage = usage
	}
}

func (d *Device) DeleteBuffer(vbo uint32) {
	d.record("DeleteBuffer")
	delete(d.Buffers, vbo)
	d.Deleted = append(d.Deleted, "vbo")
}

func (d *Device) VertexAttrib(l render.AttribLayout) {
	d.record("VertexAttrib")
	d.Attribs[d.boundVAO] = append(d.Attribs[d.boundVAO], l)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray")
}

func (d *Device) DrawArrays(mode render.Primitive, first, count int32) {
	d.record("DrawArrays")
	d.Draws = append(d.Draws, Draw{
		VAO:     d.boundVAO,
		Program: d.curProgram,
		Mode:    mode,
		First:   first,
		Count:   count,
	})
}

func (d *Device) CreateShader(stage render.Stage) uint32 {
	d.record("CreateShader")
	id := d.id()
	d.Shaders[id] = stage
	return id
}

func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	d.record("CompileShader")
	if d.FailCompile != "" && strings.Contains(source, d.FailCompile) {
		d.Compiled[shader] = false
		return false, "0:1(1): error: syntax error"
	}
	d.Compiled[shader] = true
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) {
	d.record("DeleteShader")
	delete(d.Shaders, shader)
	d.Deleted = append(d.Deleted, "shader")
}

func (d *Device) CreateProgram() uint32 {
	d.record("CreateProgram")
	id := d.id()
	d.Programs[id] = nil
	return id
}

func (d *Device) AttachShader(program, shader uint32) {
	d.record("AttachShader")
	d.Programs[program] = append(d.Programs[program], shader)
}

func (d *Device) DetachShader(program, shader uint32) {
	d.record("DetachShader")
	list := d.Programs[program]
	for i, s := range list {
		if s == shader {
			d.Programs[program] = append(list[:i], list[i+1:]...)
			break
		}
	}
}

func (d *Device) LinkProgram(program uint32) (bool, string) {
	d.record("LinkProgram")
	ok := !d.FailLink
	for _, s := range d.Programs[program] {
		if !d.Compiled[s] {
			ok = false
		}
	}
	d.Linked[program] = ok
	if !ok {
		return false, "error: linking with uncompiled shader"
	}
	return true, ""
}

func (d *Device) UseProgram(program uint32) {
	d.record("UseProgram")
	d.curProgram = program
}

func (d *Device) DeleteProgram(program uint32) {
	d.record("DeleteProgram")
	delete(d.Programs, program)
	d.Deleted = append(d.Deleted, "program")
}

func (d *Device) GetString(name render.StringName) string {
	d.record("GetString")
	return d.Strings[name]
}
