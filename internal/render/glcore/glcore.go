// Package glcore binds render.Device to an OpenGL 3.3 core context through
// go-gl.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render"
)

type Device struct{}

// Load resolves GL entry points for the context current on this thread.
func Load(procAddr func(name string) unsafe.Pointer) (*Device, error) {
	const op = "glcore.Load"

	if err := gl.InitWithProcAddrFunc(procAddr); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Device{}, nil
}

var (
	capabilities = map[render.Capability]uint32{
		render.DepthTest: gl.DEPTH_TEST,
		render.CullFace:  gl.CULL_FACE,
		render.Blend:     gl.BLEND,
	}
	primitives = map[render.Primitive]uint32{
		render.Triangles: gl.TRIANGLES,
		render.Lines:     gl.LINES,
		render.Points:    gl.POINTS,
	}
	usages = map[render.Usage]uint32{
		render.StaticDraw:  gl.STATIC_DRAW,
		render.DynamicDraw: gl.DYNAMIC_DRAW,
		render.StreamDraw:  gl.STREAM_DRAW,
	}
	stages = map[render.Stage]uint32{
		render.VertexStage:   gl.VERTEX_SHADER,
		render.FragmentStage: gl.FRAGMENT_SHADER,
	}
	strs = map[render.StringName]uint32{
		render.Version:                gl.VERSION,
		render.ShadingLanguageVersion: gl.SHADING_LANGUAGE_VERSION,
		render.Renderer:               gl.RENDERER,
		render.Vendor:                 gl.VENDOR,
	}
)

func (Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Device) Enable(c render.Capability) {
	gl.Enable(capabilities[c])
}

func (Device) ClearColor(c render.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (Device) Clear(bits render.BufferBits) {
	var mask uint32
	if bits&render.ColorBuffer != 0 {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if bits&render.DepthBuffer != 0 {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

func (Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (Device) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (Device) BindArrayBuffer(vbo uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
}

func (Device) ArrayBufferData(data []float32, usage render.Usage) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usages[usage])
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usages[usage])
}

func (Device) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

func (Device) VertexAttrib(l render.AttribLayout) {
	gl.VertexAttribPointerWithOffset(l.Index, l.Size, gl.FLOAT, l.Normalized, l.Stride, l.Offset)
}

func (Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Device) DrawArrays(mode render.Primitive, first, count int32) {
	gl.DrawArrays(primitives[mode], first, count)
}

func (Device) CreateShader(stage render.Stage) uint32 {
	return gl.CreateShader(stages[stage])
}

func (Device) CompileShader(shader uint32, source string) (bool, string) {
	cs, free := gl.Strs(source + "\x00")
	defer free()

	gl.ShaderSource(shader, 1, cs, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)

	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))

	return false, strings.TrimRight(log, "\x00\n")
}

func (Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Device) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (Device) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)

	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))

	return false, strings.TrimRight(log, "\x00\n")
}

func (Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Device) GetString(name render.StringName) string {
	return gl.GoStr(gl.GetString(strs[name]))
}
