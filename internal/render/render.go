package render

import "github.com/go-gl/mathgl/mgl32"

// Triangle is the static geometry drawn every frame, in normalized device
// coordinates, counter-clockwise.
var Triangle = []mgl32.Vec3{
	{-0.5, -0.5, 0.0},
	{0.5, -0.5, 0.0},
	{0.0, 0.5, 0.0},
}

const floatSize = 4

type Mesh struct {
	dev Device

	vao, vbo uint32
	vtq      int32
}

func Flatten(vtc []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vtc)*3)
	for _, v := range vtc {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// NewMesh uploads vtc once with static usage and describes it to attribute
// slot 0 as tightly packed vec3.
func NewMesh(dev Device, vtc []mgl32.Vec3) *Mesh {
	m := &Mesh{dev: dev, vtq: int32(len(vtc))}

	m.vao = dev.GenVertexArray()
	m.vbo = dev.GenBuffer()

	dev.BindArrayBuffer(m.vbo)
	dev.ArrayBufferData(Flatten(vtc), StaticDraw)

	dev.BindVertexArray(m.vao)
	dev.EnableVertexAttribArray(0)
	dev.VertexAttrib(AttribLayout{
		Index:  0,
		Size:   3,
		Stride: 3 * floatSize,
	})

	dev.BindVertexArray(0)
	dev.BindArrayBuffer(0)

	return m
}

func (m *Mesh) Vertices() int32 {
	return m.vtq
}

func (m *Mesh) Draw() {
	m.dev.BindVertexArray(m.vao)
	m.dev.DrawArrays(Triangles, 0, m.vtq)
}

func (m *Mesh) Delete() {
	if m.vbo != 0 {
		m.dev.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		m.dev.DeleteVertexArray(m.vao)
		m.vao = 0
	}
}

// Scene is the per-frame 3D pass: clear, then one mesh with one program.
type Scene struct {
	dev Device

	Clear   Color
	Mesh    *Mesh
	Program *Program
}

func NewScene(dev Device, clear Color, mesh *Mesh, pg *Program) *Scene {
	dev.Enable(DepthTest)
	dev.Enable(CullFace)

	return &Scene{dev: dev, Clear: clear, Mesh: mesh, Program: pg}
}

// Draw reports whether the mesh was submitted.
func (s *Scene) Draw() bool {
	s.dev.ClearColor(s.Clear)
	s.dev.Clear(ColorBuffer | DepthBuffer)

	if s.Mesh == nil || s.Program == nil || !s.Program.Use() {
		return false
	}

	s.Mesh.Draw()
	return true
}
