package render

type (
	Stage      int
	Capability int
	Primitive  int
	Usage      int
	StringName int
	BufferBits int
)

const (
	VertexStage Stage = iota
	FragmentStage
)

const (
	DepthTest Capability = iota
	CullFace
	Blend
)

const (
	Triangles Primitive = iota
	Lines
	Points
)

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

const (
	Version StringName = iota
	ShadingLanguageVersion
	Renderer
	Vendor
)

const (
	ColorBuffer BufferBits = 1 << iota
	DepthBuffer
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

type Color struct {
	R, G, B, A float32
}

// AttribLayout describes one float vertex attribute of the bound buffer.
type AttribLayout struct {
	Index      uint32
	Size       int32
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// Device is the slice of OpenGL this program talks to. Object names are the
// driver's uint32 handles; zero is never a valid object.
type Device interface {
	Viewport(x, y, width, height int32)
	Enable(c Capability)
	ClearColor(c Color)
	Clear(bits BufferBits)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	ArrayBufferData(data []float32, usage Usage)
	DeleteBuffer(vbo uint32)

	VertexAttrib(l AttribLayout)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode Primitive, first, count int32)

	CreateShader(stage Stage) uint32
	CompileShader(shader uint32, source string) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32) (ok bool, infoLog string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetString(name StringName) string
}

// Viewport maps the whole framebuffer of the given size.
func Viewport(dev Device, width, height int) {
	dev.Viewport(0, 0, int32(width), int32(height))
}
