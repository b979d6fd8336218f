package glcore

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render"
)

const guiVertexShader = `
#version 330 core
uniform mat4 ProjMtx;
layout (location = 0) in vec2 Position;
layout (location = 1) in vec2 UV;
layout (location = 2) in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;

void main()
{
    Frag_UV = UV;
    Frag_Color = Color;
    gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}`

const guiFragmentShader = `
#version 330 core
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;

void main()
{
    Out_Color = vec4(Frag_Color.rgb, Frag_Color.a * texture(Texture, Frag_UV.st).r);
}`

// GUIRenderer draws imgui command lists over whatever the scene left in the
// framebuffer and puts the scene's GL state back afterwards.
type GUIRenderer struct {
	log *zap.Logger

	pg          *render.Program
	fontTexture uint32
	vbo, ebo    uint32

	locTex, locProjMtx          int32
	locPosition, locUV, locColor uint32
}

func NewGUIRenderer(dev *Device, log *zap.Logger) (*GUIRenderer, error) {
	const op = "glcore.NewGUIRenderer"

	r := &GUIRenderer{log: log}

	var lastTexture, lastArrayBuffer, lastVertexArray int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVertexArray)
	defer func() {
		gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
		gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))
		gl.BindVertexArray(uint32(lastVertexArray))
	}()

	r.pg = render.CreateProgram(dev, log)
	if err := r.pg.AttachSource(render.VertexStage, "gui.vert", guiVertexShader); err != nil {
		r.pg.Delete()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := r.pg.AttachSource(render.FragmentStage, "gui.frag", guiFragmentShader); err != nil {
		r.pg.Delete()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := r.pg.Link(); err != nil {
		r.pg.Delete()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id := r.pg.ID()
	r.locTex = gl.GetUniformLocation(id, gl.Str("Texture\x00"))
	r.locProjMtx = gl.GetUniformLocation(id, gl.Str("ProjMtx\x00"))
	r.locPosition = uint32(gl.GetAttribLocation(id, gl.Str("Position\x00")))
	r.locUV = uint32(gl.GetAttribLocation(id, gl.Str("UV\x00")))
	r.locColor = uint32(gl.GetAttribLocation(id, gl.Str("Color\x00")))

	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	return r, nil
}

func (r *GUIRenderer) CreateFontTexture(image *imgui.Alpha8Image) imgui.TextureID {
	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)

	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))

	return imgui.TextureID(r.fontTexture)
}

type glState struct {
	program, texture, activeTexture int32
	sampler, arrayBuffer, vao       int32
	polygonMode                     [2]int32
	viewport, scissorBox            [4]int32
	blendSrcRGB, blendDstRGB        int32
	blendSrcAlpha, blendDstAlpha    int32
	blendEqRGB, blendEqAlpha        int32

	blend, cullFace, depthTest, scissorTest bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &s.activeTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &s.texture)
	gl.GetIntegerv(gl.SAMPLER_BINDING, &s.sampler)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &s.arrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.vao)
	gl.GetIntegerv(gl.POLYGON_MODE, &s.polygonMode[0])
	gl.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &s.blendSrcRGB)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &s.blendDstRGB)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDstAlpha)
	gl.GetIntegerv(gl.BLEND_EQUATION_RGB, &s.blendEqRGB)
	gl.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &s.blendEqAlpha)
	s.blend = gl.IsEnabled(gl.BLEND)
	s.cullFace = gl.IsEnabled(gl.CULL_FACE)
	s.depthTest = gl.IsEnabled(gl.DEPTH_TEST)
	s.scissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.texture))
	gl.BindSampler(0, uint32(s.sampler))
	gl.ActiveTexture(uint32(s.activeTexture))
	gl.BindVertexArray(uint32(s.vao))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(s.arrayBuffer))
	gl.BlendEquationSeparate(uint32(s.blendEqRGB), uint32(s.blendEqAlpha))
	gl.BlendFuncSeparate(uint32(s.blendSrcRGB), uint32(s.blendDstRGB), uint32(s.blendSrcAlpha), uint32(s.blendDstAlpha))
	toggle(gl.BLEND, s.blend)
	toggle(gl.CULL_FACE, s.cullFace)
	toggle(gl.DEPTH_TEST, s.depthTest)
	toggle(gl.SCISSOR_TEST, s.scissorTest)
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(s.polygonMode[0]))
	gl.Viewport(s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3])
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
}

func toggle(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

func (r *GUIRenderer) Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayW, displayH := displaySize[0], displaySize[1]
	fbW, fbH := framebufferSize[0], framebufferSize[1]
	if fbW <= 0 || fbH <= 0 || displayW <= 0 || displayH <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: fbW / displayW, Y: fbH / displayH})

	state := saveState()
	defer state.restore()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	proj := mgl32.Ortho(0, displayW, displayH, 0, -1, 1)

	gl.UseProgram(r.pg.ID())
	gl.Uniform1i(r.locTex, 0)
	gl.UniformMatrix4fv(r.locProjMtx, 1, false, &proj[0])
	gl.BindSampler(0, 0)

	// A throwaway VAO keeps the scene's vertex array untouched.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	defer gl.DeleteVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(r.locPosition)
	gl.EnableVertexAttribArray(r.locUV)
	gl.EnableVertexAttribArray(r.locColor)

	vertexSize, vertexOffsetPos, vertexOffsetUV, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(r.locPosition, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetPos))
	gl.VertexAttribPointerWithOffset(r.locUV, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetUV))
	gl.VertexAttribPointerWithOffset(r.locColor, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		var indexOffset uintptr
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				clip := cmd.ClipRect()
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.Scissor(int32(clip.X), int32(fbH)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, indexOffset)
			}
			indexOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}
}

func (r *GUIRenderer) Dispose() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
		imgui.CurrentIO().Fonts().SetTextureID(0)
		r.fontTexture = 0
	}
	r.pg.Delete()
	r.log.Debug("GUI renderer disposed")
}
