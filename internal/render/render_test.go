package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render"
	"github.com/kogiokka/NTOU-GLFW-Beginner-Template/internal/render/rendertest"
)

const (
	vertSrc = "#version 330 core\nlayout (location = 0) in vec3 aPos;\nvoid main() { gl_Position = vec4(aPos, 1.0); }\n"
	fragSrc = "#version 330 core\nout vec4 FragColor;\nvoid main() { FragColor = vec4(1.0); }\n"
)

func writeShaders(t *testing.T, vert, frag string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	vp := filepath.Join(dir, "default.vert")
	fp := filepath.Join(dir, "default.frag")
	require.NoError(t, os.WriteFile(vp, []byte(vert), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte(frag), 0o644))

	return vp, fp
}

func TestMeshUploadsTriangle(t *testing.T) {
	dev := rendertest.NewDevice()

	m := render.NewMesh(dev, render.Triangle)

	require.Len(t, dev.Buffers, 1)
	for _, b := range dev.Buffers {
		assert.Equal(t, []float32{
			-0.5, -0.5, 0,
			0.5, -0.5, 0,
			0, 0.5, 0,
		}, b.Data)
		assert.Len(t, b.Data, 9)
		assert.Equal(t, render.StaticDraw, b.Usage)
	}

	require.Len(t, dev.VertexArrays, 1)
	for vao := range dev.VertexArrays {
		assert.Equal(t, []render.AttribLayout{{Index: 0, Size: 3, Normalized: false, Stride: 12, Offset: 0}}, dev.Attribs[vao])
	}

	assert.Equal(t, int32(3), m.Vertices())
}

func TestMeshDrawIssuesOneTriangle(t *testing.T) {
	dev := rendertest.NewDevice()
	m := render.NewMesh(dev, render.Triangle)

	m.Draw()

	require.Len(t, dev.Draws, 1)
	assert.Equal(t, render.Triangles, dev.Draws[0].Mode)
	assert.Equal(t, int32(0), dev.Draws[0].First)
	assert.Equal(t, int32(3), dev.Draws[0].Count)
	assert.NotZero(t, dev.Draws[0].VAO)
}

func TestMeshDeleteIsIdempotent(t *testing.T) {
	dev := rendertest.NewDevice()
	m := render.NewMesh(dev, render.Triangle)

	m.Delete()
	m.Delete()

	assert.Empty(t, dev.Buffers)
	assert.Empty(t, dev.VertexArrays)
	assert.Equal(t, []string{"vbo", "vao"}, dev.Deleted)
}

func TestFlatten(t *testing.T) {
	got := render.Flatten([]mgl32.Vec3{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, got)
	assert.Empty(t, render.Flatten(nil))
}

func TestProgramLinks(t *testing.T) {
	dev := rendertest.NewDevice()
	vp, fp := writeShaders(t, vertSrc, fragSrc)

	pg := render.CreateProgram(dev, zaptest.NewLogger(t))
	require.NoError(t, pg.AttachShader(render.VertexStage, vp))
	require.NoError(t, pg.AttachShader(render.FragmentStage, fp))
	require.NoError(t, pg.Link())

	assert.True(t, pg.Linked())
	assert.Empty(t, dev.Shaders, "transient stages are deleted after link")
	for _, attached := range dev.Programs {
		assert.Empty(t, attached)
	}

	assert.True(t, pg.Use())

	pg.Delete()
	assert.Empty(t, dev.Programs)
	assert.False(t, pg.Use())
}

func TestProgramCompileFailureIsReported(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	dev := rendertest.NewDevice()
	dev.FailCompile = "broken"
	vp, fp := writeShaders(t, vertSrc, "broken")

	pg := render.CreateProgram(dev, zap.New(core))
	assert.NoError(t, pg.AttachShader(render.VertexStage, vp))

	err := pg.AttachShader(render.FragmentStage, fp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment")

	require.Error(t, pg.Link())
	assert.False(t, pg.Linked())
	assert.Empty(t, dev.Shaders, "stages are released even when linking fails")

	assert.Equal(t, 1, logs.FilterMessage("Failed to compile shader").Len())
	assert.Equal(t, 1, logs.FilterMessage("Failed to link program").Len())
}

func TestProgramMissingFile(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	dev := rendertest.NewDevice()

	pg := render.CreateProgram(dev, zap.New(core))
	err := pg.AttachShader(render.VertexStage, filepath.Join(t.TempDir(), "missing.vert"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, logs.FilterMessage("Failed to read shader source").Len())

	// Linking a program with no stages is left to the driver.
	assert.NoError(t, pg.Link())
}

func TestSceneSkipsUnlinkedProgram(t *testing.T) {
	dev := rendertest.NewDevice()
	dev.FailCompile = "broken"

	pg := render.CreateProgram(dev, zaptest.NewLogger(t))
	_ = pg.AttachSource(render.VertexStage, "inline", "broken")
	_ = pg.Link()

	scene := render.NewScene(dev, render.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}, render.NewMesh(dev, render.Triangle), pg)

	assert.NotPanics(t, func() {
		assert.False(t, scene.Draw())
	})
	assert.Empty(t, dev.Draws)
	assert.Equal(t, []render.BufferBits{render.ColorBuffer | render.DepthBuffer}, dev.Clears)
}

func TestSceneDraw(t *testing.T) {
	dev := rendertest.NewDevice()

	pg := render.CreateProgram(dev, zaptest.NewLogger(t))
	require.NoError(t, pg.AttachSource(render.VertexStage, "vert", vertSrc))
	require.NoError(t, pg.AttachSource(render.FragmentStage, "frag", fragSrc))
	require.NoError(t, pg.Link())

	clear := render.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
	scene := render.NewScene(dev, clear, render.NewMesh(dev, render.Triangle), pg)

	assert.True(t, dev.Enabled[render.DepthTest])
	assert.True(t, dev.Enabled[render.CullFace])

	assert.True(t, scene.Draw())
	assert.Equal(t, clear, dev.Color)
	require.Len(t, dev.Draws, 1)
	assert.NotZero(t, dev.Draws[0].Program)
	assert.Equal(t, int32(3), dev.Draws[0].Count)
}

func TestViewport(t *testing.T) {
	dev := rendertest.NewDevice()

	for _, sz := range [][2]int{{800, 600}, {1, 1}, {1920, 1080}, {37, 4096}} {
		render.Viewport(dev, sz[0], sz[1])
		assert.Equal(t, [4]int32{0, 0, int32(sz[0]), int32(sz[1])}, dev.LastViewport())
	}
}

func TestInfoFprint(t *testing.T) {
	dev := rendertest.NewDevice()

	var buf bytes.Buffer
	require.NoError(t, render.ReadInfo(dev).Fprint(&buf))

	assert.Equal(t,
		"OpenGL Version:        3.3.0 Fake\n"+
			"GLSL Version:          3.30 Fake\n"+
			"Renderer:              rendertest\n"+
			"Vendor:                kogiokka\n",
		buf.String())
}
