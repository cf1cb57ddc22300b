// Package model draws a compiled block model with one draw call per
// material group.
package model

import (
	_ "embed"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mcmodel/internal/graphics"
	"mcmodel/internal/graphics/renderer"
	"mcmodel/internal/profiling"
	"mcmodel/pkg/geometry"
	"mcmodel/pkg/mesh"
)

var (
	//go:embed model.vert
	vertexShader string
	//go:embed model.frag
	fragmentShader string
)

// Model renders one mesh. Textures must already be bound to the mesh
// through the same TextureManager.
type Model struct {
	mesh     *mesh.Mesh
	textures *graphics.TextureManager

	// SpinSpeed turns the model around the vertical axis, in degrees per second.
	SpinSpeed float32
	// Paused stops texture animation.
	Paused bool
	angle  float32

	shader *graphics.Shader
	vao    uint32
	vbo    [2]uint32 // positions, uvs
	ebo    uint32
}

func NewModel(m *mesh.Mesh, textures *graphics.TextureManager) *Model {
	return &Model{mesh: m, textures: textures}
}

// drawCall is one glDrawElements call with its texture window.
type drawCall struct {
	start, count int
	material     int
	offset       float32
	repeat       float32
}

// drawCalls lists the non-empty groups of m with the current animation
// state of their materials.
func drawCalls(m *mesh.Mesh) []drawCall {
	calls := make([]drawCall, 0, len(m.Geometry.Groups))
	for _, g := range m.Geometry.Groups {
		if g.Count == 0 {
			continue
		}
		call := drawCall{start: g.Start, count: g.Count, material: g.MaterialIndex, repeat: 1}
		if tex := m.Materials[g.MaterialIndex].Texture; tex != nil {
			call.offset = tex.Offset()
			call.repeat = tex.Repeat()
		}
		calls = append(calls, call)
	}
	return calls
}

// Init compiles the shader and uploads the mesh buffers.
func (r *Model) Init() error {
	var err error
	r.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	attrs := r.mesh.Geometry

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(2, &r.vbo[0])
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo[0])
	if len(attrs.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(attrs.Vertices)*4, gl.Ptr(attrs.Vertices), gl.STATIC_DRAW)
	}
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo[1])
	if len(attrs.UVs) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(attrs.UVs)*4, gl.Ptr(attrs.UVs), gl.STATIC_DRAW)
	}
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 2*4, 0)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	if len(attrs.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(attrs.Indices)*4, gl.Ptr(attrs.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return nil
}

// Render advances texture animation by the frame time and draws every group.
func (r *Model) Render(ctx renderer.RenderContext) {
	defer profiling.Track("model.Render")()

	if !r.Paused {
		r.mesh.UpdateAnimation(ctx.DT)
	}
	r.angle += r.SpinSpeed * float32(ctx.DT) / float32(time.Second)

	// Vertices are in sixteenths of a block, centred on the origin.
	model := mgl32.HomogRotate3DY(mgl32.DegToRad(r.angle)).Mul4(mgl32.Scale3D(1.0/16, 1.0/16, 1.0/16))

	r.shader.Use()
	r.shader.SetMatrix4("proj", &ctx.Proj[0])
	r.shader.SetMatrix4("view", &ctx.View[0])
	r.shader.SetMatrix4("model", &model[0])
	r.shader.SetInt("tex", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.vao)
	for _, call := range drawCalls(r.mesh) {
		gl.BindTexture(gl.TEXTURE_2D, r.textureID(call.material))
		r.shader.SetFloat("uvOffset", call.offset)
		r.shader.SetFloat("uvRepeat", call.repeat)
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(call.count), gl.UNSIGNED_INT, uintptr(call.start*4))
	}
	gl.BindVertexArray(0)
}

func (r *Model) textureID(material int) uint32 {
	if material == geometry.MissingMaterial {
		return r.textures.Missing().ID
	}
	return r.textures.Lookup(r.mesh.Materials[material].Path).ID
}

// Dispose cleans up OpenGL resources
func (r *Model) Dispose() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo[0] != 0 {
		gl.DeleteBuffers(2, &r.vbo[0])
		r.vbo = [2]uint32{}
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.shader != nil {
		r.shader.Delete()
	}
}
