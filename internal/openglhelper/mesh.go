package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/go-flycam/pkg/geometry"
)

// Mesh is an uploaded, immutable vertex/index buffer pair
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads data to the GPU. Vertices are position then normal.
func NewMesh(data geometry.Data) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(data.Vertices, StaticDraw)
	ebo := NewEBO(data.Indices, StaticDraw)

	stride := int32(geometry.FloatsPerVertex * 4)
	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)

	// Unbind VAO
	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(data.Indices)),
	}
}

// Draw renders the mesh with the currently bound shader
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
