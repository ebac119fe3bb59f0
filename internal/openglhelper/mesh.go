package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// FloatsPerVertex is the interleaved layout of mesh vertices:
// position (3), normal (3), texture coordinates (2).
const FloatsPerVertex = 8

// Mesh is an indexed triangle mesh bound to a shader
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
	shader     *Shader
}

// NewMesh uploads vertices and indices and configures the vertex layout
func NewMesh(vertices []float32, indices []uint32, shader *Shader) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	stride := int32(FloatsPerVertex * 4)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)
	vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, stride, 6*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
		shader:     shader,
	}
}

// Draw renders the mesh with its shader; uniforms must be set beforehand
func (m *Mesh) Draw() {
	m.shader.Use()
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

// NewCard creates a double-sided card quad of the given size centered on the origin
func NewCard(width, height float32, shader *Shader) *Mesh {
	vertices, indices := CardGeometry(width, height)
	return NewMesh(vertices, indices, shader)
}

// CardGeometry returns the vertices and indices of a card in the XY plane.
// The front face points along +Z and the back face along -Z so both sides
// are lit and survive back-face culling.
func CardGeometry(width, height float32) ([]float32, []uint32) {
	hw, hh := width/2, height/2
	vertices := []float32{
		// Front face
		-hw, -hh, 0, 0, 0, 1, 0, 0,
		hw, -hh, 0, 0, 0, 1, 1, 0,
		hw, hh, 0, 0, 0, 1, 1, 1,
		-hw, hh, 0, 0, 0, 1, 0, 1,

		// Back face
		hw, -hh, 0, 0, 0, -1, 0, 0,
		-hw, -hh, 0, 0, 0, -1, 1, 0,
		-hw, hh, 0, 0, 0, -1, 1, 1,
		hw, hh, 0, 0, 0, -1, 0, 1,
	}
	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
	}
	return vertices, indices
}
