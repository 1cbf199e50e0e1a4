package renderer

import "github.com/go-gl/gl/v3.3-core/gl"

const (
	floatSize    = 4
	vertexFloats = 8 // position xyz, colour rgb, texcoord uv
)

var quadVertices = []float32{
	// positions      // colors      // texture coords
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
}

var quadIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
}

// Quad holds the vertex array and buffers of the textured rectangle.
type Quad struct {
	vao, vbo, ebo uint32
	count         int32
}

// NewQuad uploads the rectangle's vertices and indices and records the
// attribute layout in a vertex array object.
func NewQuad() *Quad {
	q := &Quad{count: int32(len(quadIndices))}
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.GenBuffers(1, &q.ebo)

	gl.BindVertexArray(q.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*floatSize, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	stride := int32(vertexFloats * floatSize)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*floatSize))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*floatSize))
	gl.EnableVertexAttribArray(2)

	// The element buffer binding is part of the VAO state, so it stays bound.
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return q
}

func (q *Quad) Draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawElements(gl.TRIANGLES, q.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (q *Quad) Delete() {
	gl.DeleteVertexArrays(1, &q.vao)
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteBuffers(1, &q.ebo)
}
