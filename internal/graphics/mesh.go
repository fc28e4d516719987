package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"voxelforge/internal/meshing"
)

// Vertex layout: position(3) + normal(3) + uv(2) + color(3) interleaved floats
const floatsPerVertex = 11

// ChunkMesh holds the GL objects for one uploaded chunk mesh
type ChunkMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// UploadMesh interleaves the mesh buffers and uploads them as a VAO with one
// VBO and one EBO. Returns nil for an empty mesh.
func UploadMesh(m *meshing.Mesh) *ChunkMesh {
	if len(m.Indices) == 0 {
		return nil
	}

	data := make([]float32, 0, len(m.Vertices)*floatsPerVertex)
	for i, v := range m.Vertices {
		n := m.Normals[i]
		uv := m.UVs[i]
		c := m.Colors[i]
		data = append(data,
			v.X(), v.Y(), v.Z(),
			n.X(), n.Y(), n.Z(),
			uv.X(), uv.Y(),
			c.X(), c.Y(), c.Z(),
		)
	}

	cm := &ChunkMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &cm.vao)
	gl.GenBuffers(1, &cm.vbo)
	gl.GenBuffers(1, &cm.ebo)

	gl.BindVertexArray(cm.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, cm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, cm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 3, gl.FLOAT, false, stride, gl.PtrOffset(8*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return cm
}

// Draw issues the indexed draw call for this mesh
func (cm *ChunkMesh) Draw() {
	gl.BindVertexArray(cm.vao)
	gl.DrawElements(gl.TRIANGLES, cm.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// IndexCount returns the number of indices in the uploaded mesh
func (cm *ChunkMesh) IndexCount() int {
	return int(cm.indexCount)
}

// Dispose releases the GL objects
func (cm *ChunkMesh) Dispose() {
	if cm.vao != 0 {
		gl.DeleteVertexArrays(1, &cm.vao)
		cm.vao = 0
	}
	if cm.vbo != 0 {
		gl.DeleteBuffers(1, &cm.vbo)
		cm.vbo = 0
	}
	if cm.ebo != 0 {
		gl.DeleteBuffers(1, &cm.ebo)
		cm.ebo = 0
	}
	cm.indexCount = 0
}
