package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

type vertexKey struct {
	pos    mgl32.Vec3
	normal mgl32.Vec3
	uv     mgl32.Vec2
	color  mgl32.Vec3
}

// Weld collapses vertices whose position, normal, UV and color all match
// and remaps the index buffer accordingly. Purely a size optimization for
// the handoff to the renderer; the triangle set is unchanged and callers
// may skip it entirely.
func Weld(m *Mesh) *Mesh {
	out := &Mesh{
		Indices: make([]uint32, 0, len(m.Indices)),
	}
	remap := make(map[vertexKey]uint32, len(m.Vertices))

	for _, idx := range m.Indices {
		key := vertexKey{
			pos:    m.Vertices[idx],
			normal: m.Normals[idx],
			uv:     m.UVs[idx],
			color:  m.Colors[idx],
		}
		ni, ok := remap[key]
		if !ok {
			ni = uint32(len(out.Vertices))
			remap[key] = ni
			out.Vertices = append(out.Vertices, key.pos)
			out.Normals = append(out.Normals, key.normal)
			out.UVs = append(out.UVs, key.uv)
			out.Colors = append(out.Colors, key.color)
		}
		out.Indices = append(out.Indices, ni)
	}

	return out
}
