package meshing

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"voxelforge/internal/atlas"
	"voxelforge/internal/world"
)

// Mesh holds the parallel geometry buffers of one chunk: positions,
// normals, UVs and vertex colors, four entries per quad, plus the triangle
// index sequence. Buffers are built fresh per call and handed off to the
// rendering side; nothing here touches a scene graph.
type Mesh struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	Colors   []mgl32.Vec3
	Indices  []uint32
}

// QuadCount returns the number of quads in the mesh.
func (m *Mesh) QuadCount() int {
	return len(m.Indices) / 6
}

// Mesher builds culled triangle meshes for chunks: one quad per exposed
// block face, no greedy merging. The atlas must be fully built before the
// first call and is treated as read-only. The rand source feeds UV
// rotation; give each concurrent mesher its own.
type Mesher struct {
	atlas *atlas.Atlas
	rng   *rand.Rand
}

func NewMesher(a *atlas.Atlas, rng *rand.Rand) *Mesher {
	return &Mesher{atlas: a, rng: rng}
}

// BuildChunkMesh walks every cell of the chunk and emits one quad per
// exposed face. Cross-chunk visibility at the X/Z edges goes through nb;
// pass nil to treat all neighbor chunks as unloaded (solid).
func (m *Mesher) BuildChunkMesh(nb world.Neighborhood, c *world.Chunk) *Mesh {
	mesh := &Mesh{}

	for y := 0; y < world.ChunkSizeY; y++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			for x := 0; x < world.ChunkSizeX; x++ {
				blockType := c.GetBlock(x, y, z)
				if blockType == world.BlockTypeAir {
					continue
				}
				for face := world.BlockFace(0); face < world.FaceCount; face++ {
					if FaceExposed(nb, c, x, y, z, face) {
						m.emitQuad(mesh, blockType, face, x, y, z)
					}
				}
			}
		}
	}

	return mesh
}

// emitQuad appends one face quad: 4 vertices at the face's unit-cube
// corners scaled by 0.5 and translated to the cell, 6 indices in winding
// order 0-1-2, 0-2-3 over absolute buffer positions, the face normal on
// all 4 vertices, atlas UVs per corner and the block's tint color.
func (m *Mesher) emitQuad(mesh *Mesh, blockType world.BlockType, face world.BlockFace, x, y, z int) {
	base := uint32(len(mesh.Vertices))
	cell := mgl32.Vec3{float32(x), float32(y), float32(z)}

	for _, corner := range world.FaceCorners[face] {
		mesh.Vertices = append(mesh.Vertices, cell.Add(corner.Mul(0.5)))
		mesh.Normals = append(mesh.Normals, world.FaceNormals[face])
	}

	uvs := m.atlas.FaceUVs(blockType, face, m.rng)
	mesh.UVs = append(mesh.UVs, uvs[0], uvs[1], uvs[2], uvs[3])

	tint := m.atlas.Registry().Get(blockType).Tint(face)
	mesh.Colors = append(mesh.Colors, tint, tint, tint, tint)

	mesh.Indices = append(mesh.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
