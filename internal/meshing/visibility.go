package meshing

import (
	"voxelforge/internal/world"
)

// FaceExposed reports whether the face of the cell at chunk-local (x,y,z)
// is visible. Policy, in priority order:
//
//  1. A neighbor above or below the world height range is open air in both
//     directions; the face is exposed.
//  2. A neighbor beyond the chunk's X/Z edge is resolved through the
//     neighborhood at the wrapped coordinate of the adjacent chunk. A
//     chunk that is not loaded counts as fully solid, so no boundary
//     geometry is built against an unloaded region.
//  3. Otherwise the chunk's own grid decides: exposed iff the neighbor
//     cell is air.
//
// Callers test each of the 6 faces independently; there is no caching
// across cells.
func FaceExposed(nb world.Neighborhood, c *world.Chunk, x, y, z int, face world.BlockFace) bool {
	off := world.FaceOffsets[face]
	nx, ny, nz := x+off[0], y+off[1], z+off[2]

	if ny < 0 || ny >= world.ChunkSizeY {
		return true
	}

	if nx < 0 || nx >= world.ChunkSizeX || nz < 0 || nz >= world.ChunkSizeZ {
		if nb == nil {
			return false
		}
		neighbor := nb.GetChunk(world.ChunkCoord{
			X: c.Coord.X + off[0],
			Z: c.Coord.Z + off[2],
		})
		if neighbor == nil {
			return false
		}
		// wrap to the opposite edge of the adjacent chunk
		wx := (nx + world.ChunkSizeX) % world.ChunkSizeX
		wz := (nz + world.ChunkSizeZ) % world.ChunkSizeZ
		return neighbor.GetBlock(wx, ny, wz) == world.BlockTypeAir
	}

	return c.GetBlock(nx, ny, nz) == world.BlockTypeAir
}
