package world

import (
	"fmt"
)

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	chunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// ChunkCoord addresses a chunk on the chunk grid. Only X and Z are
// meaningful; chunks span the full world height.
type ChunkCoord struct {
	X, Z int
}

// Chunk owns a fixed 16x256x16 grid of block types. Blocks live in a flat
// contiguous buffer indexed x + z*ChunkSizeX + y*ChunkSizeX*ChunkSizeZ.
type Chunk struct {
	Coord  ChunkCoord
	blocks []BlockType
	dirty  bool
}

// NewChunk creates an all-air chunk at the given chunk-grid coordinate.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{
		Coord:  coord,
		blocks: make([]BlockType, chunkVolume),
		dirty:  true,
	}
}

func blockIndex(x, y, z int) int {
	return x + z*ChunkSizeX + y*ChunkSizeX*ChunkSizeZ
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// GetBlock returns the block at local coordinates. Out-of-range reads return
// air, which lets callers probe one cell past the chunk edge without
// special-casing the boundary.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !inBounds(x, y, z) {
		return BlockTypeAir
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlock writes one cell. Writing out of range is a caller contract
// violation and panics rather than silently dropping the write.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if !inBounds(x, y, z) {
		panic(fmt.Sprintf("world: SetBlock out of chunk bounds: (%d,%d,%d)", x, y, z))
	}
	idx := blockIndex(x, y, z)
	if c.blocks[idx] != blockType {
		c.blocks[idx] = blockType
		c.dirty = true
	}
}

// IsAir checks if the block at the specified local coordinates is air
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// IsDirty returns whether the chunk has been modified since last mesh build
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// SetClean marks the chunk as clean (not modified)
func (c *Chunk) SetClean() {
	c.dirty = false
}
