package world

import (
	"math"
)

// Generator seeds new chunks with a deterministic per-column heightmap. It
// stands in for a full world generator; anything that fills columns from a
// height function of the chunk coordinate can replace it.
type Generator struct {
	seed        int64
	scale       float64
	baseHeight  int
	amp         float64
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewGenerator creates a new generator with default settings.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:        seed,
		scale:       1.0 / 64.0,
		baseHeight:  32,
		amp:         24,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

// HeightAt computes the surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale
	n := octaveNoise2D(x, z, g.seed, g.octaves, g.persistence, g.lacunarity)
	height := float64(g.baseHeight) + n*g.amp
	if height < 1 {
		height = 1
	}
	if height > ChunkSizeY-1 {
		height = ChunkSizeY - 1
	}
	return int(math.Floor(height))
}

// PopulateChunk fills a chunk column by column: bedrock floor, stone body,
// dirt cap, grass on top.
func (g *Generator) PopulateChunk(c *Chunk) {
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			worldX := c.Coord.X*ChunkSizeX + lx
			worldZ := c.Coord.Z*ChunkSizeZ + lz
			height := g.HeightAt(worldX, worldZ)

			c.SetBlock(lx, 0, lz, BlockTypeBedrock)
			for ly := 1; ly < height; ly++ {
				if ly < height-3 {
					c.SetBlock(lx, ly, lz, BlockTypeStone)
				} else {
					c.SetBlock(lx, ly, lz, BlockTypeDirt)
				}
			}
			c.SetBlock(lx, height, lz, BlockTypeGrass)
		}
	}
	c.dirty = true
}
