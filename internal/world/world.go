package world

import (
	"sync"
)

// Neighborhood resolves the chunk owning a chunk-grid coordinate. The mesher
// consults it only for cross-chunk visibility at chunk edges. A nil result
// means the chunk is not loaded.
type Neighborhood interface {
	GetChunk(coord ChunkCoord) *Chunk
}

// World is a map of loaded chunks plus the terrain generator that seeds new
// ones. It is the process's Neighborhood implementation.
type World struct {
	mu     sync.RWMutex
	chunks map[ChunkCoord]*Chunk
	gen    *Generator
}

// New creates a world whose chunks are seeded by the given terrain seed.
func New(seed int64) *World {
	return &World{
		chunks: make(map[ChunkCoord]*Chunk),
		gen:    NewGenerator(seed),
	}
}

// NewEmpty creates a world with no generator; loaded chunks start all-air.
// Used by tests and tools that place blocks by hand.
func NewEmpty() *World {
	return &World{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetChunk returns the loaded chunk at coord, or nil.
func (w *World) GetChunk(coord ChunkCoord) *Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.chunks[coord]
}

// LoadChunk returns the chunk at coord, creating and populating it first if
// it is not loaded yet.
func (w *World) LoadChunk(coord ChunkCoord) *Chunk {
	w.mu.RLock()
	c := w.chunks[coord]
	w.mu.RUnlock()
	if c != nil {
		return c
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if c = w.chunks[coord]; c != nil {
		return c
	}
	c = NewChunk(coord)
	if w.gen != nil {
		w.gen.PopulateChunk(c)
	}
	w.chunks[coord] = c
	return c
}

// UnloadChunk drops the chunk at coord, if loaded.
func (w *World) UnloadChunk(coord ChunkCoord) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.chunks, coord)
}

// Chunks returns a snapshot of all loaded chunks.
func (w *World) Chunks() []*Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		out = append(out, c)
	}
	return out
}

// BlockAt returns the block at world coordinates. Unloaded chunks and
// out-of-height coordinates read as air.
func (w *World) BlockAt(x, y, z int) BlockType {
	coord := ChunkCoord{X: floorDiv(x, ChunkSizeX), Z: floorDiv(z, ChunkSizeZ)}
	c := w.GetChunk(coord)
	if c == nil {
		return BlockTypeAir
	}
	return c.GetBlock(floorMod(x, ChunkSizeX), y, floorMod(z, ChunkSizeZ))
}

// SetBlockAt writes the block at world coordinates, loading the owning chunk
// if needed.
func (w *World) SetBlockAt(x, y, z int, blockType BlockType) {
	coord := ChunkCoord{X: floorDiv(x, ChunkSizeX), Z: floorDiv(z, ChunkSizeZ)}
	c := w.LoadChunk(coord)
	c.SetBlock(floorMod(x, ChunkSizeX), y, floorMod(z, ChunkSizeZ), blockType)
}

// HeightAt returns the terrain surface height at world (x,z), or 0 when the
// world has no generator.
func (w *World) HeightAt(x, z int) int {
	if w.gen == nil {
		return 0
	}
	return w.gen.HeightAt(x, z)
}

// IsAir checks the block at world coordinates.
func (w *World) IsAir(x, y, z int) bool {
	return w.BlockAt(x, y, z) == BlockTypeAir
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

func floorMod(a, n int) int {
	m := a % n
	if m != 0 && (m < 0) != (n < 0) {
		m += n
	}
	return m
}
