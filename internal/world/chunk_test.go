package world

import "testing"

func TestChunkSetGet(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	c.SetBlock(3, 70, 9, BlockTypeStone)
	if b := c.GetBlock(3, 70, 9); b != BlockTypeStone {
		t.Errorf("Expected Stone, got %v", b)
	}
	if b := c.GetBlock(3, 71, 9); b != BlockTypeAir {
		t.Errorf("Expected Air, got %v", b)
	}
}

func TestChunkOutOfBoundsReadIsAir(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			for y := 0; y < ChunkSizeY; y++ {
				c.SetBlock(x, y, z, BlockTypeStone)
			}
		}
	}

	probes := [][3]int{
		{-1, 0, 0}, {ChunkSizeX, 0, 0},
		{0, -1, 0}, {0, ChunkSizeY, 0},
		{0, 0, -1}, {0, 0, ChunkSizeZ},
	}
	for _, p := range probes {
		if b := c.GetBlock(p[0], p[1], p[2]); b != BlockTypeAir {
			t.Errorf("Expected Air at out-of-bounds %v, got %v", p, b)
		}
	}
}

func TestChunkOutOfBoundsWritePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on out-of-bounds SetBlock")
		}
	}()
	c := NewChunk(ChunkCoord{})
	c.SetBlock(ChunkSizeX, 0, 0, BlockTypeStone)
}

func TestChunkDirtyFlag(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	c.SetClean()
	if c.IsDirty() {
		t.Fatal("Expected clean chunk")
	}
	c.SetBlock(0, 0, 0, BlockTypeDirt)
	if !c.IsDirty() {
		t.Fatal("Expected dirty chunk after SetBlock")
	}
	c.SetClean()
	// Writing the same value again must not re-dirty
	c.SetBlock(0, 0, 0, BlockTypeDirt)
	if c.IsDirty() {
		t.Fatal("Expected no-op write to keep chunk clean")
	}
}

func TestWorldCoordinateMapping(t *testing.T) {
	w := NewEmpty()
	w.SetBlockAt(-1, 10, -1, BlockTypeSand)

	c := w.GetChunk(ChunkCoord{X: -1, Z: -1})
	if c == nil {
		t.Fatal("Expected chunk (-1,-1) to be loaded")
	}
	if b := c.GetBlock(ChunkSizeX-1, 10, ChunkSizeZ-1); b != BlockTypeSand {
		t.Errorf("Expected Sand at wrapped local coords, got %v", b)
	}
	if b := w.BlockAt(-1, 10, -1); b != BlockTypeSand {
		t.Errorf("Expected Sand via BlockAt, got %v", b)
	}
	if !w.IsAir(5, 10, 5) {
		t.Error("Expected unloaded region to read as air")
	}
}
