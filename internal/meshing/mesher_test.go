package meshing

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelforge/internal/atlas"
	"voxelforge/internal/registry"
	"voxelforge/internal/world"
)

func testAtlas(t testing.TB) *atlas.Atlas {
	t.Helper()
	reg := registry.Default()
	provider := atlas.MapProvider{}
	for _, path := range reg.TexturePaths() {
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				img.SetRGBA(x, y, color.RGBA{R: 128, A: 255})
			}
		}
		provider[path] = img
	}
	a, err := atlas.Build(reg, provider, atlas.DefaultCellsX, atlas.DefaultCellsY)
	if err != nil {
		t.Fatalf("Failed to build test atlas: %v", err)
	}
	return a
}

func TestAirChunkEmitsNothing(t *testing.T) {
	m := NewMesher(testAtlas(t), nil)
	c := world.NewChunk(world.ChunkCoord{})

	mesh := m.BuildChunkMesh(nil, c)
	if len(mesh.Vertices) != 0 || len(mesh.Indices) != 0 {
		t.Fatalf("Air chunk produced %d vertices, %d indices", len(mesh.Vertices), len(mesh.Indices))
	}
}

func TestSingleBlockSixQuads(t *testing.T) {
	m := NewMesher(testAtlas(t), nil)
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(8, 100, 8, world.BlockTypeStone)

	mesh := m.BuildChunkMesh(nil, c)
	if got := mesh.QuadCount(); got != 6 {
		t.Fatalf("Single block: got %d quads, want 6", got)
	}
	if len(mesh.Vertices) != 24 || len(mesh.Indices) != 36 {
		t.Fatalf("Single block: got %d vertices, %d indices, want 24/36", len(mesh.Vertices), len(mesh.Indices))
	}
	if len(mesh.Normals) != 24 || len(mesh.UVs) != 24 || len(mesh.Colors) != 24 {
		t.Fatal("Parallel buffers out of sync")
	}

	// Each direction's fixed normal must appear on exactly 4 vertices
	counts := make(map[mgl32.Vec3]int)
	for _, n := range mesh.Normals {
		counts[n]++
	}
	for face := world.BlockFace(0); face < world.FaceCount; face++ {
		if counts[world.FaceNormals[face]] != 4 {
			t.Errorf("Face %s: normal appears %d times, want 4", face, counts[world.FaceNormals[face]])
		}
	}

	// First quad uses winding 0-1-2, 0-2-3 over absolute positions
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, w := range want {
		if mesh.Indices[i] != w {
			t.Fatalf("Index %d: got %d, want %d", i, mesh.Indices[i], w)
		}
	}
}

func TestInteriorCellFullyOccluded(t *testing.T) {
	m := NewMesher(testAtlas(t), nil)
	c := world.NewChunk(world.ChunkCoord{})
	for x := 5; x <= 7; x++ {
		for y := 100; y <= 102; y++ {
			for z := 5; z <= 7; z++ {
				c.SetBlock(x, y, z, world.BlockTypeStone)
			}
		}
	}

	// A 3x3x3 cube exposes 9 faces per side; the center cell contributes
	// nothing.
	mesh := m.BuildChunkMesh(nil, c)
	if got := mesh.QuadCount(); got != 54 {
		t.Fatalf("3x3x3 cube: got %d quads, want 54", got)
	}
}

func TestCrossChunkFaceCulling(t *testing.T) {
	m := NewMesher(testAtlas(t), nil)
	w := world.NewEmpty()
	a := w.LoadChunk(world.ChunkCoord{X: 0, Z: 0})
	b := w.LoadChunk(world.ChunkCoord{X: 1, Z: 0})

	a.SetBlock(world.ChunkSizeX-1, 100, 5, world.BlockTypeStone)

	// Neighbor cell in B is air: east face exposed
	mesh := m.BuildChunkMesh(w, a)
	if got := mesh.QuadCount(); got != 6 {
		t.Fatalf("Air neighbor: got %d quads, want 6", got)
	}

	// Fill B's west-edge cell: east face must disappear
	b.SetBlock(0, 100, 5, world.BlockTypeStone)
	mesh = m.BuildChunkMesh(w, a)
	if got := mesh.QuadCount(); got != 5 {
		t.Fatalf("Solid neighbor: got %d quads, want 5", got)
	}

	// And B's own west face is hidden by A's edge cell
	meshB := m.BuildChunkMesh(w, b)
	if got := meshB.QuadCount(); got != 5 {
		t.Fatalf("Chunk B: got %d quads, want 5", got)
	}
}

func TestMissingNeighborTreatedSolid(t *testing.T) {
	m := NewMesher(testAtlas(t), nil)
	w := world.NewEmpty()
	a := w.LoadChunk(world.ChunkCoord{X: 0, Z: 0})

	// Corner cell: west and south neighbors live in unloaded chunks and
	// count as solid; east, north, top and bottom stay exposed.
	a.SetBlock(0, 100, 0, world.BlockTypeStone)
	mesh := m.BuildChunkMesh(w, a)
	if got := mesh.QuadCount(); got != 4 {
		t.Fatalf("Corner cell with unloaded neighbors: got %d quads, want 4", got)
	}
}

func TestWorldBoundaryColumns(t *testing.T) {
	// Lone chunk, solid below y=5, no neighbors loaded. Out-of-height
	// neighbors count as exposed in both directions, unloaded side chunks
	// as solid: the mesh is exactly the 256 top faces at y=4 plus the 256
	// bottom faces at y=0.
	m := NewMesher(testAtlas(t), nil)
	w := world.NewEmpty()
	c := w.LoadChunk(world.ChunkCoord{})
	for x := 0; x < world.ChunkSizeX; x++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			for y := 0; y < 5; y++ {
				c.SetBlock(x, y, z, world.BlockTypeStone)
			}
		}
	}

	mesh := m.BuildChunkMesh(w, c)
	wantQuads := 2 * world.ChunkSizeX * world.ChunkSizeZ
	if got := mesh.QuadCount(); got != wantQuads {
		t.Fatalf("Boundary columns: got %d quads, want %d", got, wantQuads)
	}

	up, down := 0, 0
	for _, n := range mesh.Normals {
		switch n {
		case world.FaceNormals[world.FaceTop]:
			up++
		case world.FaceNormals[world.FaceBottom]:
			down++
		default:
			t.Fatalf("Unexpected normal %v in boundary-column mesh", n)
		}
	}
	if up != down || up != wantQuads/2*4 {
		t.Fatalf("Got %d top / %d bottom normals, want %d each", up, down, wantQuads/2*4)
	}
}

func TestQuadUVOrderMatchesAtlas(t *testing.T) {
	a := testAtlas(t)
	m := NewMesher(a, nil)
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(0, 100, 0, world.BlockTypeGrass)

	mesh := m.BuildChunkMesh(nil, c)
	want := a.FaceUVs(world.BlockTypeGrass, world.FaceTop, nil)

	topNormal := world.FaceNormals[world.FaceTop]
	found := false
	for i := 0; i+3 < len(mesh.Normals); i += 4 {
		if mesh.Normals[i] != topNormal {
			continue
		}
		found = true
		for j := 0; j < 4; j++ {
			if mesh.UVs[i+j] != want[j] {
				t.Fatalf("Top face corner %d: UV %v, want %v", j, mesh.UVs[i+j], want[j])
			}
		}
	}
	if !found {
		t.Fatal("No top face emitted")
	}
}

func TestTintChannel(t *testing.T) {
	m := NewMesher(testAtlas(t), nil)
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(0, 100, 0, world.BlockTypeGrass)
	c.SetBlock(4, 100, 4, world.BlockTypeStone)

	mesh := m.BuildChunkMesh(nil, c)
	neutral := mgl32.Vec3{}
	bottomNormal := world.FaceNormals[world.FaceBottom]

	grassCell := mgl32.Vec3{0, 100, 0}
	for i, v := range mesh.Vertices {
		nearGrass := v.Sub(grassCell).Len() < 1.0
		tinted := mesh.Colors[i] != neutral
		if nearGrass && mesh.Normals[i] != bottomNormal && !tinted {
			t.Fatalf("Grass vertex %d (normal %v) missing tint", i, mesh.Normals[i])
		}
		if nearGrass && mesh.Normals[i] == bottomNormal && tinted {
			t.Fatalf("Grass bottom vertex %d unexpectedly tinted", i)
		}
		if !nearGrass && tinted {
			t.Fatalf("Stone vertex %d unexpectedly tinted", i)
		}
	}
}

func TestWeld(t *testing.T) {
	m := NewMesher(testAtlas(t), nil)
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(8, 100, 8, world.BlockTypeStone)

	mesh := m.BuildChunkMesh(nil, c)

	// Cube corners are shared by 3 faces but differ in normal and UV, so a
	// lone cube welds to the same 24 vertices; the triangle set must be
	// untouched.
	welded := Weld(mesh)
	if len(welded.Vertices) != 24 || len(welded.Indices) != 36 {
		t.Fatalf("Lone cube after weld: %d vertices, %d indices, want 24/36", len(welded.Vertices), len(welded.Indices))
	}

	// An exact duplicate quad must collapse onto the original's vertices.
	dup := &Mesh{}
	for n := 0; n < 2; n++ {
		base := uint32(len(dup.Vertices))
		for i := 0; i < 4; i++ {
			dup.Vertices = append(dup.Vertices, mesh.Vertices[i])
			dup.Normals = append(dup.Normals, mesh.Normals[i])
			dup.UVs = append(dup.UVs, mesh.UVs[i])
			dup.Colors = append(dup.Colors, mesh.Colors[i])
		}
		dup.Indices = append(dup.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	welded = Weld(dup)
	if len(welded.Vertices) != 4 {
		t.Fatalf("Duplicate quad after weld: %d vertices, want 4", len(welded.Vertices))
	}
	if len(welded.Indices) != 12 {
		t.Fatalf("Duplicate quad after weld: %d indices, want 12", len(welded.Indices))
	}
	for _, idx := range welded.Indices {
		if idx >= uint32(len(welded.Vertices)) {
			t.Fatalf("Welded index %d out of range", idx)
		}
	}
}

func BenchmarkBuildChunkMesh(b *testing.B) {
	m := NewMesher(testAtlas(b), nil)
	w := world.New(42)
	c := w.LoadChunk(world.ChunkCoord{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.BuildChunkMesh(w, c)
	}
}
