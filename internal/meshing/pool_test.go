package meshing

import (
	"testing"
	"time"

	"voxelforge/internal/world"
)

func TestWorkerPoolMeshesChunks(t *testing.T) {
	a := testAtlas(t)
	w := world.New(7)

	coords := []world.ChunkCoord{
		{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 0, Z: 1}, {X: -1, Z: -1},
	}
	for _, coord := range coords {
		w.LoadChunk(coord)
	}

	pool := NewWorkerPool(a, 2, 8, 1)
	defer pool.Shutdown()

	results := make(chan MeshResult, len(coords))
	for _, coord := range coords {
		pool.SubmitJobBlocking(MeshJob{
			Neighborhood: w,
			Chunk:        w.GetChunk(coord),
			ResultChan:   results,
		})
	}

	// Quad counts are rotation-independent, so pool output must match a
	// synchronous build exactly.
	ref := NewMesher(a, nil)
	want := make(map[world.ChunkCoord]int, len(coords))
	for _, coord := range coords {
		want[coord] = ref.BuildChunkMesh(w, w.GetChunk(coord)).QuadCount()
	}

	for range coords {
		select {
		case res := <-results:
			if res.Mesh == nil {
				t.Fatalf("Chunk %v: nil mesh", res.Coord)
			}
			if got := res.Mesh.QuadCount(); got != want[res.Coord] {
				t.Errorf("Chunk %v: got %d quads, want %d", res.Coord, got, want[res.Coord])
			}
		case <-time.After(10 * time.Second):
			t.Fatal("Timed out waiting for mesh results")
		}
	}
}

func TestWorkerPoolSubmitNonBlocking(t *testing.T) {
	a := testAtlas(t)
	pool := NewWorkerPool(a, 0, 1, 1) // no workers: queue fills up
	defer pool.Shutdown()

	c := world.NewChunk(world.ChunkCoord{})
	job := MeshJob{Chunk: c, ResultChan: make(chan MeshResult, 1)}

	if !pool.SubmitJob(job) {
		t.Fatal("First submit should succeed")
	}
	if pool.SubmitJob(job) {
		t.Fatal("Second submit should report a full queue")
	}
	if pool.QueueLength() != 1 {
		t.Fatalf("Queue length %d, want 1", pool.QueueLength())
	}
}
