package meshing

import (
	"context"
	"math/rand"
	"sync"

	"voxelforge/internal/atlas"
	"voxelforge/internal/world"
)

// MeshJob represents a meshing job request
type MeshJob struct {
	Neighborhood world.Neighborhood
	Chunk        *world.Chunk
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	Coord world.ChunkCoord
	Mesh  *Mesh
}

// WorkerPool meshes different chunks concurrently. Each worker owns its own
// Mesher and rand source, so UV rotation needs no locking; the shared atlas
// is read-only by the time the pool starts.
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a mesh worker pool. The seed derives each worker's
// rotation rand source, so a fixed seed gives reproducible meshes per
// worker.
func NewWorkerPool(a *atlas.Atlas, workers, queueSize int, seed int64) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(NewMesher(a, rand.New(rand.NewSource(seed+int64(i)))))
	}

	return pool
}

// SubmitJob submits a mesh generation job to the pool.
// Returns true if job was submitted successfully, false if queue is full.
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false // Queue is full
	}
}

// SubmitJobBlocking submits a job and blocks until it's queued
func (p *WorkerPool) SubmitJobBlocking(job MeshJob) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

func (p *WorkerPool) worker(m *Mesher) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := MeshResult{
				Coord: job.Chunk.Coord,
				Mesh:  m.BuildChunkMesh(job.Neighborhood, job.Chunk),
			}
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown gracefully shuts down the worker pool
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the current number of jobs in the queue
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}
