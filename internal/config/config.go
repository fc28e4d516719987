package config

import (
	"runtime"
	"sync"
)

// Settings holds process-wide tuning knobs
type Settings struct {
	mu          sync.RWMutex
	meshWorkers int
	viewRadius  int // in chunks
}

var globalSettings = &Settings{
	meshWorkers: runtime.NumCPU(),
	viewRadius:  8, // default value
}

// GetMeshWorkers returns the number of concurrent mesh workers
func GetMeshWorkers() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.meshWorkers
}

// SetMeshWorkers sets the number of concurrent mesh workers
func SetMeshWorkers(n int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	// Clamp to reasonable values
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}

	globalSettings.meshWorkers = n
}

// GetViewRadius returns the current view radius in chunks
func GetViewRadius() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.viewRadius
}

// SetViewRadius sets the view radius in chunks
func SetViewRadius(radius int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if radius < 1 {
		radius = 1
	}
	if radius > 32 {
		radius = 32
	}

	globalSettings.viewRadius = radius
}

// GetMeshQueueSize returns the job queue depth for the mesh worker pool
// (deep enough to keep a full view ring in flight)
func GetMeshQueueSize() int {
	r := GetViewRadius()
	return (2*r + 1) * (2*r + 1)
}
