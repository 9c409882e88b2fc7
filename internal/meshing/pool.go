package meshing

import (
	"context"
	"sync"
)

// MeshJob represents a tessellation request
type MeshJob struct {
	Index  int
	Detail Detail
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a tessellation
type MeshResult struct {
	Index int
	Mesh  *Mesh
}

// WorkerPool manages goroutines for mesh generation
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new mesh worker pool
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	// Start worker goroutines
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// SubmitJobBlocking submits a job and blocks until it's queued
func (p *WorkerPool) SubmitJobBlocking(job MeshJob) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

// worker is the worker goroutine that processes mesh jobs
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := MeshResult{
				Index: job.Index,
				Mesh:  BuildSphere(job.Detail),
			}

			// Send result back
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
	close(p.jobQueue)
	p.wg.Wait()
}

// BuildProxies tessellates every detail concurrently and returns the meshes
// in the order of details.
func BuildProxies(ctx context.Context, details []Detail) ([]*Mesh, error) {
	pool := NewWorkerPool(len(details), len(details))
	defer pool.Shutdown()

	results := make(chan MeshResult, len(details))
	for i, d := range details {
		pool.SubmitJobBlocking(MeshJob{Index: i, Detail: d, ResultChan: results})
	}

	meshes := make([]*Mesh, len(details))
	for range details {
		select {
		case r := <-results:
			meshes[r.Index] = r.Mesh
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return meshes, nil
}
