package renderer

import (
	"runtime"
	"sync"
)

// RowTask represents a band of image rows for the worker pool
type RowTask struct {
	StartRow int   // First row, inclusive
	EndRow   int   // Last row, exclusive
	Seed     int64 // Seed for this band's sampler, for deterministic renders
}

// RowResult contains the result from rendering a band of rows
type RowResult struct {
	StartRow int
	Samples  int // Total samples traced for the band
	Err      error
}

// WorkerPool renders row bands in parallel. Bands are disjoint, so workers
// can write into a shared pixel buffer without locking.
type WorkerPool struct {
	numWorkers  int
	taskQueue   chan RowTask
	resultQueue chan RowResult
	render      func(RowTask) RowResult
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool running the given render function.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(numWorkers, maxTasks int, render func(RowTask) RowResult) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers:  numWorkers,
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		render:      render,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Submit queues a row band for rendering
func (wp *WorkerPool) Submit(task RowTask) {
	wp.taskQueue <- task
}

// Stop signals that no more tasks are coming and waits for the workers to
// drain the queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the channel of completed band results
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.resultQueue <- wp.render(task)
	}
}
