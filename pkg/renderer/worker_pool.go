package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// ColumnTask represents a column rendering task for the worker pool
type ColumnTask struct {
	Column int
	TaskID int
}

// ColumnResult contains the result from rendering a column
type ColumnResult struct {
	TaskID int
	Column int
	Stats  RenderStats
}

// WorkerPool manages parallel column rendering. Each column is owned by
// exactly one task, so no two workers write the same pixel.
type WorkerPool struct {
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual column rendering tasks
type Worker struct {
	ID          int
	renderer    *ColumnRenderer
	framebuffer *Framebuffer
	seed        int64
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Queues are sized to hold every column so submission never blocks.
func NewWorkerPool(renderer *ColumnRenderer, framebuffer *Framebuffer, numColumns, numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ColumnTask, numColumns),
		resultQueue: make(chan ColumnResult, numColumns),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			framebuffer: framebuffer,
			seed:        seed,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued tasks to finish and shuts the workers down
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a column task to the worker pool
func (wp *WorkerPool) SubmitTask(task ColumnTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed column result
func (wp *WorkerPool) GetResult() (ColumnResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Seeding per column keeps the output independent of scheduling
		sampler := core.NewSeededSampler(w.seed + int64(task.Column))
		stats := w.renderer.RenderColumn(task.Column, w.framebuffer, sampler)

		w.resultQueue <- ColumnResult{
			TaskID: task.TaskID,
			Column: task.Column,
			Stats:  stats,
		}
	}
}
