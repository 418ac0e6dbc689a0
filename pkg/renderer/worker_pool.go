package renderer

import (
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-mc-renderer/pkg/core"
)

// PixelTask asks a worker to estimate one pixel
type PixelTask struct {
	X, Y int
}

// PixelResult carries the finished estimate for one pixel
type PixelResult struct {
	X, Y  int
	Color core.Vec3
}

// PixelFunc computes the estimate for a task. It is called concurrently.
type PixelFunc func(task PixelTask) core.Vec3

// WorkerPool runs a fixed number of goroutines over a shared task queue.
// Results arrive on a single queue in completion order.
type WorkerPool struct {
	taskQueue   chan PixelTask
	resultQueue chan PixelResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual pixel tasks
type Worker struct {
	ID          int
	shade       PixelFunc
	taskQueue   chan PixelTask
	resultQueue chan PixelResult
}

// logicalCPUs reports the host's logical processing units
var logicalCPUs = func() (int, error) {
	return cpu.Counts(true)
}

// ResolveWorkerCount returns configured when positive, otherwise the number of
// logical CPUs on the host. The result is at least 1.
func ResolveWorkerCount(configured int) int {
	if configured > 0 {
		return configured
	}
	if n, err := logicalCPUs(); err == nil && n > 0 {
		return n
	}
	return max(runtime.NumCPU(), 1)
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int, shade PixelFunc) *WorkerPool {
	numWorkers = ResolveWorkerCount(numWorkers)

	wp := &WorkerPool{
		taskQueue:   make(chan PixelTask, numWorkers*4),
		resultQueue: make(chan PixelResult, numWorkers*4),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			shade:       shade,
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

// Stop closes the task queue, waits for every worker to exit and then closes
// the result queue. Call it once, after the last SubmitTask.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a pixel task to the worker pool, blocking while the queue is full
func (wp *WorkerPool) SubmitTask(task PixelTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed pixel result; ok is false once the pool is stopped and drained
func (wp *WorkerPool) GetResult() (PixelResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- PixelResult{
			X:     task.X,
			Y:     task.Y,
			Color: w.shade(task),
		}
	}
}
