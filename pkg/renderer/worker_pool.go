package renderer

import (
	"runtime"
	"sync"
)

// rowTask is one unit of parallel work: a single scanline of the canvas.
// Rows are disjoint, so workers write to the shared canvas without locking.
type rowTask struct {
	Y int
}

// workerPool fans rowTasks out over a fixed set of goroutines.
type workerPool struct {
	taskQueue  chan rowTask
	numWorkers int
	wg         sync.WaitGroup
}

// newWorkerPool creates a pool with the specified number of workers,
// defaulting to the CPU count.
func newWorkerPool(numWorkers, queueDepth int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		taskQueue:  make(chan rowTask, queueDepth),
		numWorkers: numWorkers,
	}
}

// start begins all workers, each draining the task queue through render.
func (wp *workerPool) start(render func(rowTask)) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				render(task)
			}
		}()
	}
}

// submit queues a task for rendering.
func (wp *workerPool) submit(task rowTask) {
	wp.taskQueue <- task
}

// wait closes the queue and blocks until every submitted task is done. This
// is the single join point before the canvas is handed to the caller.
func (wp *workerPool) wait() {
	close(wp.taskQueue)
	wp.wg.Wait()
}
