package parallel

import (
	"fmt"
	"sync"

	"github.com/probgen/heredity/pkg/logging"
)

// WorkerPool manages a fixed pool of worker goroutines draining a task
// queue. It exists so enumeration shards can run concurrently while each
// shard owns its own accumulator; the pool itself carries no shared state
// between tasks.
type WorkerPool struct {
	workers   int
	taskQueue chan func()
	logger    logging.Logger
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // protects taskQueue from concurrent close during send
	closed    bool         // protected by mu
}

// NewWorkerPool creates a pool with the given number of workers. A count
// below one is clamped to one.
func NewWorkerPool(workers int, logger logging.Logger) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func(), workers*2),
		logger:    logger,
	}

	for i := 0; i < pool.workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// worker drains tasks from the queue until the queue closes.
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		// A panicking task must not take the worker down with it
		func() {
			defer func() {
				if r := recover(); r != nil {
					wp.logger.Error("worker recovered from task panic",
						logging.Any("panic", fmt.Sprintf("%v", r)))
				}
			}()
			task()
		}()
	}
}

// Submit adds a task to the pool. It returns false if the pool is closed.
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}
	wp.taskQueue <- task
	return true
}

// Close stops accepting tasks and blocks until queued tasks finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}

// Wait waits for all submitted tasks to complete. The pool cannot be
// reused afterwards.
func (wp *WorkerPool) Wait() {
	wp.Close()
}

// Workers returns the worker count the pool was created with.
func (wp *WorkerPool) Workers() int {
	return wp.workers
}
