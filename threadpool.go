package ethbls

import (
	"golang.org/x/sync/errgroup"

	"github.com/ellipticforge/ethbls/internal/logger"
)

// Threadpool runs a fixed number of workers draining a shared task queue.
// It backs BatchVerifyParallel.
//
// A handle is owned by the goroutine that created it: it must not be shared
// or transferred, exactly one pool should be active per owner at a time, and
// Shutdown must be called by the owner before creating another. Submitting
// after Shutdown, or a second Shutdown, is a programmer-usage error outside
// the contract (it panics); it is not a recoverable status.
type Threadpool struct {
	tasks      chan func()
	workers    errgroup.Group
	numWorkers int
}

// NewThreadpool creates a pool of numThreads workers. Values below 1 are
// clamped to 1.
func NewThreadpool(numThreads int) *Threadpool {
	if numThreads < 1 {
		numThreads = 1
	}
	tp := &Threadpool{
		tasks:      make(chan func(), numThreads),
		numWorkers: numThreads,
	}
	for i := 0; i < numThreads; i++ {
		tp.workers.Go(func() error {
			for task := range tp.tasks {
				task()
			}
			return nil
		})
	}
	log := logger.Logger()
	log.Debug().Int("workers", numThreads).Msg("threadpool started")
	return tp
}

// NumWorkers returns the number of worker goroutines in the pool.
func (tp *Threadpool) NumWorkers() int {
	return tp.numWorkers
}

// Submit enqueues a task. It blocks while the queue is full.
func (tp *Threadpool) Submit(task func()) {
	tp.tasks <- task
}

// Shutdown drains all pending tasks and joins the workers. The handle must
// not be used afterwards.
func (tp *Threadpool) Shutdown() {
	close(tp.tasks)
	_ = tp.workers.Wait()
	log := logger.Logger()
	log.Debug().Int("workers", tp.numWorkers).Msg("threadpool stopped")
}
