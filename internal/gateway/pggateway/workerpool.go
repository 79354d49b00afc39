package pggateway

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type task func() error

// workerPool runs refresh tasks on a fixed number of goroutines.
type workerPool struct {
	tasks chan task
	wg    sync.WaitGroup
	once  sync.Once
}

func newWorkerPool(size int) *workerPool {
	if size < 1 {
		size = 1
	}
	wp := &workerPool{tasks: make(chan task, size)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *workerPool) worker() {
	defer wp.wg.Done()
	for t := range wp.tasks {
		if err := t(); err != nil {
			zap.L().Warn("Snapshot refresh failed", zap.Error(err))
		}
	}
}

// add queues t, waiting for a free slot until ctx ends.
func (wp *workerPool) add(ctx context.Context, t task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- t:
		return nil
	}
}

// close stops accepting tasks and waits for queued ones to finish.
func (wp *workerPool) close() {
	wp.once.Do(func() {
		close(wp.tasks)
	})
	wp.wg.Wait()
}
