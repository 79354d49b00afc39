package gateway

import (
	"context"
	"sync"
)

// Feed is the consumer side of a live subscription. Values are coalesced: a
// value the consumer has not received yet is replaced by a newer one, so a
// slow consumer always sees the latest state and never stalls the producer.
type Feed[T any] struct {
	ch   chan T
	done chan struct{}
	mu   sync.Mutex
	once sync.Once
	stop func()
}

// NewFeed creates a feed that ends when ctx is cancelled or Cancel is called.
// onStop runs once when the feed ends.
func NewFeed[T any](ctx context.Context, onStop func()) *Feed[T] {
	f := &Feed[T]{
		ch:   make(chan T, 1),
		done: make(chan struct{}),
		stop: onStop,
	}
	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				f.Cancel()
			case <-f.done:
			}
		}()
	}
	return f
}

func (f *Feed[T]) C() <-chan T {
	return f.ch
}

func (f *Feed[T]) Done() <-chan struct{} {
	return f.done
}

// Push publishes v. It never blocks and reports false once the feed ended.
func (f *Feed[T]) Push(v T) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	select {
	case <-f.done:
		return false
	default:
	}
	select {
	case <-f.ch:
	default:
	}
	f.ch <- v
	return true
}

func (f *Feed[T]) Cancel() {
	f.once.Do(func() {
		f.mu.Lock()
		close(f.done)
		f.mu.Unlock()
		if f.stop != nil {
			f.stop()
		}
	})
}
