package pggateway

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWorkers = 10
	defaultBackoff = time.Second * 2
)

type watch struct {
	id      uint64
	refresh func() error

	// mu serializes refreshes so a slower, older query never overwrites the
	// snapshot of a newer one.
	mu sync.Mutex
	// set while a refresh waits in the pool and has not started its query
	queued atomic.Bool
}

func (w *watch) run() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queued.Store(false)
	return w.refresh()
}

// Hub turns document notifications into snapshot refreshes for the live
// subscriptions of the changed collection.
type Hub struct {
	listener Listener
	pool     *workerPool
	backoff  time.Duration

	mu      sync.Mutex
	watches map[string]map[uint64]*watch
	next    uint64
}

func NewHub(listener Listener, workers int) *Hub {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Hub{
		listener: listener,
		pool:     newWorkerPool(workers),
		backoff:  defaultBackoff,
		watches:  make(map[string]map[uint64]*watch),
	}
}

// Watch registers refresh for collection and returns the function removing it.
func (h *Hub) Watch(collection string, refresh func() error) func() {
	_, unwatch := h.add(collection, refresh)
	return unwatch
}

// Subscribe registers refresh and runs it once before returning. Changes
// committed after registration reach the watch even while the first run is
// still querying.
func (h *Hub) Subscribe(collection string, refresh func() error) (func(), error) {
	w, unwatch := h.add(collection, refresh)
	if err := w.run(); err != nil {
		unwatch()
		return nil, err
	}
	return unwatch, nil
}

func (h *Hub) add(collection string, refresh func() error) (*watch, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	w := &watch{id: h.next, refresh: refresh}
	if h.watches[collection] == nil {
		h.watches[collection] = make(map[uint64]*watch)
	}
	h.watches[collection][w.id] = w

	return w, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.watches[collection], w.id)
		if len(h.watches[collection]) == 0 {
			delete(h.watches, collection)
		}
	}
}

func (h *Hub) Watches() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, ws := range h.watches {
		n += len(ws)
	}
	return n
}

// Run listens until ctx ends, reconnecting after failures.
func (h *Hub) Run(ctx context.Context) error {
	zap.L().Info("Document hub started")
	defer h.pool.close()

	for {
		err := h.listen(ctx)
		if ctx.Err() != nil {
			zap.L().Info("Context canceled, stopping document hub")
			return nil
		}
		zap.L().Error("Document listener failed, reconnecting", zap.Error(err), zap.Duration("backoff", h.backoff))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(h.backoff):
		}
	}
}

func (h *Hub) listen(ctx context.Context) error {
	notes, err := h.listener.Listen(ctx)
	if err != nil {
		return err
	}
	defer notes.Close(context.Background())

	// writes may have landed while no one was listening
	h.dispatch(ctx, h.collections()...)

	for {
		n, err := notes.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		h.dispatch(ctx, n.Payload)
	}
}

func (h *Hub) collections() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.watches))
	for name := range h.watches {
		names = append(names, name)
	}
	return names
}

func (h *Hub) dispatch(ctx context.Context, collections ...string) {
	var targets []*watch
	h.mu.Lock()
	for _, c := range collections {
		for _, w := range h.watches[c] {
			targets = append(targets, w)
		}
	}
	h.mu.Unlock()

	var g errgroup.Group
	for _, w := range targets {
		w := w

		// a queued refresh has not queried yet and will see this change
		if !w.queued.CompareAndSwap(false, true) {
			continue
		}

		g.Go(func() error {
			if err := h.pool.add(ctx, w.run); err != nil {
				w.queued.Store(false)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Warn("Error scheduling refreshes", zap.Error(err))
	}
}
