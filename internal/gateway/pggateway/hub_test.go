package pggateway

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifications struct {
	ch     chan string
	closed atomic.Bool
}

func (n *fakeNotifications) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case payload, ok := <-n.ch:
		if !ok {
			return nil, errors.New("connection lost")
		}
		return &pgconn.Notification{Channel: Channel, Payload: payload}, nil
	}
}

func (n *fakeNotifications) Close(ctx context.Context) {
	n.closed.Store(true)
}

type fakeListener struct {
	sessions chan *fakeNotifications
	failures atomic.Int32
	calls    atomic.Int32
}

func (l *fakeListener) Listen(ctx context.Context) (Notifications, error) {
	l.calls.Add(1)
	if l.failures.Load() > 0 {
		l.failures.Add(-1)
		return nil, errors.New("connection refused")
	}
	select {
	case n := <-l.sessions:
		return n, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestHub_Run(t *testing.T) {
	first := &fakeNotifications{ch: make(chan string)}
	second := &fakeNotifications{ch: make(chan string)}
	listener := &fakeListener{sessions: make(chan *fakeNotifications, 2)}
	listener.failures.Store(1)
	listener.sessions <- first
	listener.sessions <- second

	hub := NewHub(listener, 2)
	hub.backoff = 10 * time.Millisecond

	var tasks, users atomic.Int32
	hub.Watch("tasks", func() error { tasks.Add(1); return nil })
	unwatch := hub.Watch("users", func() error { users.Add(1); return nil })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx) }()

	// the connect after the failed attempt resyncs every watch
	require.Eventually(t, func() bool { return tasks.Load() == 1 && users.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(2), listener.calls.Load())

	first.ch <- "tasks"
	require.Eventually(t, func() bool { return tasks.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), users.Load())

	unwatch()
	close(first.ch)
	require.Eventually(t, func() bool { return tasks.Load() == 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, first.closed.Load())
	assert.Equal(t, int32(1), users.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	assert.True(t, second.closed.Load())
}

func TestHub_WatchRemoval(t *testing.T) {
	hub := NewHub(nil, 1)

	stopA := hub.Watch("tasks", func() error { return nil })
	stopB := hub.Watch("tasks", func() error { return nil })
	assert.Equal(t, 2, hub.Watches())
	assert.ElementsMatch(t, []string{"tasks"}, hub.collections())

	stopA()
	stopB()
	assert.Equal(t, 0, hub.Watches())
	assert.Empty(t, hub.collections())
}

func TestHub_RefreshesOfOneWatchDoNotOverlap(t *testing.T) {
	hub := NewHub(nil, 4)
	defer hub.pool.close()
	ctx := context.Background()

	var (
		version, last         atomic.Int64
		calls, inFlight, peak atomic.Int32
	)
	started := make(chan struct{}, 4)
	release := make(chan struct{})
	hub.Watch("tasks", func() error {
		if n := inFlight.Add(1); n > peak.Load() {
			peak.Store(n)
		}
		defer inFlight.Add(-1)

		read := version.Load()
		call := calls.Add(1)
		started <- struct{}{}
		if call == 1 {
			<-release
		}
		last.Store(read)
		return nil
	})

	version.Store(1)
	hub.dispatch(ctx, "tasks")
	<-started

	// arrives while the first refresh is still querying
	version.Store(2)
	hub.dispatch(ctx, "tasks")
	// coalesced into the refresh queued above
	version.Store(3)
	hub.dispatch(ctx, "tasks")

	close(release)
	<-started
	require.Eventually(t, func() bool { return last.Load() == 3 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return calls.Load() > 2 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, int32(1), peak.Load())
	assert.Equal(t, int64(3), last.Load())
}

func TestHub_Subscribe(t *testing.T) {
	hub := NewHub(nil, 1)
	defer hub.pool.close()

	var registered bool
	unwatch, err := hub.Subscribe("tasks", func() error {
		registered = hub.Watches() == 1
		return nil
	})
	require.NoError(t, err)
	assert.True(t, registered, "watch must be live before the first query")
	assert.Equal(t, 1, hub.Watches())
	unwatch()
	assert.Equal(t, 0, hub.Watches())

	_, err = hub.Subscribe("tasks", func() error { return errors.New("query failed") })
	assert.Error(t, err)
	assert.Equal(t, 0, hub.Watches())
}
