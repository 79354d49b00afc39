// Package session keeps the shells of connected clients, one per session id.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/shell"
)

var ErrSessionNotFound = errors.New("session not found")

const minSweep = time.Second

// Connect opens a fresh backend connection with its own auth state.
type Connect func() gateway.Gateway

type entry struct {
	shell    *shell.Shell
	lastSeen time.Time
}

type Manager struct {
	connect Connect
	opts    shell.Options
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewManager(connect Connect, opts shell.Options, ttl time.Duration) *Manager {
	return &Manager{
		connect:  connect,
		opts:     opts,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Create starts a shell on a new connection and registers it.
func (m *Manager) Create(ctx context.Context) (string, *shell.Shell, error) {
	sh, err := shell.New(ctx, m.connect(), m.opts)
	if err != nil {
		return "", nil, fmt.Errorf("start shell: %w", err)
	}
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = &entry{shell: sh, lastSeen: m.now()}
	m.mu.Unlock()

	zap.L().Debug("session created", zap.String("session", id))
	return id, sh, nil
}

// Get returns the shell of id and marks the session as used.
func (m *Manager) Get(id string) (*shell.Shell, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	select {
	case <-e.shell.Done():
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	default:
	}
	e.lastSeen = m.now()
	return e.shell, nil
}

// Do runs fn on the shell of id and returns the view right after it.
func (m *Manager) Do(id string, fn func(sh *shell.Shell) error) (shell.View, error) {
	sh, err := m.Get(id)
	if err != nil {
		return shell.View{}, err
	}
	if err := fn(sh); err != nil {
		return shell.View{}, err
	}
	return sh.View()
}

func (m *Manager) Destroy(id string) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	e.shell.Close()
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Evict closes sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Manager) Evict() int {
	deadline := m.now().Add(-m.ttl)

	m.mu.Lock()
	var idle []*shell.Shell
	for id, e := range m.sessions {
		if e.lastSeen.Before(deadline) {
			idle = append(idle, e.shell)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, sh := range idle {
		sh.Close()
	}
	return len(idle)
}

// Run sweeps idle sessions until ctx is done, then closes the rest.
func (m *Manager) Run(ctx context.Context) error {
	interval := m.ttl / 2
	if interval < minSweep {
		interval = minSweep
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.CloseAll()
			return nil
		case <-ticker.C:
			if n := m.Evict(); n > 0 {
				zap.L().Info("evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}

func (m *Manager) CloseAll() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*entry)
	m.mu.Unlock()

	var wg sync.WaitGroup
	for _, e := range all {
		wg.Add(1)
		go func(sh *shell.Shell) {
			defer wg.Done()
			sh.Close()
		}(e.shell)
	}
	wg.Wait()
}
