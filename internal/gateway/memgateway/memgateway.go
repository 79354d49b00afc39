// Package memgateway is an in-process backend used for local runs and tests.
// Documents live in memory and every write fans out fresh snapshots to the
// live subscriptions of the touched collection.
package memgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/pkg/auth"
)

type account struct {
	uid          string
	email        string
	passwordHash string
}

type collection struct {
	order []string
	docs  map[string]json.RawMessage
}

type watcher struct {
	collection string
	deliver    func(b *Backend)

	// held across query and push so deliveries leave in write order
	mu sync.Mutex
}

func (w *watcher) refresh(b *Backend) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.deliver(b)
}

type Backend struct {
	mu          sync.Mutex
	collections map[string]*collection
	accounts    map[string]account
	watchers    map[uint64]*watcher
	nextWatch   uint64

	hasher   auth.HashServiceInterface
	resets   gateway.ResetSender
	resetURL string
	now      func() time.Time
}

func New(hasher auth.HashServiceInterface, resets gateway.ResetSender, resetURL string) *Backend {
	return &Backend{
		collections: make(map[string]*collection),
		accounts:    make(map[string]account),
		watchers:    make(map[uint64]*watcher),
		hasher:      hasher,
		resets:      resets,
		resetURL:    resetURL,
		now:         time.Now,
	}
}

// Connect opens a client with its own auth state, like one app instance.
func (b *Backend) Connect() *Client {
	return &Client{backend: b}
}

// Put stores v under collection/id, replacing an existing document. It is the
// backend-side write used for seeding and for simulating approvals.
func (b *Backend) Put(collection, id string, v any) error {
	if fields, ok := v.(map[string]any); ok {
		v = gateway.ResolveFields(fields, b.now())
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, id, err)
	}

	b.mu.Lock()
	b.store(collection, id, data)
	b.mu.Unlock()

	b.notify(collection)
	return nil
}

func (b *Backend) Delete(collection, id string) {
	b.mu.Lock()
	c, ok := b.collections[collection]
	if ok {
		if _, exists := c.docs[id]; exists {
			delete(c.docs, id)
			for i, docID := range c.order {
				if docID == id {
					c.order = append(c.order[:i], c.order[i+1:]...)
					break
				}
			}
		}
	}
	b.mu.Unlock()

	if ok {
		b.notify(collection)
	}
}

// Watchers reports the number of live subscriptions.
func (b *Backend) Watchers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.watchers)
}

// store must be called with mu held.
func (b *Backend) store(name, id string, data json.RawMessage) {
	c, ok := b.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]json.RawMessage)}
		b.collections[name] = c
	}
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = data
}

func (b *Backend) notify(collection string) {
	b.mu.Lock()
	var targets []*watcher
	for _, w := range b.watchers {
		if w.collection == collection {
			targets = append(targets, w)
		}
	}
	b.mu.Unlock()

	for _, w := range targets {
		w.refresh(b)
	}
}

func (b *Backend) watch(w *watcher) func() {
	b.mu.Lock()
	b.nextWatch++
	id := b.nextWatch
	b.watchers[id] = w
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.watchers, id)
		b.mu.Unlock()
	}
}

func (b *Backend) query(q gateway.Query) gateway.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := gateway.Snapshot{Docs: []gateway.Document{}}
	c, ok := b.collections[q.Collection]
	if !ok {
		return snap
	}
	for _, id := range c.order {
		data := c.docs[id]
		if matches(data, q.Where) {
			snap.Docs = append(snap.Docs, gateway.Document{ID: id, Data: data})
		}
	}
	return snap
}

func (b *Backend) document(collection, id string) gateway.DocSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := gateway.DocSnapshot{ID: id}
	if c, ok := b.collections[collection]; ok {
		if data, ok := c.docs[id]; ok {
			snap.Exists = true
			snap.Data = data
		}
	}
	return snap
}

func matches(data json.RawMessage, where []gateway.Filter) bool {
	if len(where) == 0 {
		return true
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}
	for _, f := range where {
		v, ok := fields[f.Field]
		if !ok || v == nil || fmt.Sprint(v) != f.Value {
			return false
		}
	}
	return true
}

type Client struct {
	backend *Backend
	auth    gateway.AuthState
}

var _ gateway.Gateway = (*Client)(nil)

func (c *Client) SubscribeAuthState(ctx context.Context) (*gateway.Feed[*gateway.AuthUser], error) {
	return c.auth.Subscribe(ctx), nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*gateway.AuthUser, error) {
	email, err := gateway.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	c.backend.mu.Lock()
	acc, ok := c.backend.accounts[email]
	c.backend.mu.Unlock()

	if !ok || !c.backend.hasher.ComparePassword(acc.passwordHash, password) {
		return nil, gateway.ErrInvalidCredentials
	}
	user := &gateway.AuthUser{UID: acc.uid, Email: acc.email}
	c.auth.Set(user)
	return user, nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*gateway.AuthUser, error) {
	email, err := gateway.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < gateway.MinPasswordLen {
		return nil, gateway.ErrWeakPassword
	}
	hash, err := c.backend.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c.backend.mu.Lock()
	if _, exists := c.backend.accounts[email]; exists {
		c.backend.mu.Unlock()
		return nil, gateway.ErrEmailInUse
	}
	acc := account{uid: uuid.NewString(), email: email, passwordHash: hash}
	c.backend.accounts[email] = acc
	c.backend.mu.Unlock()

	user := &gateway.AuthUser{UID: acc.uid, Email: acc.email}
	c.auth.Set(user)
	return user, nil
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	email, err := gateway.NormalizeEmail(email)
	if err != nil {
		return err
	}

	c.backend.mu.Lock()
	_, ok := c.backend.accounts[email]
	c.backend.mu.Unlock()
	if !ok {
		return gateway.ErrUserNotFound
	}

	link := c.backend.resetURL + "?token=" + uuid.NewString()
	if c.backend.resets == nil {
		zap.L().Info("password reset link", zap.String("email", email), zap.String("link", link))
		return nil
	}
	return c.backend.resets.SendReset(ctx, email, link)
}

func (c *Client) SignOut(ctx context.Context) error {
	c.auth.Set(nil)
	return nil
}

func (c *Client) SubscribeCollection(ctx context.Context, q gateway.Query) (*gateway.Feed[gateway.Snapshot], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	feed := gateway.NewFeed[gateway.Snapshot](ctx, nil)
	w := &watcher{
		collection: q.Collection,
		deliver: func(b *Backend) {
			feed.Push(b.query(q))
		},
	}
	unwatch := c.backend.watch(w)
	go func() {
		<-feed.Done()
		unwatch()
	}()
	w.refresh(c.backend)
	return feed, nil
}

func (c *Client) SubscribeDocument(ctx context.Context, collection, id string) (*gateway.Feed[gateway.DocSnapshot], error) {
	if collection == "" || id == "" {
		return nil, gateway.ErrInvalidQuery
	}
	feed := gateway.NewFeed[gateway.DocSnapshot](ctx, nil)
	w := &watcher{
		collection: collection,
		deliver: func(b *Backend) {
			feed.Push(b.document(collection, id))
		},
	}
	unwatch := c.backend.watch(w)
	go func() {
		<-feed.Done()
		unwatch()
	}()
	w.refresh(c.backend)
	return feed, nil
}

func (c *Client) CreateRecord(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if collection == "" {
		return "", gateway.ErrInvalidQuery
	}
	id := uuid.NewString()
	if err := c.backend.Put(collection, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (c *Client) SetDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	if collection == "" || id == "" {
		return gateway.ErrInvalidQuery
	}
	return c.backend.Put(collection, id, fields)
}
