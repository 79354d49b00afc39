// Package pggateway implements the gateway on PostgreSQL. Documents are jsonb
// rows keyed by collection and id; a trigger publishes the collection name on
// every change and the Hub re-runs the affected live queries.
package pggateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/pg"
	"github.com/GlebRadaev/earnpro/pkg/auth"
)

const uniqueViolation = "23505"

const (
	selectDocument = `SELECT data FROM documents WHERE collection = $1 AND id = $2`
	upsertDocument = `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
	insertAccount   = `INSERT INTO accounts (uid, email, password_hash) VALUES ($1, $2, $3)`
	selectAccount   = `SELECT uid, password_hash FROM accounts WHERE email = $1`
	selectAccountID = `SELECT uid FROM accounts WHERE email = $1`
	insertReset     = `INSERT INTO password_resets (token, uid) VALUES ($1, $2)`
)

type Backend struct {
	db        pg.Database
	txManager pg.TXManager
	hub       *Hub
	hasher    auth.HashServiceInterface
	resets    gateway.ResetSender
	resetURL  string
	now       func() time.Time
}

func New(db pg.Database, txManager pg.TXManager, hub *Hub, hasher auth.HashServiceInterface, resets gateway.ResetSender, resetURL string) *Backend {
	return &Backend{
		db:        db,
		txManager: txManager,
		hub:       hub,
		hasher:    hasher,
		resets:    resets,
		resetURL:  resetURL,
		now:       time.Now,
	}
}

// Connect opens a client with its own auth state.
func (b *Backend) Connect() *Client {
	return &Client{backend: b}
}

// selectQuery renders q as SQL. Filters compare the text form of a field.
func selectQuery(q gateway.Query) (string, []any) {
	var sb strings.Builder
	args := []any{q.Collection}
	sb.WriteString("SELECT id, data FROM documents WHERE collection = $1")
	for _, f := range q.Where {
		n := len(args)
		sb.WriteString(" AND data ->> $" + strconv.Itoa(n+1) + " = $" + strconv.Itoa(n+2))
		args = append(args, f.Field, f.Value)
	}
	sb.WriteString(" ORDER BY created_at, id")
	return sb.String(), args
}

func (b *Backend) query(ctx context.Context, q gateway.Query) (gateway.Snapshot, error) {
	sql, args := selectQuery(q)
	rows, err := b.db.Query(ctx, sql, args...)
	if err != nil {
		return gateway.Snapshot{}, fmt.Errorf("query %s: %w", q.Collection, err)
	}
	defer rows.Close()

	snap := gateway.Snapshot{Docs: []gateway.Document{}}
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return gateway.Snapshot{}, fmt.Errorf("scan %s: %w", q.Collection, err)
		}
		snap.Docs = append(snap.Docs, gateway.Document{ID: id, Data: data})
	}
	if err := rows.Err(); err != nil {
		return gateway.Snapshot{}, fmt.Errorf("read %s: %w", q.Collection, err)
	}
	return snap, nil
}

func (b *Backend) document(ctx context.Context, collection, id string) (gateway.DocSnapshot, error) {
	snap := gateway.DocSnapshot{ID: id}
	var data []byte
	err := b.db.QueryRow(ctx, selectDocument, collection, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return snap, nil
	}
	if err != nil {
		return snap, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	snap.Exists = true
	snap.Data = data
	return snap, nil
}

func (b *Backend) put(ctx context.Context, collection, id string, fields map[string]any) error {
	data, err := json.Marshal(gateway.ResolveFields(fields, b.now()))
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, id, err)
	}
	if _, err := b.db.Exec(ctx, upsertDocument, collection, id, string(data)); err != nil {
		zap.L().Error("can't save document", zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("save %s/%s: %w", collection, id, err)
	}
	return nil
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

	var uid, hash string
	err = c.backend.db.QueryRow(ctx, selectAccount, email).Scan(&uid, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, gateway.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if !c.backend.hasher.ComparePassword(hash, password) {
		return nil, gateway.ErrInvalidCredentials
	}

	user := &gateway.AuthUser{UID: uid, Email: email}
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

	user := &gateway.AuthUser{UID: uuid.NewString(), Email: email}
	if _, err := c.backend.db.Exec(ctx, insertAccount, user.UID, user.Email, hash); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, gateway.ErrEmailInUse
		}
		zap.L().Error("can't save account", zap.Error(err))
		return nil, fmt.Errorf("create account: %w", err)
	}

	c.auth.Set(user)
	return user, nil
}

// SendPasswordReset records a reset token and hands the link to the sender in
// the same transaction.
func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	email, err := gateway.NormalizeEmail(email)
	if err != nil {
		return err
	}

	return c.backend.txManager.Begin(ctx, func(ctx context.Context) error {
		var uid string
		err := c.backend.db.QueryRow(ctx, selectAccountID, email).Scan(&uid)
		if errors.Is(err, pgx.ErrNoRows) {
			return gateway.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("find account: %w", err)
		}

		token := uuid.NewString()
		if _, err := c.backend.db.Exec(ctx, insertReset, token, uid); err != nil {
			return fmt.Errorf("save reset token: %w", err)
		}

		link := c.backend.resetURL + "?token=" + token
		if c.backend.resets == nil {
			zap.L().Info("password reset link", zap.String("email", email), zap.String("link", link))
			return nil
		}
		return c.backend.resets.SendReset(ctx, email, link)
	})
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
	unwatch, err := c.backend.hub.Subscribe(q.Collection, func() error {
		select {
		case <-feed.Done():
			return nil
		default:
		}
		snap, err := c.backend.query(ctx, q)
		if err != nil {
			return err
		}
		feed.Push(snap)
		return nil
	})
	if err != nil {
		feed.Cancel()
		return nil, err
	}
	go func() {
		<-feed.Done()
		unwatch()
	}()
	return feed, nil
}

func (c *Client) SubscribeDocument(ctx context.Context, collection, id string) (*gateway.Feed[gateway.DocSnapshot], error) {
	if collection == "" || id == "" {
		return nil, gateway.ErrInvalidQuery
	}
	feed := gateway.NewFeed[gateway.DocSnapshot](ctx, nil)
	unwatch, err := c.backend.hub.Subscribe(collection, func() error {
		select {
		case <-feed.Done():
			return nil
		default:
		}
		snap, err := c.backend.document(ctx, collection, id)
		if err != nil {
			return err
		}
		feed.Push(snap)
		return nil
	})
	if err != nil {
		feed.Cancel()
		return nil, err
	}
	go func() {
		<-feed.Done()
		unwatch()
	}()
	return feed, nil
}

func (c *Client) CreateRecord(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if collection == "" {
		return "", gateway.ErrInvalidQuery
	}
	id := uuid.NewString()
	if err := c.backend.put(ctx, collection, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (c *Client) SetDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	if collection == "" || id == "" {
		return gateway.ErrInvalidQuery
	}
	return c.backend.put(ctx, collection, id, fields)
}
