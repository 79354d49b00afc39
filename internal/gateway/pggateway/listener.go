package pggateway

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Channel is the notification channel the documents trigger publishes on.
const Channel = "documents"

// Notifications is a live LISTEN session.
type Notifications interface {
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context)
}

type Listener interface {
	Listen(ctx context.Context) (Notifications, error)
}

// PoolListener dedicates one pooled connection to LISTEN.
type PoolListener struct {
	pool    *pgxpool.Pool
	channel string
}

func NewPoolListener(pool *pgxpool.Pool) *PoolListener {
	return &PoolListener{pool: pool, channel: Channel}
}

func (l *PoolListener) Listen(ctx context.Context) (Notifications, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire listener conn: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		conn.Release()
		return nil, fmt.Errorf("listen %s: %w", l.channel, err)
	}
	return &connNotifications{conn: conn}, nil
}

type connNotifications struct {
	conn *pgxpool.Conn
}

func (n *connNotifications) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return n.conn.Conn().WaitForNotification(ctx)
}

// Close takes the connection out of the pool so a LISTENing session is never
// handed to another caller.
func (n *connNotifications) Close(ctx context.Context) {
	_ = n.conn.Hijack().Close(ctx)
}
