// Package gateway describes the backend the client talks to: authentication,
// live queries and document writes.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password should be at least 6 characters")
	ErrUserNotFound       = errors.New("no user registered with this email")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidQuery       = errors.New("invalid query")
)

// MinPasswordLen is the shortest password SignUp accepts.
const MinPasswordLen = 6

type AuthUser struct {
	UID   string
	Email string
}

type Filter struct {
	Field string
	Value string
}

// Query selects the documents of a collection whose string fields equal the
// filter values.
type Query struct {
	Collection string
	Where      []Filter
}

func (q Query) Validate() error {
	if q.Collection == "" {
		return ErrInvalidQuery
	}
	for _, f := range q.Where {
		if f.Field == "" {
			return ErrInvalidQuery
		}
	}
	return nil
}

type Document struct {
	ID   string
	Data json.RawMessage
}

// Snapshot is the full result set of a query at one point in time.
type Snapshot struct {
	Docs []Document
}

type DocSnapshot struct {
	ID     string
	Exists bool
	Data   json.RawMessage
}

type Gateway interface {
	SubscribeAuthState(ctx context.Context) (*Feed[*AuthUser], error)
	SignIn(ctx context.Context, email, password string) (*AuthUser, error)
	SignUp(ctx context.Context, email, password string) (*AuthUser, error)
	SendPasswordReset(ctx context.Context, email string) error
	SignOut(ctx context.Context) error

	SubscribeCollection(ctx context.Context, q Query) (*Feed[Snapshot], error)
	SubscribeDocument(ctx context.Context, collection, id string) (*Feed[DocSnapshot], error)
	CreateRecord(ctx context.Context, collection string, fields map[string]any) (string, error)
	SetDocument(ctx context.Context, collection, id string, fields map[string]any) error
}

type serverTimestamp struct{}

// ServerTimestamp is replaced by the backend's clock when written.
var ServerTimestamp = serverTimestamp{}

// ResolveFields copies fields with every ServerTimestamp replaced by now.
func ResolveFields(fields map[string]any, now time.Time) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = now.UTC()
			continue
		}
		out[k] = v
	}
	return out
}

// ResetSender delivers password reset links.
type ResetSender interface {
	SendReset(ctx context.Context, email, link string) error
}
