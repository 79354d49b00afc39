package gateway

import (
	"context"
	"net/mail"
	"strings"
	"sync"
)

// AuthState holds the signed-in user of one client and fans changes out to
// its auth subscriptions.
type AuthState struct {
	mu    sync.Mutex
	user  *AuthUser
	sinks map[uint64]*Feed[*AuthUser]
	next  uint64
}

// Subscribe returns a feed whose first value is the current user.
func (s *AuthState) Subscribe(ctx context.Context) *Feed[*AuthUser] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sinks == nil {
		s.sinks = make(map[uint64]*Feed[*AuthUser])
	}
	s.next++
	id := s.next
	feed := NewFeed[*AuthUser](ctx, func() {
		s.mu.Lock()
		delete(s.sinks, id)
		s.mu.Unlock()
	})
	s.sinks[id] = feed
	feed.Push(s.user)
	return feed
}

func (s *AuthState) Set(u *AuthUser) {
	s.mu.Lock()
	s.user = u
	sinks := make([]*Feed[*AuthUser], 0, len(s.sinks))
	for _, f := range s.sinks {
		sinks = append(sinks, f)
	}
	s.mu.Unlock()

	for _, f := range sinks {
		f.Push(u)
	}
}

func (s *AuthState) Current() *AuthUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// NormalizeEmail trims and lowercases email and rejects malformed addresses.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
