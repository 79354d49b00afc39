package sessionservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/pkg/auth"
)

//go:generate mockgen -source=sessionservice.go -destination=mock_sessions.go -package=sessionservice

// TokenLifetime bounds a session token. Idle sessions are evicted much earlier.
const TokenLifetime = 7 * 24 * time.Hour

type Sessions interface {
	Create(ctx context.Context) (string, *shell.Shell, error)
	Do(id string, fn func(sh *shell.Shell) error) (shell.View, error)
	Destroy(id string) error
}

type Service struct {
	sessions   Sessions
	tokens     auth.JWTServiceInterface
	supportURL string
	now        func() time.Time
}

func New(sessions Sessions, tokens auth.JWTServiceInterface, supportURL string) *Service {
	return &Service{
		sessions:   sessions,
		tokens:     tokens,
		supportURL: supportURL,
		now:        time.Now,
	}
}

// Start opens a session and returns its bearer token with the first view.
func (s *Service) Start(ctx context.Context) (string, shell.View, error) {
	id, sh, err := s.sessions.Create(ctx)
	if err != nil {
		zap.L().Error("failed to create session", zap.Error(err))
		return "", shell.View{}, err
	}

	token, err := s.tokens.GenerateJWT(id, s.now().Add(TokenLifetime))
	if err != nil {
		_ = s.sessions.Destroy(id)
		return "", shell.View{}, fmt.Errorf("generate token: %w", err)
	}

	view, err := sh.View()
	if err != nil {
		return "", shell.View{}, err
	}
	return token, view, nil
}

func (s *Service) End(ctx context.Context, sessionID string) error {
	return s.sessions.Destroy(sessionID)
}

func (s *Service) State(ctx context.Context, sessionID string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(*shell.Shell) error { return nil })
}

func (s *Service) Navigate(ctx context.Context, sessionID, page string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.Navigate(shell.Page(page))
	})
}

func (s *Service) DismissToast(ctx context.Context, sessionID string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.DismissToast()
	})
}

func (s *Service) SupportURL() string {
	return s.supportURL
}
