package authservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/shell"
)

type Sessions interface {
	Do(id string, fn func(sh *shell.Shell) error) (shell.View, error)
}

type Service struct {
	sessions Sessions
}

func New(sessions Sessions) *Service {
	return &Service{sessions: sessions}
}

func (s *Service) Login(ctx context.Context, sessionID, email, password string) (shell.View, error) {
	view, err := s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.Login(ctx, email, password)
	})
	if err != nil {
		zap.L().Debug("login failed", zap.String("session", sessionID), zap.Error(err))
	}
	return view, err
}

func (s *Service) Signup(ctx context.Context, sessionID, name, email, password string) (shell.View, error) {
	view, err := s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.Signup(ctx, name, email, password)
	})
	if err != nil {
		zap.L().Debug("signup failed", zap.String("session", sessionID), zap.Error(err))
	}
	return view, err
}

func (s *Service) ResetPassword(ctx context.Context, sessionID, email string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.ResetPassword(ctx, email)
	})
}

func (s *Service) Logout(ctx context.Context, sessionID string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.Logout(ctx)
	})
}
