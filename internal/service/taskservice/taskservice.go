package taskservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/proof"
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

func (s *Service) SelectCategory(ctx context.Context, sessionID, tab string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.SelectCategory(tab)
	})
}

func (s *Service) SetSort(ctx context.Context, sessionID, mode string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.SetSort(mode)
	})
}

func (s *Service) ToggleSave(ctx context.Context, sessionID, taskID string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		_, err := sh.ToggleSave(taskID)
		return err
	})
}

func (s *Service) Open(ctx context.Context, sessionID, taskID string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.OpenTask(taskID)
	})
}

func (s *Service) Close(ctx context.Context, sessionID string) (shell.View, error) {
	return s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.CloseTask()
	})
}

func (s *Service) AttachProof(ctx context.Context, sessionID string, upload proof.Upload) (shell.View, error) {
	view, err := s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.AttachProof(ctx, upload)
	})
	if err != nil {
		zap.L().Warn("proof upload failed", zap.String("session", sessionID), zap.Error(err))
	}
	return view, err
}

func (s *Service) Submit(ctx context.Context, sessionID string) (shell.View, error) {
	view, err := s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.SubmitTask(ctx)
	})
	if err != nil {
		zap.L().Debug("submission rejected", zap.String("session", sessionID), zap.Error(err))
	}
	return view, err
}
