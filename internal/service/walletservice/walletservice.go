package walletservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/internal/withdraw"
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

func (s *Service) Withdraw(ctx context.Context, sessionID string, req withdraw.Request) (shell.View, error) {
	view, err := s.sessions.Do(sessionID, func(sh *shell.Shell) error {
		return sh.RequestWithdrawal(ctx, req)
	})
	if err != nil {
		zap.L().Debug("withdrawal rejected", zap.String("session", sessionID), zap.Error(err))
	}
	return view, err
}
