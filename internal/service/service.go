package service

import (
	authhandlers "github.com/GlebRadaev/earnpro/internal/handlers/auth"
	sessionhandlers "github.com/GlebRadaev/earnpro/internal/handlers/session"
	taskhandlers "github.com/GlebRadaev/earnpro/internal/handlers/tasks"
	wallethandlers "github.com/GlebRadaev/earnpro/internal/handlers/wallet"
	"github.com/GlebRadaev/earnpro/internal/service/authservice"
	"github.com/GlebRadaev/earnpro/internal/service/sessionservice"
	"github.com/GlebRadaev/earnpro/internal/service/taskservice"
	"github.com/GlebRadaev/earnpro/internal/service/walletservice"
	"github.com/GlebRadaev/earnpro/internal/session"
	"github.com/GlebRadaev/earnpro/pkg/auth"
)

type Services struct {
	SessionService sessionhandlers.Service
	AuthService    authhandlers.Service
	TaskService    taskhandlers.Service
	WalletService  wallethandlers.Service
}

func New(sessions *session.Manager, tokens auth.JWTServiceInterface, supportURL string) *Services {
	return &Services{
		SessionService: sessionservice.New(sessions, tokens, supportURL),
		AuthService:    authservice.New(sessions),
		TaskService:    taskservice.New(sessions),
		WalletService:  walletservice.New(sessions),
	}
}
