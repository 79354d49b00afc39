package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/earnpro/docs"
	authhandlers "github.com/GlebRadaev/earnpro/internal/handlers/auth"
	sessionhandlers "github.com/GlebRadaev/earnpro/internal/handlers/session"
	taskhandlers "github.com/GlebRadaev/earnpro/internal/handlers/tasks"
	wallethandlers "github.com/GlebRadaev/earnpro/internal/handlers/wallet"
	"github.com/GlebRadaev/earnpro/internal/service"
	"github.com/GlebRadaev/earnpro/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type SessionHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	State(w http.ResponseWriter, r *http.Request)
	Navigate(w http.ResponseWriter, r *http.Request)
	DismissToast(w http.ResponseWriter, r *http.Request)
	Support(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Signup(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	SelectCategory(w http.ResponseWriter, r *http.Request)
	SetSort(w http.ResponseWriter, r *http.Request)
	ToggleSave(w http.ResponseWriter, r *http.Request)
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	AttachProof(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SessionHandler SessionHandler
	AuthHandler    AuthHandler
	TaskHandler    TaskHandler
	WalletHandler  WalletHandler

	tokens  auth.JWTServiceInterface
	origins []string
}

func New(s *service.Services, tokens auth.JWTServiceInterface, origins []string, maxProofBytes int64) *Handlers {
	return &Handlers{
		SessionHandler: sessionhandlers.New(s.SessionService),
		AuthHandler:    authhandlers.New(s.AuthService),
		TaskHandler:    taskhandlers.New(s.TaskService, maxProofBytes),
		WalletHandler:  wallethandlers.New(s.WalletService),
		tokens:         tokens,
		origins:        origins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if len(h.origins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   h.origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
		}).Handler)
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/session", h.SessionHandler.Start)
		r.Get("/support", h.SessionHandler.Support)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.tokens))
			r.Delete("/session", h.SessionHandler.End)
			r.Get("/state", h.SessionHandler.State)
			r.Post("/nav", h.SessionHandler.Navigate)
			r.Post("/toast/dismiss", h.SessionHandler.DismissToast)

			r.Route("/auth", func(r chi.Router) {
				r.Post("/login", h.AuthHandler.Login)
				r.Post("/signup", h.AuthHandler.Signup)
				r.Post("/reset", h.AuthHandler.Reset)
				r.Post("/logout", h.AuthHandler.Logout)
			})
			r.Route("/tasks", func(r chi.Router) {
				r.Post("/category", h.TaskHandler.SelectCategory)
				r.Post("/sort", h.TaskHandler.SetSort)
				r.Post("/{id}/save", h.TaskHandler.ToggleSave)
				r.Post("/{id}/open", h.TaskHandler.Open)
			})
			r.Route("/modal", func(r chi.Router) {
				r.Post("/proof", h.TaskHandler.AttachProof)
				r.Post("/submit", h.TaskHandler.Submit)
				r.Post("/close", h.TaskHandler.Close)
			})
			r.Post("/wallet/withdraw", h.WalletHandler.Withdraw)
		})
	})

	return r
}
