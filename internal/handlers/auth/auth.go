package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/earnpro/internal/dto"
	"github.com/GlebRadaev/earnpro/internal/handlers/errmap"
	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/pkg/auth"
	"github.com/GlebRadaev/earnpro/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_service.go -package=auth

type Service interface {
	Login(ctx context.Context, sessionID, email, password string) (shell.View, error)
	Signup(ctx context.Context, sessionID, name, email, password string) (shell.View, error)
	ResetPassword(ctx context.Context, sessionID, email string) (shell.View, error)
	Logout(ctx context.Context, sessionID string) (shell.View, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Sign in
//	@Description	Sign the session in with email and password. The view switches to home once the backend confirms.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Credentials"
//	@Success		200		{object}	shell.View
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		409		{object}	utils.Response	"Not on the login page"
//	@Failure		422		{object}	utils.Response	"Fill all fields"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	view, err := h.authService.Login(r.Context(), auth.SessionID(r.Context()), req.Email, req.Password)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// Signup godoc
//
//	@Summary		Create an account
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequestDTO	true	"New account"
//	@Success		200		{object}	shell.View
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already in use"
//	@Failure		422		{object}	utils.Response	"Invalid email or weak password"
//	@Router			/api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	view, err := h.authService.Signup(r.Context(), auth.SessionID(r.Context()), req.Name, req.Email, req.Password)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// Reset godoc
//
//	@Summary		Send a password reset link
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ResetRequestDTO	true	"Account email"
//	@Success		200		{object}	shell.View
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"No such user"
//	@Router			/api/auth/reset [post]
func (h *AuthHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	view, err := h.authService.ResetPassword(r.Context(), auth.SessionID(r.Context()), req.Email)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// Logout godoc
//
//	@Summary		Sign out
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shell.View
//	@Failure		401	{object}	utils.Response	"Not signed in"
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	view, err := h.authService.Logout(r.Context(), auth.SessionID(r.Context()))
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}
