package session

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

//go:generate mockgen -source=session.go -destination=mock_service.go -package=session

type Service interface {
	Start(ctx context.Context) (string, shell.View, error)
	End(ctx context.Context, sessionID string) error
	State(ctx context.Context, sessionID string) (shell.View, error)
	Navigate(ctx context.Context, sessionID, page string) (shell.View, error)
	DismissToast(ctx context.Context, sessionID string) (shell.View, error)
	SupportURL() string
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Start godoc
//
//	@Summary		Open a client session
//	@Description	Create a session with its own backend connection. The bearer token is returned in the Authorization header.
//	@Tags			Session
//	@Produce		json
//	@Success		201	{object}	shell.View
//	@Failure		502	{object}	utils.Response	"Backend unavailable"
//	@Router			/api/session [post]
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	token, view, err := h.sessionService.Start(r.Context())
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusCreated, view)
}

// End godoc
//
//	@Summary		Close the session
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Unknown session"
//	@Router			/api/session [delete]
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.End(r.Context(), auth.SessionID(r.Context())); err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "session closed"})
}

// State godoc
//
//	@Summary		Current view
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shell.View
//	@Failure		401	{object}	utils.Response	"Unknown session"
//	@Router			/api/state [get]
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionService.State(r.Context(), auth.SessionID(r.Context()))
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// Navigate godoc
//
//	@Summary		Switch page
//	@Description	Move to another page. Auth pages are reachable only while signed out, the rest only while signed in.
//	@Tags			Session
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.NavigateRequestDTO	true	"Target page"
//	@Success		200		{object}	shell.View
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Navigation not allowed"
//	@Router			/api/nav [post]
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req dto.NavigateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	view, err := h.sessionService.Navigate(r.Context(), auth.SessionID(r.Context()), req.Page)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// DismissToast godoc
//
//	@Summary		Hide the toast
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shell.View
//	@Router			/api/toast/dismiss [post]
func (h *SessionHandler) DismissToast(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionService.DismissToast(r.Context(), auth.SessionID(r.Context()))
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// Support godoc
//
//	@Summary		Support chat
//	@Tags			Session
//	@Success		302
//	@Failure		404	{object}	utils.Response	"No support link configured"
//	@Router			/api/support [get]
func (h *SessionHandler) Support(w http.ResponseWriter, r *http.Request) {
	url := h.sessionService.SupportURL()
	if url == "" {
		utils.RespondWithError(w, http.StatusNotFound, "Support link not configured")
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}
