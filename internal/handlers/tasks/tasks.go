package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/earnpro/internal/dto"
	"github.com/GlebRadaev/earnpro/internal/handlers/errmap"
	"github.com/GlebRadaev/earnpro/internal/proof"
	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/pkg/auth"
	"github.com/GlebRadaev/earnpro/pkg/utils"
)

//go:generate mockgen -source=tasks.go -destination=mock_service.go -package=tasks

const (
	proofField      = "proof"
	defaultMaxProof = 5 << 20
	formOverhead    = 1 << 20
)

type Service interface {
	SelectCategory(ctx context.Context, sessionID, tab string) (shell.View, error)
	SetSort(ctx context.Context, sessionID, mode string) (shell.View, error)
	ToggleSave(ctx context.Context, sessionID, taskID string) (shell.View, error)
	Open(ctx context.Context, sessionID, taskID string) (shell.View, error)
	Close(ctx context.Context, sessionID string) (shell.View, error)
	AttachProof(ctx context.Context, sessionID string, upload proof.Upload) (shell.View, error)
	Submit(ctx context.Context, sessionID string) (shell.View, error)
}

type TaskHandler struct {
	taskService   Service
	maxProofBytes int64
}

func New(taskService Service, maxProofBytes int64) *TaskHandler {
	if maxProofBytes <= 0 {
		maxProofBytes = defaultMaxProof
	}
	return &TaskHandler{
		taskService:   taskService,
		maxProofBytes: maxProofBytes,
	}
}

func (h *TaskHandler) respond(w http.ResponseWriter, view shell.View, err error) {
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// SelectCategory godoc
//
//	@Summary		Filter tasks by tab
//	@Description	Tabs are All, Install, Games, Signup, Others and Save. Save lists the tasks saved in this session.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CategoryRequestDTO	true	"Tab"
//	@Success		200		{object}	shell.View
//	@Failure		422		{object}	utils.Response	"Unknown tab"
//	@Router			/api/tasks/category [post]
func (h *TaskHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	view, err := h.taskService.SelectCategory(r.Context(), auth.SessionID(r.Context()), req.Tab)
	h.respond(w, view, err)
}

// SetSort godoc
//
//	@Summary		Order tasks by price
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SortRequestDTO	true	"none, h-l, l-h or mid"
//	@Success		200		{object}	shell.View
//	@Failure		422		{object}	utils.Response	"Unknown sort mode"
//	@Router			/api/tasks/sort [post]
func (h *TaskHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	var req dto.SortRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	view, err := h.taskService.SetSort(r.Context(), auth.SessionID(r.Context()), req.Mode)
	h.respond(w, view, err)
}

// ToggleSave godoc
//
//	@Summary		Save or unsave a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Task id"
//	@Success		200	{object}	shell.View
//	@Router			/api/tasks/{id}/save [post]
func (h *TaskHandler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	view, err := h.taskService.ToggleSave(r.Context(), auth.SessionID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, view, err)
}

// Open godoc
//
//	@Summary		Open the submission dialog
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Task id"
//	@Success		200	{object}	shell.View
//	@Failure		404	{object}	utils.Response	"Task not found"
//	@Failure		409	{object}	utils.Response	"Task already completed"
//	@Router			/api/tasks/{id}/open [post]
func (h *TaskHandler) Open(w http.ResponseWriter, r *http.Request) {
	view, err := h.taskService.Open(r.Context(), auth.SessionID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, view, err)
}

// Close godoc
//
//	@Summary		Close the submission dialog
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shell.View
//	@Router			/api/modal/close [post]
func (h *TaskHandler) Close(w http.ResponseWriter, r *http.Request) {
	view, err := h.taskService.Close(r.Context(), auth.SessionID(r.Context()))
	h.respond(w, view, err)
}

// AttachProof godoc
//
//	@Summary		Upload the proof screenshot
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			proof	formData	file	true	"Screenshot image"
//	@Success		200		{object}	shell.View
//	@Failure		400		{object}	utils.Response	"Proof file is required"
//	@Failure		409		{object}	utils.Response	"No task is open"
//	@Failure		413		{object}	utils.Response	"Proof image is too large"
//	@Failure		422		{object}	utils.Response	"Proof must be an image"
//	@Router			/api/modal/proof [post]
func (h *TaskHandler) AttachProof(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxProofBytes+formOverhead)
	if err := r.ParseMultipartForm(h.maxProofBytes + formOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errmap.Respond(w, proof.ErrTooLarge)
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile(proofField)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Proof file is required")
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, h.maxProofBytes+1))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read proof file")
		return
	}
	if int64(len(body)) > h.maxProofBytes {
		errmap.Respond(w, proof.ErrTooLarge)
		return
	}

	view, err := h.taskService.AttachProof(r.Context(), auth.SessionID(r.Context()), proof.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        body,
	})
	h.respond(w, view, err)
}

// Submit godoc
//
//	@Summary		Submit the open task for approval
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shell.View
//	@Failure		409	{object}	utils.Response	"Task already submitted"
//	@Failure		422	{object}	utils.Response	"Attach a proof screenshot first"
//	@Failure		502	{object}	utils.Response	"Backend failure"
//	@Router			/api/modal/submit [post]
func (h *TaskHandler) Submit(w http.ResponseWriter, r *http.Request) {
	view, err := h.taskService.Submit(r.Context(), auth.SessionID(r.Context()))
	h.respond(w, view, err)
}
