package errmap

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/proof"
	"github.com/GlebRadaev/earnpro/internal/session"
	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/internal/withdraw"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "Unknown session", err: session.ErrSessionNotFound, expected: http.StatusUnauthorized},
		{name: "Wrong password", err: gateway.ErrInvalidCredentials, expected: http.StatusUnauthorized},
		{name: "Insufficient balance", err: withdraw.ErrInsufficientBalance, expected: http.StatusPaymentRequired},
		{name: "Bad amount", err: withdraw.ErrNotInteger, expected: http.StatusUnprocessableEntity},
		{name: "Navigation", err: shell.ErrNavigation, expected: http.StatusConflict},
		{name: "Double submit", err: shell.ErrAlreadySubmitted, expected: http.StatusConflict},
		{name: "Wrapped", err: fmt.Errorf("upload: %w", proof.ErrTooLarge), expected: http.StatusRequestEntityTooLarge},
		{name: "Missing task", err: shell.ErrTaskNotFound, expected: http.StatusNotFound},
		{name: "Backend failure", err: errors.New("connection refused"), expected: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Status(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	w := httptest.NewRecorder()
	Respond(w, shell.ErrProofMissing)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"message":"attach a proof screenshot first"}`, w.Body.String())
}
