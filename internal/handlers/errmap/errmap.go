// Package errmap translates application errors into HTTP statuses.
package errmap

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/earnpro/internal/catalog"
	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/proof"
	"github.com/GlebRadaev/earnpro/internal/session"
	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/internal/withdraw"
	"github.com/GlebRadaev/earnpro/pkg/utils"
)

var statuses = []struct {
	status int
	errs   []error
}{
	{http.StatusUnauthorized, []error{
		session.ErrSessionNotFound,
		shell.ErrClosed,
		shell.ErrNotSignedIn,
		gateway.ErrInvalidCredentials,
	}},
	{http.StatusPaymentRequired, []error{
		withdraw.ErrInsufficientBalance,
	}},
	{http.StatusNotFound, []error{
		shell.ErrTaskNotFound,
		gateway.ErrUserNotFound,
	}},
	{http.StatusConflict, []error{
		shell.ErrNavigation,
		shell.ErrBusy,
		shell.ErrModalClosed,
		shell.ErrTaskCompleted,
		shell.ErrAlreadySubmitted,
		gateway.ErrEmailInUse,
	}},
	{http.StatusRequestEntityTooLarge, []error{
		proof.ErrTooLarge,
	}},
	{http.StatusUnprocessableEntity, []error{
		shell.ErrFieldsRequired,
		shell.ErrProofMissing,
		withdraw.ErrSelectionIncomplete,
		withdraw.ErrNotInteger,
		withdraw.ErrOutOfBounds,
		gateway.ErrInvalidEmail,
		gateway.ErrWeakPassword,
		gateway.ErrInvalidQuery,
		proof.ErrUnsupportedProof,
		proof.ErrEmptyProof,
		catalog.ErrUnknownTab,
		catalog.ErrUnknownSort,
	}},
}

// Status returns the HTTP status for err. Anything unknown came from the
// backend and maps to 502.
func Status(err error) int {
	for _, s := range statuses {
		for _, target := range s.errs {
			if errors.Is(err, target) {
				return s.status
			}
		}
	}
	return http.StatusBadGateway
}

func Respond(w http.ResponseWriter, err error) {
	utils.RespondWithError(w, Status(err), err.Error())
}
