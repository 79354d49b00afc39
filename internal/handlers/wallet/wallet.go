package wallet

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/earnpro/internal/dto"
	"github.com/GlebRadaev/earnpro/internal/handlers/errmap"
	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/internal/withdraw"
	"github.com/GlebRadaev/earnpro/pkg/auth"
	"github.com/GlebRadaev/earnpro/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_service.go -package=wallet

type Service interface {
	Withdraw(ctx context.Context, sessionID string, req withdraw.Request) (shell.View, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// Withdraw godoc
//
//	@Summary		Request a payout
//	@Description	Validate the wallet form against the withdrawable balance and create a pending withdrawal request.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal form"
//	@Success		200		{object}	shell.View
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Not signed in"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		422		{object}	utils.Response	"Invalid method, UPI id or amount"
//	@Failure		502		{object}	utils.Response	"Backend failure"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.walletService.Withdraw(r.Context(), auth.SessionID(r.Context()), req.Request())
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}
