package dto

import (
	"github.com/GlebRadaev/earnpro/internal/domain"
	"github.com/GlebRadaev/earnpro/internal/withdraw"
)

// WithdrawRequestDTO keeps the amount as typed; it is validated server side.
type WithdrawRequestDTO struct {
	Amount string               `json:"amount" example:"50"`
	Method domain.PaymentMethod `json:"method" example:"Paytm"`
	UPIID  string               `json:"upiId" example:"asha@paytm"`
}

func (d WithdrawRequestDTO) Request() withdraw.Request {
	return withdraw.Request{Amount: d.Amount, Method: d.Method, UPIID: d.UPIID}
}
