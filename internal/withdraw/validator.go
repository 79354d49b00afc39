// Package withdraw checks a withdrawal form before anything is sent to the
// backend.
package withdraw

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/earnpro/internal/domain"
)

var (
	ErrSelectionIncomplete = errors.New("selection incomplete")
	ErrNotInteger          = errors.New("integer required")
	ErrOutOfBounds         = errors.New("out of bounds")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type Limits struct {
	Min int64
	Max int64
}

type Request struct {
	Amount string
	Method domain.PaymentMethod
	UPIID  string
}

// Validate runs the checks in order and stops at the first failure. On
// success it returns the parsed amount.
func Validate(req Request, limits Limits, withdrawable decimal.Decimal) (int64, error) {
	if req.Method == "" || strings.TrimSpace(req.UPIID) == "" || !req.Method.Valid() {
		return 0, ErrSelectionIncomplete
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return 0, err
	}

	if amount.LessThan(decimal.NewFromInt(limits.Min)) || amount.GreaterThan(decimal.NewFromInt(limits.Max)) {
		return 0, ErrOutOfBounds
	}

	if amount.GreaterThan(withdrawable) {
		return 0, ErrInsufficientBalance
	}

	return amount.IntPart(), nil
}

// parseAmount treats blank input as zero, the way a numeric form field does.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrNotInteger
	}
	if !d.IsInteger() {
		return decimal.Zero, ErrNotInteger
	}
	return d, nil
}
