package withdraw

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/earnpro/internal/domain"
)

func TestValidate(t *testing.T) {
	limits := Limits{Min: 20, Max: 500}

	tests := []struct {
		name         string
		req          Request
		withdrawable int64
		expected     int64
		err          error
	}{
		{
			name:         "Accepted",
			req:          Request{Amount: "100", Method: domain.MethodPaytm, UPIID: "me@upi"},
			withdrawable: 150,
			expected:     100,
		},
		{
			name:         "Accepted with surrounding spaces and exponent",
			req:          Request{Amount: " 1e2 ", Method: domain.MethodGooglePay, UPIID: "me@upi"},
			withdrawable: 100,
			expected:     100,
		},
		{
			name:         "Accepted with trailing zero fraction",
			req:          Request{Amount: "25.0", Method: domain.MethodPhonePe, UPIID: "me@upi"},
			withdrawable: 25,
			expected:     25,
		},
		{
			name:         "Missing method",
			req:          Request{Amount: "100", UPIID: "me@upi"},
			withdrawable: 150,
			err:          ErrSelectionIncomplete,
		},
		{
			name:         "Blank UPI id",
			req:          Request{Amount: "100", Method: domain.MethodPaytm, UPIID: "   "},
			withdrawable: 150,
			err:          ErrSelectionIncomplete,
		},
		{
			name:         "Unknown method",
			req:          Request{Amount: "100", Method: "Cash", UPIID: "me@upi"},
			withdrawable: 150,
			err:          ErrSelectionIncomplete,
		},
		{
			name:         "Selection checked before amount",
			req:          Request{Amount: "abc"},
			withdrawable: 150,
			err:          ErrSelectionIncomplete,
		},
		{
			name:         "Fractional amount",
			req:          Request{Amount: "25.5", Method: domain.MethodPaytm, UPIID: "me@upi"},
			withdrawable: 150,
			err:          ErrNotInteger,
		},
		{
			name:         "Not a number",
			req:          Request{Amount: "ten", Method: domain.MethodPaytm, UPIID: "me@upi"},
			withdrawable: 150,
			err:          ErrNotInteger,
		},
		{
			name:         "Blank amount is zero and out of bounds",
			req:          Request{Amount: "", Method: domain.MethodPaytm, UPIID: "me@upi"},
			withdrawable: 150,
			err:          ErrOutOfBounds,
		},
		{
			name:         "Below minimum",
			req:          Request{Amount: "19", Method: domain.MethodPaytm, UPIID: "me@upi"},
			withdrawable: 150,
			err:          ErrOutOfBounds,
		},
		{
			name:         "Above maximum",
			req:          Request{Amount: "501", Method: domain.MethodPaytm, UPIID: "me@upi"},
			withdrawable: 1000,
			err:          ErrOutOfBounds,
		},
		{
			name:         "Negative",
			req:          Request{Amount: "-50", Method: domain.MethodPaytm, UPIID: "me@upi"},
			withdrawable: 1000,
			err:          ErrOutOfBounds,
		},
		{
			name:         "Insufficient balance",
			req:          Request{Amount: "100", Method: domain.MethodPaytm, UPIID: "me@upi"},
			withdrawable: 50,
			err:          ErrInsufficientBalance,
		},
		{
			name:         "Bounds are inclusive",
			req:          Request{Amount: "500", Method: domain.MethodPaytm, UPIID: "me@upi"},
			withdrawable: 500,
			expected:     500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := Validate(tt.req, limits, decimal.NewFromInt(tt.withdrawable))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Zero(t, amount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount)
		})
	}
}

func TestValidateRespectsConfiguredMinimum(t *testing.T) {
	req := Request{Amount: "19", Method: domain.MethodPaytm, UPIID: "me@upi"}

	_, err := Validate(req, Limits{Min: 20, Max: 500}, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	amount, err := Validate(req, Limits{Min: 10, Max: 500}, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, int64(19), amount)
}
