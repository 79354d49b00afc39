package walletservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/earnpro/internal/domain"
	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/gateway/memgateway"
	"github.com/GlebRadaev/earnpro/internal/session"
	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/internal/withdraw"
)

type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) ComparePassword(hashedPassword, password string) bool {
	return hashedPassword == "h:"+password
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	b := memgateway.New(plainHasher{}, nil, "")
	m := session.NewManager(func() gateway.Gateway { return b.Connect() }, shell.Options{
		Currency: "₹",
		Limits:   withdraw.Limits{Min: 20, Max: 500},
		ToastTTL: time.Hour,
	}, time.Hour)
	t.Cleanup(m.CloseAll)
	service := New(m)

	id, sh, err := m.Create(ctx)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		v, err := sh.View()
		return err == nil && v.Page == shell.PageLogin
	}, time.Second, 5*time.Millisecond)

	req := withdraw.Request{Amount: "50", Method: domain.MethodPhonePe, UPIID: "asha@ybl"}
	_, err = service.Withdraw(ctx, id, req)
	assert.ErrorIs(t, err, shell.ErrNotSignedIn)

	require.NoError(t, sh.Navigate(shell.PageSignup))
	require.NoError(t, sh.Signup(ctx, "Asha", "asha@mail.test", "secret1"))
	var uid string
	require.Eventually(t, func() bool {
		v, err := sh.View()
		if err != nil || v.User == nil {
			return false
		}
		uid = v.User.UserID
		return true
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, b.Put(domain.CollectionSubmissions, "s1", map[string]any{
		"uid": uid, "taskId": "t1", "reward": 60, "status": "approved",
	}))
	require.Eventually(t, func() bool {
		v, err := sh.View()
		return err == nil && v.Stats.WithdrawableAmount.Equal(decimal.NewFromInt(60))
	}, time.Second, 5*time.Millisecond)

	_, err = service.Withdraw(ctx, id, withdraw.Request{Amount: "70", Method: domain.MethodPhonePe, UPIID: "asha@ybl"})
	assert.ErrorIs(t, err, withdraw.ErrInsufficientBalance)

	view, err := service.Withdraw(ctx, id, req)
	require.NoError(t, err)
	assert.Equal(t, "Withdrawal Requested!", view.Toast.Message)
	assert.Empty(t, view.Forms.WithdrawAmount)
}
