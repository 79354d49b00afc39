package sessionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/earnpro/internal/gateway/memgateway"
	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/pkg/auth"
)

type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) ComparePassword(hashedPassword, password string) bool {
	return hashedPassword == "h:"+password
}

func NewMock(t *testing.T) (*Service, *MockSessions, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	sessions := NewMockSessions(ctrl)
	tokens := auth.NewMockJWTServiceInterface(ctrl)
	service := New(sessions, tokens, "https://support.test")
	return service, sessions, tokens
}

func newShell(t *testing.T) *shell.Shell {
	t.Helper()
	sh, err := shell.New(context.Background(), memgateway.New(plainHasher{}, nil, "").Connect(), shell.Options{ToastTTL: time.Hour})
	require.NoError(t, err)
	t.Cleanup(sh.Close)
	require.Eventually(t, func() bool {
		v, err := sh.View()
		return err == nil && v.Page == shell.PageLogin
	}, time.Second, 5*time.Millisecond)
	return sh
}

// runOn makes the mocked Do execute fn against sh.
func runOn(sh *shell.Shell) func(string, func(*shell.Shell) error) (shell.View, error) {
	return func(_ string, fn func(*shell.Shell) error) (shell.View, error) {
		if err := fn(sh); err != nil {
			return shell.View{}, err
		}
		return sh.View()
	}
}

func TestStart(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	createErr := errors.New("connect failed")
	tokenErr := errors.New("sign failed")

	tests := []struct {
		name          string
		prepareMock   func(s *MockSessions, tokens *auth.MockJWTServiceInterface, sh *shell.Shell)
		expectedToken string
		expectedError error
	}{
		{
			name: "Session created",
			prepareMock: func(s *MockSessions, tokens *auth.MockJWTServiceInterface, sh *shell.Shell) {
				s.EXPECT().Create(gomock.Any()).Return("sid-1", sh, nil)
				tokens.EXPECT().GenerateJWT("sid-1", fixed.Add(TokenLifetime)).Return("token-1", nil)
			},
			expectedToken: "token-1",
		},
		{
			name: "Create fails",
			prepareMock: func(s *MockSessions, tokens *auth.MockJWTServiceInterface, sh *shell.Shell) {
				s.EXPECT().Create(gomock.Any()).Return("", nil, createErr)
			},
			expectedError: createErr,
		},
		{
			name: "Token fails destroys the session",
			prepareMock: func(s *MockSessions, tokens *auth.MockJWTServiceInterface, sh *shell.Shell) {
				s.EXPECT().Create(gomock.Any()).Return("sid-2", sh, nil)
				tokens.EXPECT().GenerateJWT("sid-2", gomock.Any()).Return("", tokenErr)
				s.EXPECT().Destroy("sid-2").Return(nil)
			},
			expectedError: tokenErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, sessions, tokens := NewMock(t)
			service.now = func() time.Time { return fixed }
			sh := newShell(t)
			tt.prepareMock(sessions, tokens, sh)

			token, view, err := service.Start(context.Background())
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
			assert.Equal(t, shell.PageLogin, view.Page)
		})
	}
}

func TestNavigateAndDismiss(t *testing.T) {
	service, sessions, _ := NewMock(t)
	sh := newShell(t)
	ctx := context.Background()
	sessions.EXPECT().Do("sid", gomock.Any()).DoAndReturn(runOn(sh)).Times(4)

	view, err := service.Navigate(ctx, "sid", "signup")
	require.NoError(t, err)
	assert.Equal(t, shell.PageSignup, view.Page)

	_, err = service.Navigate(ctx, "sid", "wallet")
	assert.ErrorIs(t, err, shell.ErrNavigation)

	view, err = service.DismissToast(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, view.Toast.Visible)

	view, err = service.State(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, shell.PageSignup, view.Page)
}

func TestEnd(t *testing.T) {
	service, sessions, _ := NewMock(t)
	notFound := errors.New("session not found")

	sessions.EXPECT().Destroy("sid").Return(nil)
	sessions.EXPECT().Destroy("gone").Return(notFound)

	assert.NoError(t, service.End(context.Background(), "sid"))
	assert.ErrorIs(t, service.End(context.Background(), "gone"), notFound)
	assert.Equal(t, "https://support.test", service.SupportURL())
}
