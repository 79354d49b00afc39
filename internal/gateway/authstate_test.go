package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthState(t *testing.T) {
	var s AuthState
	feed := s.Subscribe(context.Background())

	assert.Nil(t, <-feed.C())

	user := &AuthUser{UID: "u1", Email: "a@b.test"}
	s.Set(user)
	assert.Equal(t, user, <-feed.C())
	assert.Equal(t, user, s.Current())

	feed.Cancel()
	s.Set(nil)
	select {
	case v := <-feed.C():
		t.Fatalf("unexpected value after cancel: %v", v)
	default:
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "Trimmed and lowered", input: "  Asha@Mail.TEST ", expected: "asha@mail.test"},
		{name: "Missing at", input: "asha.mail.test", err: ErrInvalidEmail},
		{name: "Display name", input: "Asha <asha@mail.test>", err: ErrInvalidEmail},
		{name: "Empty", input: "   ", err: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEmail(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
