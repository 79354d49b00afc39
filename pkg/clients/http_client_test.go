package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_PostJSON(t *testing.T) {
	tests := []struct {
		name         string
		mockSetup    func(m *MockHTTPClientI)
		expectedCode int
		expectedBody string
		expectErr    bool
	}{
		{
			name: "Success",
			mockSetup: func(m *MockHTTPClientI) {
				m.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					body, _ := io.ReadAll(req.Body)
					assert.Equal(t, http.MethodPost, req.Method)
					assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
					assert.JSONEq(t, `{"email":"a@b.test"}`, string(body))
					return &http.Response{StatusCode: http.StatusAccepted, Body: io.NopCloser(strings.NewReader("ok"))}, nil
				})
			},
			expectedCode: http.StatusAccepted,
			expectedBody: "ok",
		},
		{
			name: "Transport error",
			mockSetup: func(m *MockHTTPClientI) {
				m.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := NewMockHTTPClientI(ctrl)
			tt.mockSetup(mock)

			client := NewHTTPClient()
			client.SetClient(mock)

			code, body, err := client.PostJSON(context.Background(), "http://mail.test/send", map[string]string{"email": "a@b.test"})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedBody, string(body))
		})
	}
}
