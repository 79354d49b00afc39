package tasks

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/earnpro/internal/catalog"
	"github.com/GlebRadaev/earnpro/internal/proof"
	"github.com/GlebRadaev/earnpro/internal/shell"
	"github.com/GlebRadaev/earnpro/pkg/auth"
)

var pngBody = []byte("\x89PNG\r\n\x1a\n0000")

func NewMock(t *testing.T, maxBytes int64) (*TaskHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, maxBytes)
	return handler, service
}

func request(method, url string, body *bytes.Buffer, taskID string) *http.Request {
	if body == nil {
		body = &bytes.Buffer{}
	}
	r := httptest.NewRequest(method, url, body)
	ctx := context.WithValue(r.Context(), auth.SessionIDKey, "sid")
	if taskID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", taskID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func proofForm(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestNewDefaultsProofLimit(t *testing.T) {
	handler, _ := NewMock(t, 0)
	assert.Equal(t, int64(defaultMaxProof), handler.maxProofBytes)
}

func TestSelectCategoryHandler(t *testing.T) {
	handler, service := NewMock(t, 1024)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Known tab",
			body: `{"tab":"Games"}`,
			prepareMock: func() {
				service.EXPECT().SelectCategory(gomock.Any(), "sid", "Games").Return(shell.View{ActiveTab: "Games"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown tab",
			body: `{"tab":"Music"}`,
			prepareMock: func() {
				service.EXPECT().SelectCategory(gomock.Any(), "sid", "Music").Return(shell.View{}, catalog.ErrUnknownTab)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid request body",
			body:         `tab=Games`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.SelectCategory(w, request(http.MethodPost, "/api/tasks/category", bytes.NewBufferString(tt.body), ""))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSetSortHandler(t *testing.T) {
	handler, service := NewMock(t, 1024)
	service.EXPECT().SetSort(gomock.Any(), "sid", "mid").Return(shell.View{Sort: catalog.SortMidFirst}, nil)

	w := httptest.NewRecorder()
	handler.SetSort(w, request(http.MethodPost, "/api/tasks/sort", bytes.NewBufferString(`{"mode":"mid"}`), ""))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sort":"mid"`)
}

func TestTaskRouteHandlers(t *testing.T) {
	handler, service := NewMock(t, 1024)

	tests := []struct {
		name         string
		call         func(w http.ResponseWriter, r *http.Request)
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Save",
			call: handler.ToggleSave,
			prepareMock: func() {
				service.EXPECT().ToggleSave(gomock.Any(), "sid", "t1").Return(shell.View{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Open completed task",
			call: handler.Open,
			prepareMock: func() {
				service.EXPECT().Open(gomock.Any(), "sid", "t1").Return(shell.View{}, shell.ErrTaskCompleted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Open missing task",
			call: handler.Open,
			prepareMock: func() {
				service.EXPECT().Open(gomock.Any(), "sid", "t1").Return(shell.View{}, shell.ErrTaskNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Close",
			call: handler.Close,
			prepareMock: func() {
				service.EXPECT().Close(gomock.Any(), "sid").Return(shell.View{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Submit twice",
			call: handler.Submit,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), "sid").Return(shell.View{}, shell.ErrAlreadySubmitted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Submit without proof",
			call: handler.Submit,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), "sid").Return(shell.View{}, shell.ErrProofMissing)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			tt.call(w, request(http.MethodPost, "/api/tasks/t1", nil, "t1"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAttachProofHandler(t *testing.T) {
	t.Run("Uploaded", func(t *testing.T) {
		handler, service := NewMock(t, 1024)
		body, contentType := proofForm(t, proofField, "shot.png", "image/png", pngBody)
		service.EXPECT().AttachProof(gomock.Any(), "sid", proof.Upload{
			Filename:    "shot.png",
			ContentType: "image/png",
			Body:        pngBody,
		}).Return(shell.View{}, nil)

		r := request(http.MethodPost, "/api/modal/proof", body, "")
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.AttachProof(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing file", func(t *testing.T) {
		handler, _ := NewMock(t, 1024)
		body, contentType := proofForm(t, "other", "shot.png", "image/png", pngBody)

		r := request(http.MethodPost, "/api/modal/proof", body, "")
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.AttachProof(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Proof file is required")
	})

	t.Run("Too large", func(t *testing.T) {
		handler, _ := NewMock(t, 8)
		body, contentType := proofForm(t, proofField, "shot.png", "image/png", pngBody)

		r := request(http.MethodPost, "/api/modal/proof", body, "")
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.AttachProof(w, r)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("Not multipart", func(t *testing.T) {
		handler, _ := NewMock(t, 1024)
		r := request(http.MethodPost, "/api/modal/proof", bytes.NewBufferString("hello"), "")
		r.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()
		handler.AttachProof(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Rejected by store", func(t *testing.T) {
		handler, service := NewMock(t, 1024)
		body, contentType := proofForm(t, proofField, "notes.txt", "text/plain", []byte(strings.Repeat("a", 10)))
		service.EXPECT().AttachProof(gomock.Any(), "sid", gomock.Any()).Return(shell.View{}, proof.ErrUnsupportedProof)

		r := request(http.MethodPost, "/api/modal/proof", body, "")
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.AttachProof(w, r)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
