// Package proof stores the screenshots users attach to task submissions.
package proof

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"path"
	"strings"
)

// PlaceholderURL is the reference recorded when no object storage is set up.
const PlaceholderURL = "https://via.placeholder.com/300"

var (
	ErrUnsupportedProof = errors.New("proof must be an image")
	ErrTooLarge         = errors.New("proof image is too large")
	ErrEmptyProof       = errors.New("proof image is empty")
)

type Upload struct {
	UID         string
	TaskID      string
	Filename    string
	ContentType string
	Body        []byte
}

// Store keeps a proof image and returns the reference saved with the
// submission.
type Store interface {
	Put(ctx context.Context, u Upload) (string, error)
}

// Validate checks size and sniffs the content type, filling it in when the
// client sent none.
func Validate(u *Upload, maxBytes int64) error {
	if len(u.Body) == 0 {
		return ErrEmptyProof
	}
	if maxBytes > 0 && int64(len(u.Body)) > maxBytes {
		return ErrTooLarge
	}
	sniffed := http.DetectContentType(u.Body)
	if !strings.HasPrefix(sniffed, "image/") {
		return ErrUnsupportedProof
	}
	if ct, _, err := mime.ParseMediaType(u.ContentType); err != nil || !strings.HasPrefix(ct, "image/") {
		u.ContentType = sniffed
	}
	return nil
}

func extension(u Upload) string {
	if ext := strings.ToLower(path.Ext(u.Filename)); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(u.ContentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}

// PlaceholderStore accepts valid images without keeping them.
type PlaceholderStore struct {
	maxBytes int64
}

func NewPlaceholderStore(maxBytes int64) *PlaceholderStore {
	return &PlaceholderStore{maxBytes: maxBytes}
}

func (s *PlaceholderStore) Put(ctx context.Context, u Upload) (string, error) {
	if err := Validate(&u, s.maxBytes); err != nil {
		return "", err
	}
	return PlaceholderURL, nil
}
