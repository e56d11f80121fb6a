// Package storage keeps uploaded media (journal covers) on local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const CoverNamespace = "journal_covers"

var (
	ErrNotImage = errors.New("upload a valid image. The file you uploaded was either not an image or a corrupted image")
	ErrTooLarge = errors.New("the uploaded file is too large")
	ErrEmpty    = errors.New("the submitted file is empty")
)

// Upload is an inspected file ready to be written.
type Upload struct {
	Data      []byte
	MIME      string
	Extension string
}

type MediaStore struct {
	Root      string
	URLPrefix string
	MaxBytes  int64
}

// Inspect reads the upload and sniffs its content type. Only images pass.
func (m MediaStore) Inspect(fh *multipart.FileHeader) (Upload, error) {
	if fh.Size == 0 {
		return Upload{}, ErrEmpty
	}
	if m.MaxBytes > 0 && fh.Size > m.MaxBytes {
		return Upload{}, ErrTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return m.inspect(f)
}

func (m MediaStore) inspect(r io.Reader) (Upload, error) {
	limit := m.MaxBytes
	if limit <= 0 {
		limit = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Upload{}, ErrEmpty
	}
	if int64(len(data)) > limit {
		return Upload{}, ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return Upload{}, ErrNotImage
	}
	return Upload{Data: data, MIME: mt.String(), Extension: mt.Extension()}, nil
}

// Write stores the upload under namespace and returns its relative path.
func (m MediaStore) Write(namespace string, u Upload) (string, error) {
	dir := filepath.Join(m.Root, namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	name := uuid.NewString() + u.Extension
	if err := os.WriteFile(filepath.Join(dir, name), u.Data, 0o644); err != nil {
		return "", fmt.Errorf("write media: %w", err)
	}
	return path.Join(namespace, name), nil
}

// Remove deletes a previously written file; missing files are ignored.
func (m MediaStore) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(m.Root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL maps a stored relative path to its public URL.
func (m MediaStore) URL(rel string) string {
	if rel == "" {
		return ""
	}
	prefix := m.URLPrefix
	if prefix == "" {
		prefix = "/media/"
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(rel, "/")
}
