package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/homebase/household-api/internal/core/domain"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// ImageStore writes uploaded profile images under a directory that the
// router serves at a public URL prefix.
type ImageStore struct {
	fs       afero.Fs
	dir      string
	prefix   string
	maxBytes int64
}

// NewImageStore creates dir on fs if needed. Stored files are addressed as
// prefix/<name>.
func NewImageStore(fs afero.Fs, dir, prefix string, maxBytes int64) (*ImageStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("image store: %w", err)
	}
	return &ImageStore{
		fs:       fs,
		dir:      dir,
		prefix:   strings.TrimRight(prefix, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Save stores r under a fresh random name that keeps the extension of
// filename and returns its public URL path.
func (s *ImageStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return "", domain.Invalid("image must be a png, jpg, gif or webp file")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	full := filepath.Join(s.dir, name)

	f, err := s.fs.Create(full)
	if err != nil {
		return "", fmt.Errorf("image store: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = s.fs.Remove(full)
		return "", fmt.Errorf("image store: %w", err)
	case n > s.maxBytes:
		_ = s.fs.Remove(full)
		return "", domain.Invalid("image must be at most %d bytes", s.maxBytes)
	case closeErr != nil:
		_ = s.fs.Remove(full)
		return "", fmt.Errorf("image store: %w", closeErr)
	}

	return path.Join(s.prefix, name), nil
}

// Dir is the directory the router serves.
func (s *ImageStore) Dir() string { return s.dir }
