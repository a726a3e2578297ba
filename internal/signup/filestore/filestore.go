// Package filestore persists uploaded bytes under generated names and reads
// them back. Backends: a local directory and S3-compatible object storage.
package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
)

var (
	ErrNotFound    = errors.New("filestore: not found")
	ErrInvalidName = errors.New("filestore: invalid file name")
)

// Store is implemented by every storage backend. Implementations must be safe
// for concurrent use.
type Store interface {
	// Put writes r under name, replacing anything already stored there.
	Put(ctx context.Context, name string, r io.Reader, contentType string) error

	// Open returns the stored file. The caller must close File.Content.
	// Returns ErrNotFound when nothing is stored under name.
	Open(ctx context.Context, name string) (*File, error)

	// Delete removes a stored file. Only used to compensate a failed
	// registration when orphan cleanup is enabled.
	Delete(ctx context.Context, name string) error

	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// File is a stored file with its content.
type File struct {
	Content io.ReadCloser
	Info    FileInfo
}

type FileInfo struct {
	Name        string
	Size        int64
	ContentType string // Empty when the backend does not record one
	ModTime     time.Time
}

// ValidName reports whether name can be used as a flat key in a store. Names
// must be a single path element.
func ValidName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrInvalidName
	case strings.ContainsAny(name, "/\\\x00"):
		return ErrInvalidName
	}
	return nil
}

// Save reads the upload, derives its generated name with namer and writes it
// to st. The returned name is what records reference.
func Save(ctx context.Context, st Store, namer Namer, u domain.Upload) (string, error) {
	rc, err := u.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %q: %w", u.Filename, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read upload %q: %w", u.Filename, err)
	}

	name := namer.Name(u.Filename, data)
	if err := ValidName(name); err != nil {
		return "", fmt.Errorf("%w: %q", err, name)
	}

	if err := st.Put(ctx, name, bytes.NewReader(data), u.ContentType); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	return name, nil
}
