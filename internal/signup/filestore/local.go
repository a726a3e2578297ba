package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// LocalStore keeps files flat in a single directory. All access goes through
// an os.Root so a name can never resolve outside of it.
type LocalStore struct {
	dir  string
	root *os.Root
}

// NewLocalStore opens dir, creating it if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open root %s: %w", dir, err)
	}

	return &LocalStore{dir: dir, root: root}, nil
}

// Dir returns the directory files are stored in.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Put(ctx context.Context, name string, r io.Reader, _ string) error {
	if err := ValidName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := s.root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = s.root.Remove(name)
		return err
	}

	return f.Close()
}

func (s *LocalStore) Open(_ context.Context, name string) (*File, error) {
	if err := ValidName(name); err != nil {
		return nil, ErrNotFound
	}

	f, err := s.root.Open(name)
	if err != nil {
		return nil, mapNotExist(err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, ErrNotFound
	}

	return &File{
		Content: f,
		Info: FileInfo{
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		},
	}, nil
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	if err := ValidName(name); err != nil {
		return err
	}
	return mapNotExist(s.root.Remove(name))
}

func (s *LocalStore) Ping(_ context.Context) error {
	_, err := s.root.Stat(".")
	return err
}

func (s *LocalStore) Close() error { return s.root.Close() }

func mapNotExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}
