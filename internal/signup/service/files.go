package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/signup/internal/signup/filestore"
)

// FileService reads stored files back by their generated name. Any caller
// may read any file, there is no ownership check.
type FileService struct {
	Files filestore.Store
}

// Open returns the stored file. The caller must close File.Content.
func (s *FileService) Open(ctx context.Context, name string) (*filestore.File, error) {
	f, err := s.Files.Open(ctx, name)
	if err != nil {
		if errors.Is(err, filestore.ErrNotFound) || errors.Is(err, filestore.ErrInvalidName) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return f, nil
}
