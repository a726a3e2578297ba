package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
	"github.com/aussiebroadwan/signup/internal/signup/filestore"
	"github.com/aussiebroadwan/signup/internal/signup/store"
	"github.com/aussiebroadwan/signup/pkg/idx"
	"github.com/aussiebroadwan/signup/pkg/slogx"
)

type RegistrationService struct {
	Store store.Store
	Files filestore.Store
	Namer filestore.Namer

	// CleanupOrphans deletes the files already written for a registration
	// that fails later on. Off by default, leaving orphans in place.
	CleanupOrphans bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// Register validates every file, stores the profile picture and then the
// attachments in submission order, and finally persists the user record.
// Nothing is written when validation fails.
func (s *RegistrationService) Register(ctx context.Context, req RegisterRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := ValidateRegistration(req); err != nil {
		log.Info("registration rejected", slog.String("reason", err.Error()))
		return domain.User{}, err
	}

	var written []string

	profile, err := filestore.Save(ctx, s.Files, s.Namer, *req.ProfilePic)
	if err != nil {
		log.Error("failed to store profile picture", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	written = append(written, profile)

	attachments := make([]string, 0, len(req.UploadedFiles))
	for _, u := range req.UploadedFiles {
		name, err := filestore.Save(ctx, s.Files, s.Namer, u)
		if err != nil {
			log.Error("failed to store attachment",
				slog.String("filename", u.Filename),
				slog.Any("error", err),
			)
			s.cleanup(ctx, written)
			return domain.User{}, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		written = append(written, name)
		attachments = append(attachments, name)
	}

	user := domain.User{
		ID:             idx.New().String(),
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: profile,
		Attachments:    attachments,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		log.Error("failed to save user", slog.Any("error", err))
		s.cleanup(ctx, written)
		return domain.User{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.Int("attachments", len(attachments)),
	)
	return user, nil
}

// ListUsers returns every registered user.
func (s *RegistrationService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return users, nil
}

func (s *RegistrationService) cleanup(ctx context.Context, names []string) {
	if !s.CleanupOrphans || len(names) == 0 {
		return
	}

	log := slogx.FromContext(ctx)

	// The request may already be cancelled, the deletes still have to run.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	for _, name := range names {
		if err := s.Files.Delete(ctx, name); err != nil && !errors.Is(err, filestore.ErrNotFound) {
			log.Warn("failed to delete orphaned file",
				slog.String("file", name),
				slog.Any("error", err),
			)
		}
	}
}

func (s *RegistrationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
