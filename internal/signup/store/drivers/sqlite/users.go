package sqlite

import (
	"context"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
	"github.com/aussiebroadwan/signup/internal/signup/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	files, err := encodeFiles(u.Attachments)
	if err != nil {
		return err
	}

	err = r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		ProfilePic:    u.ProfilePicture,
		UploadedFiles: files,
		CreatedAt:     u.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		if users[i], err = mapUser(row); err != nil {
			return nil, err
		}
	}
	return users, nil
}
