package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
)

type usersRepo struct {
	db DBTX
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	files := u.Attachments
	if files == nil {
		files = []string{}
	}
	raw, err := json.Marshal(files)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO users (id, name, email, profile_pic, uploaded_files, created_at)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6)`

	_, err = r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.ProfilePicture, string(raw), u.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", mapConstraint(err))
	}

	return nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	query :=
		`SELECT id, name, email, profile_pic, uploaded_files::text, created_at
		 FROM users
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var (
			u   domain.User
			raw string
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.ProfilePicture, &raw, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		u.Attachments = []string{}
		if err := json.Unmarshal([]byte(raw), &u.Attachments); err != nil {
			return nil, fmt.Errorf("decode uploaded_files for %s: %w", u.ID, err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}
