package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres,
// mongo) implement this and expose sub-repositories.
type Store interface {
	Users() Users

	// ApplyMigrations brings the schema (or indexes) up to date.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the id is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns every user in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
