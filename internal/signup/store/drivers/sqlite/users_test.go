package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
	"github.com/aussiebroadwan/signup/internal/signup/store"
	"github.com/aussiebroadwan/signup/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(DSN(filepath.Join(t.TempDir(), "signup.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestCreateAndListUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	empty, err := st.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	ada := domain.User{
		ID:             idx.New().String(),
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		ProfilePicture: "1700000000000-ada.png",
		Attachments:    []string{"1700000000001-notes.pdf", "1700000000002-diagram.gif"},
		CreatedAt:      time.Now(),
	}
	grace := domain.User{
		ID:             idx.New().String(),
		Name:           "Grace Hopper",
		Email:          "grace@example.com",
		ProfilePicture: "1700000000003-grace.jpg",
		CreatedAt:      time.Now(),
	}

	require.NoError(t, st.Users().CreateUser(ctx, ada))
	require.NoError(t, st.Users().CreateUser(ctx, grace))

	users, err := st.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Insertion order is preserved
	require.Equal(t, ada.ID, users[0].ID)
	require.Equal(t, "Ada Lovelace", users[0].Name)
	require.Equal(t, "ada@example.com", users[0].Email)
	require.Equal(t, ada.ProfilePicture, users[0].ProfilePicture)
	require.Equal(t, ada.Attachments, users[0].Attachments)
	require.WithinDuration(t, ada.CreatedAt, users[0].CreatedAt, time.Second)

	require.Equal(t, grace.ID, users[1].ID)
	require.NotNil(t, users[1].Attachments)
	require.Empty(t, users[1].Attachments)
}

func TestCreateUserDuplicateID(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := domain.User{
		ID:             idx.New().String(),
		Name:           "Ada",
		Email:          "ada@example.com",
		ProfilePicture: "a.png",
		CreatedAt:      time.Now(),
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	err := st.Users().CreateUser(ctx, u)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestDecodeFiles(t *testing.T) {
	files, err := decodeFiles("")
	require.NoError(t, err)
	require.Empty(t, files)

	_, err = decodeFiles("not json")
	require.Error(t, err)
}
