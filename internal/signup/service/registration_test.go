package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
	"github.com/aussiebroadwan/signup/internal/signup/filestore"
	"github.com/aussiebroadwan/signup/internal/signup/store"
	"github.com/aussiebroadwan/signup/internal/signup/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc   *RegistrationService
	files *filestore.LocalStore
	db    *sqlite.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "signup.db")))
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations())
	t.Cleanup(func() { _ = db.Close() })

	files, err := filestore.NewLocalStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = files.Close() })

	return &fixture{
		svc: &RegistrationService{
			Store: db,
			Files: files,
			Namer: filestore.ULIDNamer(),
		},
		files: files,
		db:    db,
	}
}

func (f *fixture) storedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.files.Dir())
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (f *fixture) read(t *testing.T, name string) []byte {
	t.Helper()
	file, err := f.files.Open(context.Background(), name)
	require.NoError(t, err)
	defer file.Content.Close()

	data, err := io.ReadAll(file.Content)
	require.NoError(t, err)
	return data
}

func pngBytes(n int) []byte {
	data := make([]byte, n)
	copy(data, "\x89PNG\r\n\x1a\n")
	return data
}

func pdfBytes(n int) []byte {
	data := make([]byte, n)
	copy(data, "%PDF-1.4\n")
	return data
}

func TestRegisterAda(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	pic := upload("ada.png", "image/png", pngBytes(500))
	notes := pdfBytes(2000)

	user, err := f.svc.Register(ctx, RegisterRequest{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		ProfilePic:    &pic,
		UploadedFiles: []domain.Upload{upload("notes.pdf", "application/pdf", notes)},
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.True(t, strings.HasSuffix(user.ProfilePicture, "-ada.png"), user.ProfilePicture)
	require.Len(t, user.Attachments, 1)
	require.True(t, strings.HasSuffix(user.Attachments[0], "-notes.pdf"), user.Attachments[0])

	users, err := f.svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Ada Lovelace", users[0].Name)
	require.Equal(t, "ada@example.com", users[0].Email)
	require.Equal(t, user.ProfilePicture, users[0].ProfilePicture)
	require.Equal(t, user.Attachments, users[0].Attachments)

	require.Equal(t, pngBytes(500), f.read(t, user.ProfilePicture))
	require.Equal(t, notes, f.read(t, user.Attachments[0]))
}

func TestRegisterPreservesAttachmentOrder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	pic := upload("me.jpg", "image/jpeg", []byte("jpeg"))
	req := RegisterRequest{Name: "Grace", Email: "grace@example.com", ProfilePic: &pic}
	for i := range MaxAttachments {
		req.UploadedFiles = append(req.UploadedFiles,
			upload(fmt.Sprintf("file%02d.pdf", i), "application/pdf", []byte(fmt.Sprint(i))))
	}

	user, err := f.svc.Register(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, user.Attachments, MaxAttachments)
	for i, name := range user.Attachments {
		require.True(t, strings.HasSuffix(name, fmt.Sprintf("-file%02d.pdf", i)), name)
		require.Equal(t, []byte(fmt.Sprint(i)), f.read(t, name))
	}
	require.Len(t, f.storedFiles(t), MaxAttachments+1)
}

func TestRegisterListGrowsByOne(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	for i := range 3 {
		before, err := f.svc.ListUsers(ctx)
		require.NoError(t, err)

		pic := upload("p.gif", "image/gif", []byte("GIF89a"))
		_, err = f.svc.Register(ctx, RegisterRequest{
			Name:       fmt.Sprintf("user-%d", i),
			Email:      fmt.Sprintf("u%d@example.com", i),
			ProfilePic: &pic,
		})
		require.NoError(t, err)

		after, err := f.svc.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
		require.Equal(t, fmt.Sprintf("user-%d", i), after[len(after)-1].Name)
	}
}

func TestRegisterRejectsVirusWithoutWriting(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	pic := upload("virus.exe", "application/octet-stream", []byte("MZ"))
	_, err := f.svc.Register(ctx, RegisterRequest{
		Name:       "Mallory",
		Email:      "mallory@example.com",
		ProfilePic: &pic,
	})
	require.ErrorIs(t, err, ErrValidation)
	require.EqualError(t, err, reasonFileType)

	users, err := f.svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
	require.Empty(t, f.storedFiles(t))
}

func TestRegisterRejectsElevenAttachmentsWithoutWriting(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	pic := upload("ada.png", "image/png", pngBytes(10))
	req := RegisterRequest{Name: "Ada", Email: "ada@example.com", ProfilePic: &pic}
	for range MaxAttachments + 1 {
		req.UploadedFiles = append(req.UploadedFiles, upload("n.pdf", "application/pdf", pdfBytes(10)))
	}

	_, err := f.svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
	require.Empty(t, f.storedFiles(t))
}

func TestRegisterRejectsLateInvalidFileWithoutWriting(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	pic := upload("ada.png", "image/png", pngBytes(10))
	_, err := f.svc.Register(context.Background(), RegisterRequest{
		Name:       "Ada",
		Email:      "ada@example.com",
		ProfilePic: &pic,
		UploadedFiles: []domain.Upload{
			upload("a.pdf", "application/pdf", pdfBytes(10)),
			upload("big.pdf", "application/pdf", pdfBytes(MaxFileSize+1)),
		},
	})
	require.ErrorIs(t, err, ErrValidation)
	require.EqualError(t, err, reasonTooLarge)
	require.Empty(t, f.storedFiles(t))
}

// failingUsers rejects every write.
type failingUsers struct{ store.Users }

func (failingUsers) CreateUser(context.Context, domain.User) error {
	return errors.New("database is locked")
}

type failingStore struct{ store.Store }

func (s failingStore) Users() store.Users { return failingUsers{s.Store.Users()} }

// flakyFiles fails every Put after the first n succeed.
type flakyFiles struct {
	filestore.Store
	n     int32
	calls atomic.Int32
}

func (f *flakyFiles) Put(ctx context.Context, name string, r io.Reader, ct string) error {
	if f.calls.Add(1) > f.n {
		return errors.New("disk full")
	}
	return f.Store.Put(ctx, name, r, ct)
}

func TestRegisterPersistenceFailureLeavesOrphans(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.svc.Store = failingStore{f.db}

	pic := upload("ada.png", "image/png", pngBytes(10))
	_, err := f.svc.Register(context.Background(), RegisterRequest{
		Name:          "Ada",
		Email:         "ada@example.com",
		ProfilePic:    &pic,
		UploadedFiles: []domain.Upload{upload("n.pdf", "application/pdf", pdfBytes(10))},
	})
	require.ErrorIs(t, err, ErrPersistence)
	require.ErrorContains(t, err, "database is locked")
	require.Len(t, f.storedFiles(t), 2)

	users, err := f.db.Users().ListUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestRegisterPersistenceFailureWithCleanup(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.svc.Store = failingStore{f.db}
	f.svc.CleanupOrphans = true

	pic := upload("ada.png", "image/png", pngBytes(10))
	_, err := f.svc.Register(context.Background(), RegisterRequest{
		Name:          "Ada",
		Email:         "ada@example.com",
		ProfilePic:    &pic,
		UploadedFiles: []domain.Upload{upload("n.pdf", "application/pdf", pdfBytes(10))},
	})
	require.ErrorIs(t, err, ErrPersistence)
	require.Empty(t, f.storedFiles(t))
}

func TestRegisterStorageFailure(t *testing.T) {
	t.Parallel()

	for _, cleanup := range []bool{false, true} {
		t.Run(fmt.Sprintf("cleanup=%v", cleanup), func(t *testing.T) {
			f := newFixture(t)
			f.svc.Files = &flakyFiles{Store: f.files, n: 1}
			f.svc.CleanupOrphans = cleanup

			pic := upload("ada.png", "image/png", pngBytes(10))
			_, err := f.svc.Register(context.Background(), RegisterRequest{
				Name:       "Ada",
				Email:      "ada@example.com",
				ProfilePic: &pic,
				UploadedFiles: []domain.Upload{
					upload("a.pdf", "application/pdf", pdfBytes(10)),
					upload("b.pdf", "application/pdf", pdfBytes(10)),
				},
			})
			require.ErrorIs(t, err, ErrStorage)
			require.ErrorContains(t, err, "disk full")

			users, err := f.db.Users().ListUsers(context.Background())
			require.NoError(t, err)
			require.Empty(t, users, "no record after a failed write")

			if cleanup {
				require.Empty(t, f.storedFiles(t))
			} else {
				require.Len(t, f.storedFiles(t), 1, "profile picture is left behind")
			}
		})
	}
}

func TestRegisterTimestampNaming(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.svc.Namer = filestore.TimestampNamer(func() time.Time { return time.UnixMilli(1700000000000) })

	pic := upload("ada.png", "image/png", pngBytes(10))
	user, err := f.svc.Register(context.Background(), RegisterRequest{
		Name: "Ada", Email: "ada@example.com", ProfilePic: &pic,
	})
	require.NoError(t, err)
	require.Equal(t, "1700000000000-ada.png", user.ProfilePicture)
}
