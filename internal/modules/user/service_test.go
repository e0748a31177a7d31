package user

import (
	"context"
	"fmt"
	"testing"

	"kabstudio/internal/domain"
	"kabstudio/internal/media"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	users     map[int64]*domain.User
	nextID    int64
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (r *fakeRepo) Create(ctx context.Context, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, u *domain.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

type fakeStore struct {
	uploads int
	deletes []string
	fail    bool
}

func (s *fakeStore) Upload(ctx context.Context, data []byte, mimeType, folder string) (string, error) {
	if s.fail {
		return "", media.ErrUploadFailed
	}
	s.uploads++
	return fmt.Sprintf("https://cdn.example.com/%s/upload-%d.jpg", folder, s.uploads), nil
}

func (s *fakeStore) Delete(ctx context.Context, derivedID string) error {
	s.deletes = append(s.deletes, derivedID)
	return nil
}

func TestCreateHashesPasswordAndDefaultsRole(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeStore{})

	u, err := svc.Create(context.Background(), CreateUserRequest{
		Name:     "Aruzhan",
		Email:    "aruzhan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, u.Role)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeStore{})

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "A", Email: "dup@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateUserRequest{
		Name: "B", Email: "dup@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// The unique index catches the ExistsByEmail race; the mapping must see
// through gorm/pgx error wrapping.
func TestCreateMapsWrappedUniqueViolation(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = fmt.Errorf("insert users: %w", &pgconn.PgError{Code: "23505"})
	svc := NewService(repo, &fakeStore{})

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "A", Email: "race@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateMapsGormDuplicatedKey(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)
	svc := NewService(repo, &fakeStore{})

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "A", Email: "race@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeStore{})

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "A", Email: "a@example.com", Password: "secret123", Role: "superadmin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdatePartialFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeStore{})

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "Old Name", Email: "old@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	oldHash := created.PasswordHash

	updated, err := svc.Update(context.Background(), created.ID, UpdateUserRequest{Name: "New Name"})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "old@example.com", updated.Email)
	assert.Equal(t, oldHash, updated.PasswordHash)
}

func TestUpdateRolePromotion(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeStore{})

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "A", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, UpdateUserRequest{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
}

func TestSetProfileImageDeletesOldFile(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewService(repo, store)

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "A", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	first, err := svc.SetProfileImage(context.Background(), created.ID, media.File{Data: []byte("x"), MimeType: "image/jpeg"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ProfileImage)
	assert.Empty(t, store.deletes)

	second, err := svc.SetProfileImage(context.Background(), created.ID, media.File{Data: []byte("y"), MimeType: "image/jpeg"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ProfileImage, second.ProfileImage)
	require.Len(t, store.deletes, 1)
	assert.Equal(t, media.DerivedID(first.ProfileImage), store.deletes[0])
}

func TestSetProfileImageUploadFailureKeepsCurrent(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewService(repo, store)

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "A", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	first, err := svc.SetProfileImage(context.Background(), created.ID, media.File{Data: []byte("x"), MimeType: "image/jpeg"})
	require.NoError(t, err)

	store.fail = true
	_, err = svc.SetProfileImage(context.Background(), created.ID, media.File{Data: []byte("y"), MimeType: "image/jpeg"})
	assert.ErrorIs(t, err, media.ErrUploadFailed)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ProfileImage, got.ProfileImage)
	assert.Empty(t, store.deletes)
}

func TestRemoveProfileImage(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewService(repo, store)

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "A", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	withImage, err := svc.SetProfileImage(context.Background(), created.ID, media.File{Data: []byte("x"), MimeType: "image/jpeg"})
	require.NoError(t, err)

	cleared, err := svc.RemoveProfileImage(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.ProfileImage)
	require.Len(t, store.deletes, 1)
	assert.Equal(t, media.DerivedID(withImage.ProfileImage), store.deletes[0])
}

func TestRemoveProfileImageWhenNoneSet(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewService(repo, store)

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Name: "A", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	cleared, err := svc.RemoveProfileImage(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.ProfileImage)
	assert.Empty(t, store.deletes)
}
