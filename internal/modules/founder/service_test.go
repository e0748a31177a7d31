package founder

import (
	"context"
	"fmt"
	"testing"

	"kabstudio/internal/domain"
	"kabstudio/internal/media"
	"kabstudio/internal/pkg/collection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	f     domain.Founder
	saves int
}

func (r *fakeRepo) GetOrCreate(_ context.Context) (*domain.Founder, error) {
	cp := r.f
	return &cp, nil
}

func (r *fakeRepo) Save(_ context.Context, f *domain.Founder) error {
	r.f = *f
	r.saves++
	return nil
}

type fakeStore struct {
	uploads int
}

func (s *fakeStore) Upload(_ context.Context, _ []byte, _, folder string) (string, error) {
	s.uploads++
	return fmt.Sprintf("/static/uploads/%s/file-%d.jpg", folder, s.uploads), nil
}

func (s *fakeStore) Delete(_ context.Context, _ string) error { return nil }

var img = media.File{Data: []byte("fake"), MimeType: "image/jpeg"}

func TestUpdateReplacesImagesWholesale(t *testing.T) {
	repo := &fakeRepo{f: domain.Founder{Name: "Kab", Images: []string{"old-1", "old-2", "old-3"}}}
	store := &fakeStore{}
	svc := NewService(repo, store)

	f, err := svc.Update(context.Background(), "", "New message", []string{"old-2"}, []media.File{img})
	require.NoError(t, err)

	// kept URL first, then the new upload; the dropped URLs are gone
	require.Len(t, f.Images, 2)
	assert.Equal(t, "old-2", f.Images[0])
	assert.Contains(t, f.Images[1], "/founder/")
	assert.Equal(t, "Kab", f.Name)
	assert.Equal(t, "New message", f.Message)
}

func TestUpdateCapacityCheckedBeforeUpload(t *testing.T) {
	repo := &fakeRepo{f: domain.Founder{Images: []string{}}}
	store := &fakeStore{}
	svc := NewService(repo, store)

	_, err := svc.Update(context.Background(), "", "", []string{"a", "b"}, []media.File{img, img})
	assert.ErrorIs(t, err, collection.ErrCapacityExceeded)
	assert.Zero(t, store.uploads)
	assert.Zero(t, repo.saves)
}

func TestUpdateAtCap(t *testing.T) {
	repo := &fakeRepo{f: domain.Founder{Images: []string{}}}
	svc := NewService(repo, &fakeStore{})

	f, err := svc.Update(context.Background(), "Kab", "Hi", []string{"a"}, []media.File{img, img})
	require.NoError(t, err)
	assert.Len(t, f.Images, 3)
}
