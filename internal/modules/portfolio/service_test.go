package portfolio

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
	p     domain.Portfolio
	saves int
}

func (r *fakeRepo) GetOrCreate(_ context.Context) (*domain.Portfolio, error) {
	cp := r.p
	return &cp, nil
}

func (r *fakeRepo) Save(_ context.Context, p *domain.Portfolio) error {
	r.p = *p
	r.saves++
	return nil
}

type fakeStore struct {
	uploads int
	fail    bool
}

func (s *fakeStore) Upload(_ context.Context, _ []byte, _, folder string) (string, error) {
	if s.fail {
		return "", media.ErrUploadFailed
	}
	s.uploads++
	return fmt.Sprintf("/static/uploads/%s/file-%d.jpg", folder, s.uploads), nil
}

func (s *fakeStore) Delete(_ context.Context, _ string) error { return nil }

func newService(p domain.Portfolio) (*Service, *fakeRepo, *fakeStore) {
	repo := &fakeRepo{p: p}
	store := &fakeStore{}
	return NewService(repo, store), repo, store
}

var img = media.File{Data: []byte("fake"), MimeType: "image/jpeg"}

func TestAddHeroImageSequence(t *testing.T) {
	svc, repo, _ := newService(domain.Portfolio{HeroImages: []string{}})
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		p, err := svc.AddHeroImage(ctx, img)
		require.NoError(t, err)
		assert.Len(t, p.HeroImages, i)
	}

	_, err := svc.AddHeroImage(ctx, img)
	assert.ErrorIs(t, err, collection.ErrCapacityExceeded)
	assert.Len(t, repo.p.HeroImages, 3)
}

func TestAddHeroImageCapacityCheckedBeforeUpload(t *testing.T) {
	repo := &fakeRepo{p: domain.Portfolio{HeroImages: []string{"a", "b", "c"}}}
	store := &fakeStore{}
	svc := NewService(repo, store)

	_, err := svc.AddHeroImage(context.Background(), img)
	assert.ErrorIs(t, err, collection.ErrCapacityExceeded)
	// rejected append must not have touched the upload adapter
	assert.Zero(t, store.uploads)
	assert.Zero(t, repo.saves)
}

func TestReplaceHeroImageBounds(t *testing.T) {
	svc, repo, store := newService(domain.Portfolio{HeroImages: []string{"a", "b"}})
	ctx := context.Background()

	p, err := svc.ReplaceHeroImage(ctx, 1, img)
	require.NoError(t, err)
	assert.Equal(t, "a", p.HeroImages[0])
	assert.NotEqual(t, "b", p.HeroImages[1])

	_, err = svc.ReplaceHeroImage(ctx, 2, img)
	assert.ErrorIs(t, err, collection.ErrIndexOutOfRange)
	// bounds failure happens before upload
	assert.Equal(t, 1, store.uploads)
	assert.Len(t, repo.p.HeroImages, 2)
	assert.Equal(t, "a", repo.p.HeroImages[0])
}

func TestDeleteHeroImageCompacts(t *testing.T) {
	svc, repo, _ := newService(domain.Portfolio{HeroImages: []string{"a", "b", "c"}})

	p, err := svc.DeleteHeroImage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, p.HeroImages)

	_, err = svc.DeleteHeroImage(context.Background(), 5)
	assert.ErrorIs(t, err, collection.ErrIndexOutOfRange)
	assert.Equal(t, []string{"a", "c"}, repo.p.HeroImages)
}

func TestAddSampleWorkYoutubeSkipsUploads(t *testing.T) {
	svc, repo, store := newService(domain.Portfolio{SampleWorks: []domain.SampleWork{}})

	p, err := svc.AddSampleWork(context.Background(), SampleWorkInput{
		Title:      "Showreel",
		Type:       "youtube",
		YoutubeURL: "https://youtu.be/abc123",
	}, []media.File{img}) // attached files must be ignored
	require.NoError(t, err)

	require.Len(t, p.SampleWorks, 1)
	work := p.SampleWorks[0]
	assert.Equal(t, domain.MediaYoutube, work.Type)
	assert.Equal(t, "https://youtu.be/abc123", work.YoutubeUrl)
	assert.Empty(t, work.MediaUrls)
	assert.Zero(t, store.uploads)
	assert.Equal(t, 1, repo.saves)
}

func TestAddSampleWorkYoutubeRequiresURL(t *testing.T) {
	svc, _, _ := newService(domain.Portfolio{})

	_, err := svc.AddSampleWork(context.Background(), SampleWorkInput{
		Title: "Showreel",
		Type:  "youtube",
	}, nil)
	assert.ErrorIs(t, err, ErrYoutubeURLRequired)
}

func TestAddSampleWorkImageClearsYoutube(t *testing.T) {
	svc, _, _ := newService(domain.Portfolio{})

	p, err := svc.AddSampleWork(context.Background(), SampleWorkInput{
		Title:      "Shoot",
		Type:       "image",
		YoutubeURL: "https://youtu.be/ignored",
	}, []media.File{img, img})
	require.NoError(t, err)

	work := p.SampleWorks[0]
	assert.Empty(t, work.YoutubeUrl)
	assert.Len(t, work.MediaUrls, 2)
}

func TestAddSampleWorkInvalidType(t *testing.T) {
	svc, _, _ := newService(domain.Portfolio{})
	_, err := svc.AddSampleWork(context.Background(), SampleWorkInput{Title: "x", Type: "gif"}, nil)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestUpdateSampleWorkRemoveIndicesThenAppend(t *testing.T) {
	svc, _, _ := newService(domain.Portfolio{SampleWorks: []domain.SampleWork{{
		Title:     "Shoot",
		Type:      domain.MediaImage,
		MediaUrls: []string{"A", "B", "C"},
	}}})

	p, err := svc.UpdateSampleWork(context.Background(), 0, SampleWorkInput{
		RemoveIndices: []int{1},
	}, []media.File{img})
	require.NoError(t, err)

	urls := p.SampleWorks[0].MediaUrls
	require.Len(t, urls, 3)
	assert.Equal(t, "A", urls[0])
	assert.Equal(t, "C", urls[1])
	// the new upload lands after the filtered survivors
	assert.Contains(t, urls[2], "/works/")
}

func TestUpdateSampleWorkRemoveIndicesOutOfRange(t *testing.T) {
	svc, repo, store := newService(domain.Portfolio{SampleWorks: []domain.SampleWork{{
		Title:     "Shoot",
		Type:      domain.MediaImage,
		MediaUrls: []string{"A", "B"},
	}}})

	_, err := svc.UpdateSampleWork(context.Background(), 0, SampleWorkInput{
		RemoveIndices: []int{2},
	}, []media.File{img})
	assert.ErrorIs(t, err, collection.ErrIndexOutOfRange)
	// removal is validated before anything is uploaded or saved
	assert.Zero(t, store.uploads)
	assert.Zero(t, repo.saves)
	assert.Equal(t, []string{"A", "B"}, repo.p.SampleWorks[0].MediaUrls)
}

func TestUpdateSampleWorkSwitchToYoutube(t *testing.T) {
	svc, _, store := newService(domain.Portfolio{SampleWorks: []domain.SampleWork{{
		Title:     "Shoot",
		Type:      domain.MediaImage,
		MediaUrls: []string{"A", "B"},
	}}})

	p, err := svc.UpdateSampleWork(context.Background(), 0, SampleWorkInput{
		Type:       "youtube",
		YoutubeURL: "https://youtu.be/xyz",
	}, []media.File{img})
	require.NoError(t, err)

	work := p.SampleWorks[0]
	assert.Empty(t, work.MediaUrls)
	assert.Equal(t, "https://youtu.be/xyz", work.YoutubeUrl)
	assert.Zero(t, store.uploads)
}

func TestUpdateSampleWorkIndexOutOfRange(t *testing.T) {
	svc, _, _ := newService(domain.Portfolio{SampleWorks: []domain.SampleWork{}})
	_, err := svc.UpdateSampleWork(context.Background(), 0, SampleWorkInput{}, nil)
	assert.ErrorIs(t, err, collection.ErrIndexOutOfRange)
}

func TestDeleteSampleWorkCompacts(t *testing.T) {
	svc, _, _ := newService(domain.Portfolio{SampleWorks: []domain.SampleWork{
		{Title: "one"}, {Title: "two"}, {Title: "three"},
	}})

	p, err := svc.DeleteSampleWork(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, p.SampleWorks, 2)
	assert.Equal(t, "two", p.SampleWorks[0].Title)
	assert.Equal(t, "three", p.SampleWorks[1].Title)
}

func TestUploadFailurePropagates(t *testing.T) {
	repo := &fakeRepo{p: domain.Portfolio{HeroImages: []string{}}}
	store := &fakeStore{fail: true}
	svc := NewService(repo, store)

	_, err := svc.AddHeroImage(context.Background(), img)
	assert.ErrorIs(t, err, media.ErrUploadFailed)
	assert.Zero(t, repo.saves)
}
