package founder

import (
	"context"

	"kabstudio/internal/domain"
	"kabstudio/internal/media"
	"kabstudio/internal/pkg/collection"
)

const imagesFolder = "founder"

type FounderRepositoryInterface interface {
	GetOrCreate(ctx context.Context) (*domain.Founder, error)
	Save(ctx context.Context, f *domain.Founder) error
}

type Service struct {
	repo  FounderRepositoryInterface
	store media.Store
}

func NewService(repo FounderRepositoryInterface, store media.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) Get(ctx context.Context) (*domain.Founder, error) {
	return s.repo.GetOrCreate(ctx)
}

// Update replaces the founder document wholesale: the images become
// keepURLs (existing URLs the client kept) plus the new uploads, capped at
// MaxHeroImages. The cap is checked before any upload so a rejected
// update never orphans a stored file. Dropped URLs are not deleted from
// the media store.
func (s *Service) Update(ctx context.Context, name, message string, keepURLs []string, files []media.File) (*domain.Founder, error) {
	f, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if !collection.Fits(keepURLs, len(files), domain.MaxHeroImages) {
		return nil, collection.ErrCapacityExceeded
	}

	if name != "" {
		f.Name = name
	}
	if message != "" {
		f.Message = message
	}

	images := make([]string, 0, len(keepURLs)+len(files))
	images = append(images, keepURLs...)
	for _, file := range files {
		url, err := s.store.Upload(ctx, file.Data, file.MimeType, imagesFolder)
		if err != nil {
			return nil, err
		}
		images = append(images, url)
	}
	f.Images = images

	if err := s.repo.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
