package project

import (
	"context"

	"kabstudio/internal/domain"
	"kabstudio/internal/media"
	"kabstudio/internal/pkg/collection"
)

const mediaFolder = "projects"

type Service struct {
	repo  ProjectRepositoryInterface
	store media.Store
}

func NewService(repo ProjectRepositoryInterface, store media.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context, category string) ([]domain.Project, error) {
	return s.repo.ListActive(ctx, category)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListAll(ctx)
}

// Create validates enums, then either records the youtube link (skipping
// uploads entirely) or uploads every attached file. A youtube project
// always stores an empty mediaFiles array.
func (s *Service) Create(ctx context.Context, input ProjectInput, files []media.File) (*domain.Project, error) {
	category := domain.ProjectCategory(input.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	t := domain.MediaType(input.Type)
	if !t.Valid() {
		return nil, ErrInvalidType
	}

	p := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Type:        t,
		MediaFiles:  []string{},
		IsActive:    true,
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if input.Order != nil {
		p.Order = *input.Order
	}

	if t == domain.MediaYoutube {
		if input.YoutubeURL == "" {
			return nil, ErrYoutubeURLRequired
		}
		p.YoutubeUrl = input.YoutubeURL
	} else {
		if len(files) == 0 {
			return nil, ErrNoMediaFiles
		}
		urls, err := s.uploadAll(ctx, files)
		if err != nil {
			return nil, err
		}
		p.MediaFiles = urls
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update partially updates the project; new uploads are appended to the
// mediaFiles snapshot fetched at the start of the call.
func (s *Service) Update(ctx context.Context, id int64, input ProjectInput, files []media.File) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		p.Title = input.Title
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if input.Category != "" {
		category := domain.ProjectCategory(input.Category)
		if !category.Valid() {
			return nil, ErrInvalidCategory
		}
		p.Category = category
	}
	if input.Type != "" {
		t := domain.MediaType(input.Type)
		if !t.Valid() {
			return nil, ErrInvalidType
		}
		p.Type = t
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if input.Order != nil {
		p.Order = *input.Order
	}

	if p.Type == domain.MediaYoutube {
		if input.YoutubeURL != "" {
			p.YoutubeUrl = input.YoutubeURL
		}
		if p.YoutubeUrl == "" {
			return nil, ErrYoutubeURLRequired
		}
		p.MediaFiles = []string{}
	} else {
		p.YoutubeUrl = ""
		urls, err := s.uploadAll(ctx, files)
		if err != nil {
			return nil, err
		}
		p.MediaFiles, err = collection.Append(p.MediaFiles, urls, 0)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteMedia removes the media URL at index and compacts the array. The
// stored object is left orphaned (legacy behavior).
func (s *Service) DeleteMedia(ctx context.Context, id int64, index int) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.MediaFiles, err = collection.DeleteAt(p.MediaFiles, index)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) uploadAll(ctx context.Context, files []media.File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.store.Upload(ctx, f.Data, f.MimeType, mediaFolder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
