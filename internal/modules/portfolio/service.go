package portfolio

import (
	"context"

	"kabstudio/internal/domain"
	"kabstudio/internal/media"
	"kabstudio/internal/pkg/collection"
)

const (
	heroFolder  = "hero"
	worksFolder = "works"
)

// Service owns the portfolio singleton and its collection fields. Every
// mutation is a read-modify-write of the whole document against the
// snapshot fetched at the start of the call; concurrent writers are not
// serialized (last write wins).
type Service struct {
	repo  PortfolioRepositoryInterface
	store media.Store
}

func NewService(repo PortfolioRepositoryInterface, store media.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) Get(ctx context.Context) (*domain.Portfolio, error) {
	return s.repo.GetOrCreate(ctx)
}

func (s *Service) UpdateAbout(ctx context.Context, aboutText, experienceYears string) (*domain.Portfolio, error) {
	p, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	p.AboutText = aboutText
	p.ExperienceYears = experienceYears
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateSkills(ctx context.Context, skills []string) (*domain.Portfolio, error) {
	p, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []string{}
	}
	p.Skills = skills
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateExperiences(ctx context.Context, experiences []domain.Experience) (*domain.Portfolio, error) {
	p, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if experiences == nil {
		experiences = []domain.Experience{}
	}
	p.Experiences = experiences
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddHeroImage appends one uploaded image, capped at MaxHeroImages. The
// capacity check runs before the upload so a rejected append never
// orphans a stored file.
func (s *Service) AddHeroImage(ctx context.Context, file media.File) (*domain.Portfolio, error) {
	p, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if !collection.Fits(p.HeroImages, 1, domain.MaxHeroImages) {
		return nil, collection.ErrCapacityExceeded
	}

	url, err := s.store.Upload(ctx, file.Data, file.MimeType, heroFolder)
	if err != nil {
		return nil, err
	}

	p.HeroImages, err = collection.Append(p.HeroImages, []string{url}, domain.MaxHeroImages)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReplaceHeroImage overwrites the slot at index with a new upload. The old
// URL is dropped without deleting the stored object, so replaced media
// is orphaned.
func (s *Service) ReplaceHeroImage(ctx context.Context, index int, file media.File) (*domain.Portfolio, error) {
	p, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(p.HeroImages) {
		return nil, collection.ErrIndexOutOfRange
	}

	url, err := s.store.Upload(ctx, file.Data, file.MimeType, heroFolder)
	if err != nil {
		return nil, err
	}

	p.HeroImages, err = collection.ReplaceAt(p.HeroImages, index, url)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteHeroImage(ctx context.Context, index int) (*domain.Portfolio, error) {
	p, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	p.HeroImages, err = collection.DeleteAt(p.HeroImages, index)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddSampleWork appends a new work. A youtube work short-circuits before
// any upload; image/video works upload every attached file and ignore a
// submitted youtubeUrl.
func (s *Service) AddSampleWork(ctx context.Context, input SampleWorkInput, files []media.File) (*domain.Portfolio, error) {
	t := domain.MediaType(input.Type)
	if !t.Valid() {
		return nil, ErrInvalidType
	}

	work := domain.SampleWork{
		Title:       input.Title,
		Description: input.Description,
		Type:        t,
		MediaUrls:   []string{},
	}

	if t == domain.MediaYoutube {
		if input.YoutubeURL == "" {
			return nil, ErrYoutubeURLRequired
		}
		work.YoutubeUrl = input.YoutubeURL
	} else {
		if len(files) == 0 {
			return nil, ErrNoMediaFiles
		}
	}

	p, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if t != domain.MediaYoutube {
		urls, err := s.uploadAll(ctx, files, worksFolder)
		if err != nil {
			return nil, err
		}
		work.MediaUrls = urls
	}

	p.SampleWorks, err = collection.Append(p.SampleWorks, []domain.SampleWork{work}, 0)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateSampleWork partially updates the work at index. RemoveIndices is
// applied to the mediaUrls snapshot fetched at the start of this call
// (every index refers to the pre-update array) and new uploads are
// appended after the filter.
func (s *Service) UpdateSampleWork(ctx context.Context, index int, input SampleWorkInput, files []media.File) (*domain.Portfolio, error) {
	p, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(p.SampleWorks) {
		return nil, collection.ErrIndexOutOfRange
	}

	work := p.SampleWorks[index]

	if input.Title != "" {
		work.Title = input.Title
	}
	if input.Description != "" {
		work.Description = input.Description
	}
	if input.Type != "" {
		t := domain.MediaType(input.Type)
		if !t.Valid() {
			return nil, ErrInvalidType
		}
		work.Type = t
	}

	if work.Type == domain.MediaYoutube {
		if input.YoutubeURL != "" {
			work.YoutubeUrl = input.YoutubeURL
		}
		if work.YoutubeUrl == "" {
			return nil, ErrYoutubeURLRequired
		}
		// media operations are skipped entirely for youtube works,
		// uploaded files included
		work.MediaUrls = []string{}
	} else {
		work.YoutubeUrl = ""

		// validate removal against the pre-update array before any upload
		kept, err := collection.FilterIndices(work.MediaUrls, input.RemoveIndices)
		if err != nil {
			return nil, err
		}

		urls, err := s.uploadAll(ctx, files, worksFolder)
		if err != nil {
			return nil, err
		}

		work.MediaUrls, err = collection.Append(kept, urls, 0)
		if err != nil {
			return nil, err
		}
	}

	p.SampleWorks, err = collection.ReplaceAt(p.SampleWorks, index, work)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteSampleWork(ctx context.Context, index int) (*domain.Portfolio, error) {
	p, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	p.SampleWorks, err = collection.DeleteAt(p.SampleWorks, index)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) uploadAll(ctx context.Context, files []media.File, folder string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.store.Upload(ctx, f.Data, f.MimeType, folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
