package repository

import (
	"context"
	"errors"

	"kabstudio/internal/domain"

	"gorm.io/gorm"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// GetOrCreate returns the portfolio singleton, inserting an empty one on
// first access. Find-then-insert is not race-free: two concurrent first
// reads can both insert. Accepted: the window exists once per deployment
// and a stray extra row is invisible (reads always take the oldest).
func (r *PortfolioRepository) GetOrCreate(ctx context.Context) (*domain.Portfolio, error) {
	var p domain.Portfolio
	err := r.db.WithContext(ctx).Order("id ASC").First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p = domain.Portfolio{
		HeroImages:  []string{},
		Skills:      []string{},
		Experiences: []domain.Experience{},
		SampleWorks: []domain.SampleWork{},
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Save persists the whole document. Every array mutation goes through
// this, so two concurrent writers race: last write wins and the earlier
// append or delete is silently lost.
func (r *PortfolioRepository) Save(ctx context.Context, p *domain.Portfolio) error {
	return r.db.WithContext(ctx).Save(p).Error
}
