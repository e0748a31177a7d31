package repository

import (
	"context"
	"errors"

	"kabstudio/internal/domain"

	"gorm.io/gorm"
)

type FounderRepository struct {
	db *gorm.DB
}

func NewFounderRepository(db *gorm.DB) *FounderRepository {
	return &FounderRepository{db: db}
}

// GetOrCreate returns the founder singleton, inserting an empty one on
// first access (same find-then-insert caveat as the portfolio).
func (r *FounderRepository) GetOrCreate(ctx context.Context) (*domain.Founder, error) {
	var f domain.Founder
	err := r.db.WithContext(ctx).Order("id ASC").First(&f).Error
	if err == nil {
		return &f, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	f = domain.Founder{Images: []string{}}
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FounderRepository) Save(ctx context.Context, f *domain.Founder) error {
	return r.db.WithContext(ctx).Save(f).Error
}
