package repository

import (
	"context"
	"errors"

	"kabstudio/internal/domain"

	"gorm.io/gorm"
)

type AboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) *AboutRepository {
	return &AboutRepository{db: db}
}

func (r *AboutRepository) GetOrCreate(ctx context.Context) (*domain.About, error) {
	var a domain.About
	err := r.db.WithContext(ctx).Order("id ASC").First(&a).Error
	if err == nil {
		return &a, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a = domain.About{}
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AboutRepository) Save(ctx context.Context, a *domain.About) error {
	return r.db.WithContext(ctx).Save(a).Error
}
