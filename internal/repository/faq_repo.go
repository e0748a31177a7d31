package repository

import (
	"context"

	"kabstudio/internal/domain"

	"gorm.io/gorm"
)

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) Create(ctx context.Context, f *domain.FAQ) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FAQRepository) GetByID(ctx context.Context, id int64) (*domain.FAQ, error) {
	var f domain.FAQ
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FAQRepository) ListActive(ctx context.Context) ([]domain.FAQ, error) {
	var faqs []domain.FAQ
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&faqs).Error
	return faqs, err
}

func (r *FAQRepository) ListAll(ctx context.Context) ([]domain.FAQ, error) {
	var faqs []domain.FAQ
	err := r.db.WithContext(ctx).Order("display_order ASC").Find(&faqs).Error
	return faqs, err
}

func (r *FAQRepository) Save(ctx context.Context, f *domain.FAQ) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FAQRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.FAQ{}, id).Error
}
