package project

import (
	"context"

	"kabstudio/internal/domain"
)

type ProjectRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ListActive(ctx context.Context, category string) ([]domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
	Save(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
}
