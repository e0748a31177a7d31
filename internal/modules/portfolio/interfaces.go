package portfolio

import (
	"context"

	"kabstudio/internal/domain"
)

type PortfolioRepositoryInterface interface {
	GetOrCreate(ctx context.Context) (*domain.Portfolio, error)
	Save(ctx context.Context, p *domain.Portfolio) error
}
