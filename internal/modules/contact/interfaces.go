package contact

import (
	"context"

	"kabstudio/internal/domain"
)

type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	Save(ctx context.Context, c *domain.Contact) error
	Delete(ctx context.Context, id int64) error
}
