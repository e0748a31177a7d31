package auth

import (
	"context"

	"kabstudio/internal/domain"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type OTPRepositoryInterface interface {
	Create(ctx context.Context, o *domain.OTP) error
	GetByEmailAndCode(ctx context.Context, email, code string) (*domain.OTP, error)
	DeleteByEmail(ctx context.Context, email string) error
	Delete(ctx context.Context, id int64) error
}
