package repository

import (
	"context"
	"strings"
	"time"

	"kabstudio/internal/domain"

	"gorm.io/gorm"
)

type OTPRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

func (r *OTPRepository) Create(ctx context.Context, o *domain.OTP) error {
	o.Email = strings.ToLower(strings.TrimSpace(o.Email))
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OTPRepository) GetByEmailAndCode(ctx context.Context, email, code string) (*domain.OTP, error) {
	var o domain.OTP
	err := r.db.WithContext(ctx).
		Where("email = ? AND code = ?", strings.ToLower(strings.TrimSpace(email)), code).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Delete(&domain.OTP{}).Error
}

func (r *OTPRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.OTP{}, id).Error
}

// DeleteExpired drops codes past their expiry; run periodically by
// cmd/otp_cleanup.
func (r *OTPRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&domain.OTP{})
	return tx.RowsAffected, tx.Error
}
