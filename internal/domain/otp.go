package domain

import "time"

// OTP is a short-lived password-reset code. Expired rows are cleaned up by
// cmd/otp_cleanup; the verify path also deletes on first expired hit.
type OTP struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Email     string    `json:"email" gorm:"column:email;index"`
	Code      string    `json:"-" gorm:"column:code"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"column:expires_at"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (OTP) TableName() string { return "otps" }
