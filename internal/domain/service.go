package domain

import "time"

// Service is a marketing-site service offering (not to be confused with
// the application service layer).
type Service struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey"`
	Title       string    `json:"title" gorm:"column:title"`
	Description string    `json:"description" gorm:"column:description"`
	Icon        string    `json:"icon,omitempty" gorm:"column:icon"`
	Order       int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive    bool      `json:"isActive" gorm:"column:is_active"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Service) TableName() string { return "services" }
