package domain

import "time"

type FAQ struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Question  string    `json:"question" gorm:"column:question"`
	Answer    string    `json:"answer" gorm:"column:answer"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive  bool      `json:"isActive" gorm:"column:is_active"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (FAQ) TableName() string { return "faqs" }
