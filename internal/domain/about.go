package domain

import "time"

// About is the company-wide about page, a lazily created singleton.
type About struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Title     string    `json:"title" gorm:"column:title"`
	Content   string    `json:"content" gorm:"column:content"`
	Mission   string    `json:"mission" gorm:"column:mission"`
	Vision    string    `json:"vision" gorm:"column:vision"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (About) TableName() string { return "abouts" }
