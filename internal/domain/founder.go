package domain

import "time"

// Founder is a singleton. Unlike the portfolio collections its images are
// replaced wholesale on every update, never index-addressed.
type Founder struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"name" gorm:"column:name"`
	Message   string    `json:"message" gorm:"column:message"`
	Images    []string  `json:"images" gorm:"column:images;serializer:json;type:jsonb;default:'[]'"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Founder) TableName() string { return "founders" }
