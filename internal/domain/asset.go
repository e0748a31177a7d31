package domain

import "time"

type AssetType string

const (
	AssetVideo AssetType = "video"
	AssetPhoto AssetType = "photo"
)

func (t AssetType) Valid() bool {
	return t == AssetVideo || t == AssetPhoto
}

// Asset is a deliverable an admin sends to a user (a finished video or
// photo set hosted at an external URL).
type Asset struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	UserID    int64     `json:"userId" gorm:"column:user_id;index"`
	Type      AssetType `json:"type" gorm:"column:type"`
	URL       string    `json:"url" gorm:"column:url"`
	Text      string    `json:"text" gorm:"column:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Asset) TableName() string { return "assets" }
