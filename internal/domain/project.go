package domain

import "time"

type ProjectCategory string

const (
	CategoryVideo      ProjectCategory = "video"
	CategoryPhotograph ProjectCategory = "photograph"
	CategoryBranding   ProjectCategory = "branding"
)

func (c ProjectCategory) Valid() bool {
	return c == CategoryVideo || c == CategoryPhotograph || c == CategoryBranding
}

type Project struct {
	ID          int64           `json:"id" gorm:"column:id;primaryKey"`
	Title       string          `json:"title" gorm:"column:title"`
	Description string          `json:"description" gorm:"column:description"`
	Category    ProjectCategory `json:"category" gorm:"column:category"`
	Type        MediaType       `json:"type" gorm:"column:type"`
	MediaFiles  []string        `json:"mediaFiles" gorm:"column:media_files;serializer:json;type:jsonb;default:'[]'"`
	YoutubeUrl  string          `json:"youtubeUrl,omitempty" gorm:"column:youtube_url"`
	// no column default: gorm drops false from the INSERT, so a DB
	// default of true would override an inactive create
	IsActive    bool            `json:"isActive" gorm:"column:is_active"`
	Order       int             `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"column:updated_at"`
}

func (Project) TableName() string { return "projects" }
