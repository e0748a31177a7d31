package domain

import "time"

// MediaType distinguishes how a sample work or project carries its media:
// uploaded files (image/video) or an external YouTube link. Exactly one of
// the two is meaningful at a time.
type MediaType string

const (
	MediaImage   MediaType = "image"
	MediaVideo   MediaType = "video"
	MediaYoutube MediaType = "youtube"
)

func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo || t == MediaYoutube
}

// MaxHeroImages caps Portfolio.HeroImages and Founder.Images.
const MaxHeroImages = 3

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// SampleWork lives embedded in Portfolio.SampleWorks and is addressed by
// its position in that slice. Indices are positional, not stable ids:
// deleting an entry shifts everything after it down by one.
type SampleWork struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        MediaType `json:"type"`
	MediaUrls   []string  `json:"mediaUrls"`
	YoutubeUrl  string    `json:"youtubeUrl,omitempty"`
}

// Portfolio is a singleton document, created lazily on first read. All of
// its array fields are stored as JSON columns and mutated by loading the
// whole row, changing it in memory and saving it back, so concurrent
// writers race (last write wins).
type Portfolio struct {
	ID              int64        `json:"id" gorm:"column:id;primaryKey"`
	HeroImages      []string     `json:"heroImages" gorm:"column:hero_images;serializer:json;type:jsonb;default:'[]'"`
	AboutText       string       `json:"aboutText" gorm:"column:about_text"`
	ExperienceYears string       `json:"experienceYears" gorm:"column:experience_years"`
	Skills          []string     `json:"skills" gorm:"column:skills;serializer:json;type:jsonb;default:'[]'"`
	Experiences     []Experience `json:"experiences" gorm:"column:experiences;serializer:json;type:jsonb;default:'[]'"`
	SampleWorks     []SampleWork `json:"sampleWorks" gorm:"column:sample_works;serializer:json;type:jsonb;default:'[]'"`
	CreatedAt       time.Time    `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time    `json:"updatedAt" gorm:"column:updated_at"`
}

func (Portfolio) TableName() string { return "portfolios" }
