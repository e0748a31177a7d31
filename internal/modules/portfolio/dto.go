package portfolio

import "kabstudio/internal/domain"

type UpdateAboutRequest struct {
	AboutText       string `json:"aboutText" binding:"required"`
	ExperienceYears string `json:"experienceYears" binding:"required"`
}

type UpdateSkillsRequest struct {
	Skills []string `json:"skills" binding:"required"`
}

type UpdateExperiencesRequest struct {
	Experiences []domain.Experience `json:"experiences" binding:"required"`
}

// SampleWorkInput carries the multipart fields of a sample-work create or
// update. On update, nil/empty scalar fields keep their stored values and
// RemoveIndices addresses the pre-update mediaUrls array. The validate
// tags apply to creates only, where title and type are mandatory.
type SampleWorkInput struct {
	Title         string `validate:"required"`
	Description   string
	Type          string `validate:"required"`
	YoutubeURL    string
	RemoveIndices []int
}
