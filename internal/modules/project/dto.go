package project

// ProjectInput carries the multipart fields of a project create or
// update. On update, empty scalar fields keep their stored values. The
// validate tags apply to creates only.
type ProjectInput struct {
	Title       string `validate:"required"`
	Description string
	Category    string `validate:"required"`
	Type        string `validate:"required"`
	YoutubeURL  string
	IsActive    *bool
	Order       *int
}
