package project

import "errors"

var (
	ErrInvalidCategory    = errors.New("category must be one of: video, photograph, branding")
	ErrInvalidType        = errors.New("type must be one of: image, video, youtube")
	ErrYoutubeURLRequired = errors.New("youtubeUrl is required when type is youtube")
	ErrNoMediaFiles       = errors.New("at least one media file is required")
)
