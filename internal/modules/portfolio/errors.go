package portfolio

import "errors"

var (
	ErrInvalidType        = errors.New("type must be one of: image, video, youtube")
	ErrYoutubeURLRequired = errors.New("youtubeUrl is required when type is youtube")
	ErrNoMediaFiles       = errors.New("at least one media file is required")
	ErrNoImage            = errors.New("image file is required")
)
