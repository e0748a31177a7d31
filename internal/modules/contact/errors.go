package contact

import "errors"

var (
	ErrInvalidStatus = errors.New("status must be one of: new, read, replied")
	ErrEmptyReply    = errors.New("reply body is required")
)
