package user

import "errors"

var (
	ErrEmailTaken  = errors.New("email is already registered")
	ErrInvalidRole = errors.New("invalid role")
	ErrNoImage     = errors.New("an image file is required")
)
