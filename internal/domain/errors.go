package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmptyDocument    = errors.New("document has no pages")
	ErrEmptyResponse    = errors.New("model returned no text")
	ErrUnsupportedImage = errors.New("unsupported image format")
)
