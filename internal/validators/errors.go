package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyTitle    = errors.New("title is required")
	ErrEmptyAuthor   = errors.New("author is required")
	ErrEmptyURL      = errors.New("url is required")
	ErrInvalidURL    = errors.New("url must be absolute http(s)")
)
