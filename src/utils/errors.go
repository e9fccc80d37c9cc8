package utils

import "errors"

var (
	ErrAccessDenied  = errors.New("access denied")
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrNoFields      = errors.New("no updatable fields supplied")
)
