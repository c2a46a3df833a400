package model

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrForbidden            = errors.New("forbidden")
	ErrAuthenticationFailed = errors.New("authentication failed")
)
