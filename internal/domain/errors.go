package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrActionNotAllowed = errors.New("action not allowed for this viewer and drawing state")
	ErrInvalidInput     = errors.New("invalid input")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrUpstream         = errors.New("upstream API error")
	ErrUpstreamTimeout  = errors.New("upstream API timed out")
)
