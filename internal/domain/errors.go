package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures across content sources.
var (
	ErrNotFound          = errors.New("requested resource not found")
	ErrSourceUnavailable = errors.New("content source unavailable")
)
