package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument общий вид ошибок входных данных
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidURL      = fmt.Errorf("%w: invalid URL", ErrInvalidArgument)
	ErrInvalidExpiry   = fmt.Errorf("%w: expiration time must be in the future", ErrInvalidArgument)

	ErrURLNotFound        = errors.New("URL not found or expired")
	ErrCodeConflict       = errors.New("could not allocate a free short code")
	ErrServiceUnavailable = errors.New("service unavailable")
)
