package validators

import (
	"errors"

	"github.com/Egor213/LogiBuffer/internal/domain"
)

const MaxLimit = 10000

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidLimit    = errors.New("limit must be between 0 and 10000")
)

// ValidateLevel accepts an empty level; callers decide what empty means.
func ValidateLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := domain.ParseLevel(level); err != nil {
		return ErrInvalidLogLevel
	}
	return nil
}

func ValidateLimit(limit int) error {
	if limit < 0 || limit > MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}
