package usecase

import (
	"fmt"
	"net/url"
)

// ValidateURL проверяет, что строка является абсолютным URL со схемой и хостом.
// Проверка только синтаксическая, сеть не используется.
func ValidateURL(candidate string) error {
	parsed, err := url.Parse(candidate)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: %q has no scheme or host", ErrInvalidURL, candidate)
	}

	return nil
}
