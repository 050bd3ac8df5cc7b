package gemini

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the provider failure categories the UI distinguishes.
var (
	ErrMissingAPIKey  = errors.New("gemini api key is not configured")
	ErrInvalidAPIKey  = errors.New("gemini api key is not valid")
	ErrQuotaExceeded  = errors.New("gemini quota exceeded")
	ErrContentBlocked = errors.New("gemini blocked the content")
)

// Categorize maps a raw provider error onto one of the sentinels, falling
// back to the original error wrapped for context. The provider does not
// expose stable error types for these cases, so this matches on the
// message the same way the original client did.
func Categorize(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key not valid"),
		strings.Contains(msg, "api_key_invalid"),
		strings.Contains(msg, "invalid api key"):
		return fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
	case strings.Contains(msg, "quota"),
		strings.Contains(msg, "resource_exhausted"),
		strings.Contains(msg, "rate limit"):
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	case strings.Contains(msg, "safety"),
		strings.Contains(msg, "blocked"):
		return fmt.Errorf("%w: %v", ErrContentBlocked, err)
	default:
		return fmt.Errorf("gemini request failed: %w", err)
	}
}
