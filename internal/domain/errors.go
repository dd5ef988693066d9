package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceFetch marks a source image that could not be downloaded.
	ErrSourceFetch = errors.New("source fetch failed")
	// ErrNoImageReturned marks a vendor response without a usable image part.
	ErrNoImageReturned = errors.New("no image returned")
	// ErrResultTooLarge marks a generated image over the size ceiling.
	ErrResultTooLarge = errors.New("result too large")
	// ErrGenerationFailed marks any other terminal generation failure.
	ErrGenerationFailed = errors.New("generation failed")
)

// ValidationError is user input that failed a completeness or catalog
// check. MessageKey selects the translated user-facing message; the text is
// always safe to show verbatim.
type ValidationError struct {
	MessageKey string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.MessageKey)
}

// NewValidationError builds a ValidationError for the given message key.
func NewValidationError(key string) *ValidationError {
	return &ValidationError{MessageKey: key}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
