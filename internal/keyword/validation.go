package keyword

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxSeedWords is the largest number of words a seed keyword may contain.
const MaxSeedWords = 3

// Messages shown next to an invalid seed field
const (
	MsgRequired          = "Keyword is required"
	MsgTooManyWords      = "Maximum 3 words allowed"
	MsgSpecialCharacters = "No special characters allowed"
)

// seedPattern matches seeds made only of ASCII letters, digits and whitespace.
var seedPattern = regexp.MustCompile(`^[A-Za-z0-9\s]+$`)

// ValidationReason identifies which seed rule failed
type ValidationReason int

const (
	ReasonRequired ValidationReason = iota
	ReasonTooManyWords
	ReasonSpecialCharacters
)

// String returns a short name for the reason
func (r ValidationReason) String() string {
	switch r {
	case ReasonRequired:
		return "required"
	case ReasonTooManyWords:
		return "too_many_words"
	case ReasonSpecialCharacters:
		return "special_characters"
	default:
		return fmt.Sprintf("ValidationReason(%d)", int(r))
	}
}

// ValidationError describes why a seed keyword was rejected.
// Message is the exact text shown to the user.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError checks if an error is a seed validation error
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// ValidateSeed checks a single seed keyword.
// Rules are applied in order and the first failure is returned:
//   - empty or whitespace-only: MsgRequired
//   - more than MaxSeedWords whitespace-separated words: MsgTooManyWords
//   - any character outside [A-Za-z0-9\s]: MsgSpecialCharacters
func ValidateSeed(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &ValidationError{Reason: ReasonRequired, Message: MsgRequired}
	}

	if len(strings.Fields(trimmed)) > MaxSeedWords {
		return &ValidationError{Reason: ReasonTooManyWords, Message: MsgTooManyWords}
	}

	if !seedPattern.MatchString(text) {
		return &ValidationError{Reason: ReasonSpecialCharacters, Message: MsgSpecialCharacters}
	}

	return nil
}

// ValidateSeeds validates both seeds and returns the error for each slot (nil if valid).
func ValidateSeeds(seeds Seeds) map[Slot]error {
	errs := make(map[Slot]error)
	for _, slot := range Slots {
		if err := ValidateSeed(seeds.Get(slot)); err != nil {
			errs[slot] = err
		}
	}
	return errs
}

// ValidationMessage returns the user-facing message for a validation result,
// or "" when the seed is valid.
func ValidationMessage(err error) string {
	if err == nil {
		return ""
	}
	if vErr, ok := err.(*ValidationError); ok {
		return vErr.Message
	}
	return err.Error()
}
