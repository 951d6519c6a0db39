package keyword

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of a lookup failure
type ErrorType int

const (
	// ErrTypeProvider indicates the provider itself reported a failure
	ErrTypeProvider ErrorType = iota
	// ErrTypeTimeout indicates the lookup exceeded its deadline
	ErrTypeTimeout
	// ErrTypeCancelled indicates the lookup was abandoned by the caller
	ErrTypeCancelled
	// ErrTypeEmptyResult indicates the provider returned no suggestions
	ErrTypeEmptyResult
	// ErrTypeInvalidResult indicates the provider returned malformed suggestions
	ErrTypeInvalidResult
	// ErrTypeTemplate indicates a suggestion template could not be expanded
	ErrTypeTemplate
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeProvider:
		return "Provider Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeCancelled:
		return "Cancelled"
	case ErrTypeEmptyResult:
		return "Empty Result"
	case ErrTypeInvalidResult:
		return "Invalid Result"
	case ErrTypeTemplate:
		return "Template Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// LookupError represents a failed suggestion lookup
type LookupError struct {
	Type      ErrorType // Category of error
	Provider  string    // Provider name (for context)
	Message   string    // Human-readable error message
	Err       error     // Underlying error (if any)
	Retryable bool      // Whether retrying the same seeds may succeed
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *LookupError) Unwrap() error {
	return e.Err
}

// ClassifyLookupError wraps a provider error into a *LookupError.
// Errors that already are a *LookupError are returned as-is.
func ClassifyLookupError(err error, provider string) *LookupError {
	if err == nil {
		return nil
	}

	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		if lookupErr.Provider == "" {
			lookupErr.Provider = provider
		}
		return lookupErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &LookupError{
			Type:      ErrTypeTimeout,
			Provider:  provider,
			Message:   "Suggestion lookup timed out",
			Err:       err,
			Retryable: true,
		}
	}

	if errors.Is(err, context.Canceled) {
		return &LookupError{
			Type:      ErrTypeCancelled,
			Provider:  provider,
			Message:   "Suggestion lookup was cancelled",
			Err:       err,
			Retryable: true,
		}
	}

	return &LookupError{
		Type:      ErrTypeProvider,
		Provider:  provider,
		Message:   "Suggestion provider failed",
		Err:       err,
		Retryable: true,
	}
}

// NewEmptyResultError creates an error for a lookup that produced nothing
func NewEmptyResultError(provider string) *LookupError {
	return &LookupError{
		Type:      ErrTypeEmptyResult,
		Provider:  provider,
		Message:   "No keyword suggestions were found",
		Retryable: false,
	}
}

// NewInvalidResultError creates an error for a malformed result set
func NewInvalidResultError(provider, message string) *LookupError {
	return &LookupError{
		Type:      ErrTypeInvalidResult,
		Provider:  provider,
		Message:   message,
		Retryable: false,
	}
}

// NewTemplateError creates an error for a template that failed to expand
func NewTemplateError(pattern string, err error) *LookupError {
	return &LookupError{
		Type:      ErrTypeTemplate,
		Message:   fmt.Sprintf("cannot expand template %q", pattern),
		Err:       err,
		Retryable: false,
	}
}

// IsLookupError checks if an error is (or wraps) a lookup error
func IsLookupError(err error) bool {
	var lookupErr *LookupError
	return errors.As(err, &lookupErr)
}

// IsRetryable checks if a lookup should be offered for retry
func IsRetryable(err error) bool {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Retryable
	}
	// Unknown errors are not retryable by default
	return false
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		return err.Error()
	}

	switch lookupErr.Type {
	case ErrTypeTimeout:
		return "Keyword service not responding (timeout)"
	case ErrTypeCancelled:
		return "Keyword search cancelled"
	case ErrTypeEmptyResult:
		return "No keyword suggestions found for these seeds"
	case ErrTypeInvalidResult:
		return "Keyword service returned unusable results"
	case ErrTypeTemplate:
		return "Suggestion template is invalid - check your config file"
	default:
		return "Could not fetch keyword suggestions"
	}
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) []string {
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		return []string{"An unexpected error occurred. Please try again."}
	}

	switch lookupErr.Type {
	case ErrTypeTimeout:
		return []string{
			"The lookup took longer than allowed",
			"Try again, or lower provider.latency_ms in your config",
		}
	case ErrTypeCancelled:
		return []string{
			"The search was stopped before it finished",
			"Submit your seed keywords again to restart it",
		}
	case ErrTypeEmptyResult:
		return []string{
			"Try broader or more common seed keywords",
			"Check that provider.templates in your config is not empty",
		}
	case ErrTypeInvalidResult:
		return []string{
			"Each result may contain at most one Primary keyword",
			"Search volumes must not be negative",
			"Check provider.templates in your config file",
		}
	case ErrTypeTemplate:
		return []string{
			"Templates use {{.First}} and {{.Second}} for the seed keywords",
			"Run 'kwfinder config show' to inspect the active templates",
		}
	default:
		return []string{
			"Retry the search",
			"Edit your seed keywords and submit again",
		}
	}
}

// FormatTroubleshooting joins troubleshooting tips into a bulleted block
func FormatTroubleshooting(tips []string) string {
	lines := make([]string, 0, len(tips)+1)
	lines = append(lines, "Troubleshooting:")
	for _, tip := range tips {
		lines = append(lines, "  • "+tip)
	}
	return strings.Join(lines, "\n")
}
