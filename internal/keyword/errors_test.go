package keyword

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClassifyLookupError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantType  ErrorType
		retryable bool
	}{
		{"Deadline", context.DeadlineExceeded, ErrTypeTimeout, true},
		{"Wrapped deadline", fmt.Errorf("calling backend: %w", context.DeadlineExceeded), ErrTypeTimeout, true},
		{"Cancelled", context.Canceled, ErrTypeCancelled, true},
		{"Generic", errors.New("backend down"), ErrTypeProvider, true},
		{"Already classified", NewEmptyResultError("mock"), ErrTypeEmptyResult, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookupErr := ClassifyLookupError(tt.err, "mock")
			if lookupErr == nil {
				t.Fatal("Expected LookupError, got nil")
			}
			if lookupErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", lookupErr.Type, tt.wantType)
			}
			if lookupErr.Retryable != tt.retryable {
				t.Errorf("Retryable = %v, want %v", lookupErr.Retryable, tt.retryable)
			}
			if lookupErr.Provider != "mock" {
				t.Errorf("Provider = %q, want %q", lookupErr.Provider, "mock")
			}
		})
	}

	if ClassifyLookupError(nil, "mock") != nil {
		t.Error("ClassifyLookupError(nil) should return nil")
	}
}

func TestLookupErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ClassifyLookupError(cause, "mock")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the underlying cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() = %q, should mention cause", err.Error())
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"Provider error is retryable", &LookupError{Type: ErrTypeProvider, Retryable: true}, true},
		{"Empty result is not retryable", NewEmptyResultError("mock"), false},
		{"Wrapped lookup error", fmt.Errorf("wizard: %w", &LookupError{Retryable: true}), true},
		{"Unknown error is not retryable", errors.New("unknown error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestGetShortErrorMessage(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedText string
	}{
		{"Timeout", &LookupError{Type: ErrTypeTimeout}, "timeout"},
		{"Cancelled", &LookupError{Type: ErrTypeCancelled}, "cancelled"},
		{"Empty", NewEmptyResultError("mock"), "No keyword suggestions"},
		{"Provider", &LookupError{Type: ErrTypeProvider}, "Could not fetch"},
		{"Plain error", errors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := GetShortErrorMessage(tt.err)
			if !strings.Contains(msg, tt.expectedText) {
				t.Errorf("GetShortErrorMessage() = %q, should contain %q", msg, tt.expectedText)
			}
		})
	}
}

func TestGetTroubleshootingHint(t *testing.T) {
	hint := GetTroubleshootingHint(&LookupError{Type: ErrTypeTemplate})
	if len(hint) == 0 {
		t.Fatal("GetTroubleshootingHint() returned no tips")
	}

	block := FormatTroubleshooting(hint)
	if !strings.HasPrefix(block, "Troubleshooting:") {
		t.Errorf("FormatTroubleshooting() = %q, want Troubleshooting header", block)
	}
	if !strings.Contains(block, "{{.First}}") {
		t.Errorf("template hint should mention {{.First}}, got %q", block)
	}
}
