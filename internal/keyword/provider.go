package keyword

import (
	"context"
	"fmt"
)

// Provider produces keyword suggestions for a pair of seeds.
// Implementations must honour ctx cancellation.
type Provider interface {
	// Suggest returns an ordered list of suggestions for the seeds
	Suggest(ctx context.Context, seeds Seeds) ([]Suggestion, error)

	// Name returns the name of the provider (e.g. "mock")
	Name() string
}

// Result is the outcome of a lookup: either Suggestions or Err is set.
type Result struct {
	Suggestions []Suggestion
	Err         error
}

// OK reports whether the lookup succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Lookup calls the provider and returns its outcome as a Result.
// Failures and unusable result sets are reported as *LookupError.
func Lookup(ctx context.Context, p Provider, seeds Seeds) Result {
	suggestions, err := p.Suggest(ctx, seeds)
	if err != nil {
		return Result{Err: ClassifyLookupError(err, p.Name())}
	}

	if err := CheckResult(suggestions); err != nil {
		return Result{Err: ClassifyLookupError(err, p.Name())}
	}

	return Result{Suggestions: suggestions}
}

// CheckResult verifies a result set is usable by the wizard:
// it must be non-empty, volumes must not be negative, and at most one
// suggestion may be Primary.
func CheckResult(suggestions []Suggestion) error {
	if len(suggestions) == 0 {
		return NewEmptyResultError("")
	}

	primaries := 0
	for i, s := range suggestions {
		if s.Volume < 0 {
			return NewInvalidResultError("", fmt.Sprintf("suggestion %d (%q) has negative volume %d", i+1, s.Text, s.Volume))
		}
		if s.Role == RolePrimary {
			primaries++
		}
	}

	if primaries > 1 {
		return NewInvalidResultError("", fmt.Sprintf("result has %d primary keywords, at most 1 allowed", primaries))
	}

	return nil
}
