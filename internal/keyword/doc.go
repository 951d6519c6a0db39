// Package keyword provides the keyword-research domain used by the kwfinder wizard.
//
// It defines the seed keywords a user enters, the suggestions a provider returns for
// them, the rules a seed must satisfy, and the provider contract the wizard calls to
// perform a lookup.
//
// # Seeds and Validation
//
// A lookup takes exactly two seeds, addressed by Slot:
//
//	seeds := keyword.Seeds{First: "plumbing", Second: "Chicago"}
//
// Each seed is validated on its own by ValidateSeed. Rules are checked in order and the
// first failure wins:
//   - Required: the seed must contain something other than whitespace
//   - At most 3 whitespace-separated words
//   - Only ASCII letters, digits and whitespace
//
// # Providers
//
// A Provider turns seeds into an ordered list of Suggestion records:
//
//	provider := keyword.NewMockProvider()
//	result := keyword.Lookup(ctx, provider, seeds)
//	if result.Err != nil {
//	    fmt.Println(keyword.GetShortErrorMessage(result.Err))
//	}
//
// MockProvider expands a fixed list of templates after a configurable delay. The role
// of each suggestion (Primary, Secondary, None) is metadata supplied by the provider.
//
// # Error Handling
//
// Lookup converts every provider failure into a *LookupError with an ErrorType, so
// callers can decide whether to offer a retry (IsRetryable) and what to tell the user
// (GetShortErrorMessage, GetTroubleshootingHint).
package keyword
