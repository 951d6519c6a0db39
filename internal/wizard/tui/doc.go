// Package tui implements the interactive terminal front-end of the keyword wizard.
//
// The TUI is built on Bubble Tea and follows the Elm architecture. AppModel
// holds a wizard.State and renders the screen that matches its stage:
//   - Input: two seed fields with inline validation messages
//   - Fetching: spinner and progress bar while the lookup runs
//   - Review: suggestion table with volume, competition and role badges
//   - Confirmed: the Primary and Secondary keywords
//   - Error: lookup failure with retry and edit options
//
// Every screen is wrapped by RenderApplicationContainer, which draws the
// application header, the four-step indicator and a context-sensitive footer
// built with bubbles/help.
//
// # Lookups
//
// A lookup runs as a tea.Cmd and reports back with a lookupCompleteMsg
// carrying the wizard.Request it was issued for. The model hands the result
// to State.Resolve, so a lookup that finishes after the user cancelled or
// restarted is ignored.
//
// # Usage Example
//
//	provider := keyword.NewMockProvider()
//	if err := tui.Run(provider, provider.Latency); err != nil {
//	    log.Fatal(err)
//	}
package tui
