// Package ui provides terminal output components for the kwfinder CLI.
//
// The interactive wizard lives in internal/wizard/tui. The components here
// follow a "print once and exit" pattern for the non-interactive commands:
// they render output with Lipgloss but never wait for key presses.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Progress: step list with an optional bar
//   - Result: success, failure or warning boxes
//   - RenderSuggestionTable: bordered table of keyword suggestions
//   - Confirm: y/N prompt for destructive actions
//
// Runner ties them together as header → steps → result:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:     "Keyword Suggestions",
//	    Command:   "kwfinder suggest plumbing Chicago",
//	    Params:    []ui.Detail{{Key: "Seeds", Value: `"plumbing" + "Chicago"`}},
//	    StepNames: []string{"Seed Keywords", "Processing", "Review Results", "Confirmation"},
//	    Hints:     keyword.GetTroubleshootingHint,
//	})
//
//	err := runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) (*ui.Summary, error) {
//	    onStep(1, ui.StepComplete, "")
//	    // ... do work ...
//	    return &ui.Summary{Title: "8 keywords found"}, nil
//	})
//
// Logging is controlled by KWFINDER_LOG_LEVEL or --log-level. When unset, zap
// is silent so that only this curated output reaches the terminal.
package ui
