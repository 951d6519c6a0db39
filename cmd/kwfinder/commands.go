package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/kwfinder/internal/config"
	"github.com/muurk/kwfinder/internal/keyword"
	"github.com/muurk/kwfinder/internal/ui"
	"github.com/muurk/kwfinder/internal/wizard"
	"github.com/muurk/kwfinder/internal/wizard/tui"
)

// Suggest command flags
var (
	outputFormat string
	autoConfirm  bool
)

// stepNames are the four wizard steps as shown by the CLI runner
var stepNames = []string{
	"Seed Keywords",
	"Processing",
	"Review Results",
	"Confirmation",
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(validateCmd)

	suggestCmd.Flags().StringVar(&outputFormat, "format", "", "Output format: detailed, compact, json (default from settings)")
	suggestCmd.Flags().BoolVar(&autoConfirm, "confirm", false, "Confirm the suggestions without prompting")
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive keyword wizard",
	Long: `Launch the interactive TUI wizard.

The wizard guides you through:
  1. Entering two seed keywords
  2. Fetching keyword suggestions
  3. Reviewing search volume and competition
  4. Confirming the Primary and Secondary keywords`,
	Example: `  # Launch the wizard
  kwfinder wizard
  # Or simply (wizard is default):
  kwfinder

  # Faster lookups while trying things out
  kwfinder wizard --latency 300ms

  # Log to a file while the wizard owns the terminal
  kwfinder wizard --log-level debug --config ./kwfinder.yaml`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}

	if err := tui.Run(provider, settings.Latency()); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// suggestCmd runs the wizard non-interactively
var suggestCmd = &cobra.Command{
	Use:   "suggest <seed1> <seed2>",
	Short: "Find keyword suggestions for two seed keywords",
	Long: `Validate two seed keywords, look up suggestions and print them.

Seeds must be non-empty, at most three words, and contain only letters,
numbers and spaces. Quote multi-word seeds.

When stdin is a terminal and --confirm is not given, you are asked to
confirm the suggestions after reviewing them.`,
	Example: `  # Detailed table
  kwfinder suggest plumbing Chicago

  # Multi-word seeds
  kwfinder suggest "organic coffee" "home brewing"

  # One line per suggestion for scripting
  kwfinder suggest plumbing Chicago --format compact

  # JSON, confirmed
  kwfinder suggest plumbing Chicago --format json --confirm`,
	Args: cobra.ExactArgs(2),
	RunE: runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	format := settings.Output.Format
	if outputFormat != "" {
		format = outputFormat
	}
	switch format {
	case config.FormatDetailed, config.FormatCompact, config.FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (use detailed, compact or json)", format)
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}

	ctrl := wizard.NewController(provider)
	seeds := keyword.Seeds{First: args[0], Second: args[1]}
	if err := ctrl.SetSeeds(seeds); err != nil {
		return err
	}
	if errs := ctrl.State().Errors; errs.Any() {
		printSeedErrors(os.Stderr, errs)
		return wizard.ErrSeedsInvalid
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	switch {
	case format == config.FormatJSON:
		st, err := fetchSuggestions(ctx, ctrl, autoConfirm)
		if err != nil {
			return err
		}
		return writeJSON(out, st)

	case format == config.FormatCompact || !interactive:
		st, err := fetchSuggestions(ctx, ctrl, autoConfirm)
		if err != nil {
			return err
		}
		if format == config.FormatCompact {
			_, _ = fmt.Fprintln(out, keyword.FormatCompact(st.Suggestions))
			return nil
		}
		_, _ = fmt.Fprintln(out, keyword.FormatDetailed(st.Seeds, st.Suggestions))
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, keyword.FormatSelected(st.Suggestions))
		return nil
	}

	return runSuggestDetailed(ctx, ctrl, seeds, out, provider.Latency)
}

// runSuggestDetailed renders the lookup as header → steps → result and
// prompts for confirmation when stdin is a terminal
func runSuggestDetailed(ctx context.Context, ctrl *wizard.Controller, seeds keyword.Seeds, out io.Writer, latency time.Duration) error {
	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Keyword Suggestions",
		Command: fmt.Sprintf("kwfinder suggest %q %q", seeds.First, seeds.Second),
		Params: []ui.Detail{
			{Key: "Seed Keyword 1", Value: seeds.First},
			{Key: "Seed Keyword 2", Value: seeds.Second},
		},
		StepNames:   stepNames,
		Hints:       keyword.GetTroubleshootingHint,
		Interactive: true,
		Output:      out,
	})

	if latency >= time.Second {
		ui.PrintPleaseWait(out, "Finding keyword suggestions", fmt.Sprintf("about %s", latency.Round(100*time.Millisecond)))
	}

	return runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) (*ui.Summary, error) {
		ctrl.OnTransition = stepReporter(onStep)

		st, err := fetchSuggestions(ctx, ctrl, false)
		if err != nil {
			return nil, err
		}
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, ui.RenderSuggestionTable(st.Suggestions))
		_, _ = fmt.Fprintln(out)

		confirm := autoConfirm
		if !confirm && term.IsTerminal(int(os.Stdin.Fd())) {
			confirm = ui.Confirm(os.Stdin, out, "", nil, "Confirm these keywords?")
		}
		if !confirm {
			onStep(4, ui.StepSkipped, "not confirmed")
			return &ui.Summary{
				Title:   fmt.Sprintf("%d keywords found", len(st.Suggestions)),
				Details: []ui.Detail{{Key: "Stage", Value: st.Stage.String()}},
			}, nil
		}

		if err := ctrl.Confirm(); err != nil {
			return nil, err
		}
		selected := ctrl.State().Selected()
		return &ui.Summary{
			Title: "Keywords Confirmed!",
			Details: []ui.Detail{
				{Key: "Suggestions", Value: fmt.Sprintf("%d", len(st.Suggestions))},
				{Key: "Selected", Value: fmt.Sprintf("%d", len(selected))},
			},
			Body: ui.RenderSelected(selected),
		}, nil
	})
}

// fetchSuggestions submits the seeds and waits for the lookup to resolve.
// A failed lookup is returned as its *keyword.LookupError.
func fetchSuggestions(ctx context.Context, ctrl *wizard.Controller, confirm bool) (wizard.State, error) {
	if err := ctrl.Submit(ctx); err != nil {
		return ctrl.State(), err
	}

	st := ctrl.State()
	if st.Stage == wizard.StageError {
		return st, st.LookupErr
	}
	if st.Stage != wizard.StageReview {
		return st, fmt.Errorf("lookup ended in unexpected stage %s", st.Stage)
	}

	if confirm {
		if err := ctrl.Confirm(); err != nil {
			return st, err
		}
		st = ctrl.State()
	}
	return st, nil
}

// stepReporter maps wizard stage changes to runner steps. It is called with
// the controller lock held and must not call back into the controller.
func stepReporter(onStep ui.StepCallback) func(from, to wizard.Stage) {
	var fetchStart time.Time
	return func(from, to wizard.Stage) {
		switch to {
		case wizard.StageFetching:
			fetchStart = time.Now()
			onStep(1, ui.StepComplete, "")
			onStep(2, ui.StepRunning, "")
		case wizard.StageReview:
			onStep(2, ui.StepComplete, time.Since(fetchStart).Round(10*time.Millisecond).String())
			onStep(3, ui.StepComplete, "")
		case wizard.StageError:
			onStep(2, ui.StepFailed, "")
		case wizard.StageConfirmed:
			onStep(4, ui.StepComplete, "")
		}
	}
}

// suggestOutput is the JSON shape printed by "suggest --format json"
type suggestOutput struct {
	Seeds       []string             `json:"seeds"`
	Stage       string               `json:"stage"`
	Suggestions []keyword.Suggestion `json:"suggestions"`
	Selected    []keyword.Suggestion `json:"selected,omitempty"`
}

func writeJSON(w io.Writer, st wizard.State) error {
	result := suggestOutput{
		Seeds:       st.Seeds.List(),
		Stage:       st.Stage.String(),
		Suggestions: st.Suggestions,
	}
	if st.Stage == wizard.StageConfirmed {
		result.Selected = st.Selected()
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printSeedErrors writes one line per invalid seed slot
func printSeedErrors(w io.Writer, errs wizard.FieldErrors) {
	for _, slot := range keyword.Slots {
		if msg := errs.Get(slot); msg != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", slot, msg)
		}
	}
}

// validateCmd checks a single seed keyword
var validateCmd = &cobra.Command{
	Use:   "validate <text>",
	Short: "Check whether text is a valid seed keyword",
	Example: `  kwfinder validate "organic coffee"
  kwfinder validate "coffee & tea"`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	text := args[0]

	err := keyword.ValidateSeed(text)
	if err == nil {
		ui.PrintSuccess(out, "Valid seed keyword", []ui.Detail{
			{Key: "Seed", Value: text},
			{Key: "Words", Value: fmt.Sprintf("%d of %d", len(strings.Fields(text)), keyword.MaxSeedWords)},
		})
		return nil
	}

	ui.PrintFailure(out, "Invalid seed keyword", errors.New(keyword.ValidationMessage(err)), nil)
	return err
}
