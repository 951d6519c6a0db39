package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RunnerConfig holds configuration for a command execution
type RunnerConfig struct {
	Title       string                   // Command title (e.g., "Keyword Suggestions")
	Command     string                   // Full command (e.g., "kwfinder suggest plumbing Chicago")
	Params      []Detail                 // Parameters to display in header
	StepNames   []string                 // Names for each step, in order
	Hints       func(err error) []string // Troubleshooting tips for a failure
	Interactive bool                     // Output is a terminal; running steps are drawn in place
	Output      io.Writer                // Output writer (default: os.Stdout)
	Width       int                      // Render width (default: terminal width)
}

// Summary is what a successful operation reports back to the runner
type Summary struct {
	Title   string   // Result box title
	Details []Detail // Key-value details
	Body    string   // Free-form content, e.g. a suggestion table
}

// Runner orchestrates the UI for a command execution.
// It manages the header → progress → result flow and provides
// callbacks for reporting progress.
type Runner struct {
	config    RunnerConfig
	header    *Header
	progress  *Progress
	output    io.Writer
	startTime time.Time
	width     int
}

// NewRunner creates a new runner for a command
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := config.Width
	if width <= 0 {
		width = GetTerminalWidth()
	}

	header := NewHeader(config.Title, config.Command, config.Params)
	header.SetWidth(width)

	var progress *Progress
	if len(config.StepNames) > 0 {
		progress = NewProgress("", len(config.StepNames))
		progress.SetWidth(width)
		progress.SetStepNames(config.StepNames)
	}

	return &Runner{
		config:   config,
		header:   header,
		progress: progress,
		output:   config.Output,
		width:    width,
	}
}

// Operation is the function signature for the work a command performs.
// The operation receives a StepCallback to report progress.
type Operation func(ctx context.Context, onStep StepCallback) (*Summary, error)

// Run executes the operation with UI updates.
// It displays the header, tracks progress, and shows the result.
func (r *Runner) Run(ctx context.Context, operation Operation) error {
	r.startTime = time.Now()

	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	summary, err := operation(ctx, r.createStepCallback())
	duration := time.Since(r.startTime)

	if err != nil {
		r.printFailure(err)
	} else {
		r.printSuccess(summary, duration)
	}

	return err
}

// Progress returns the step tracker, or nil when the runner has no steps
func (r *Runner) Progress() *Progress {
	return r.progress
}

// createStepCallback creates the step callback function
func (r *Runner) createStepCallback() StepCallback {
	return func(stepNumber int, status StepStatus, message string) {
		if r.progress == nil {
			return
		}

		r.progress.UpdateStep(stepNumber, status, message)
		step, ok := r.progress.Step(stepNumber)
		if !ok {
			return
		}

		switch status {
		case StepComplete, StepFailed, StepSkipped:
			_, _ = fmt.Fprintln(r.output, r.progress.RenderStepLine(step))
		case StepRunning:
			// Overwritten when the step finishes
			if r.config.Interactive {
				_, _ = fmt.Fprint(r.output, r.progress.RenderStepLine(step)+"\r")
			}
		}
	}
}

func (r *Runner) printSuccess(summary *Summary, duration time.Duration) {
	_, _ = fmt.Fprintln(r.output)

	if summary == nil {
		summary = &Summary{}
	}
	title := summary.Title
	if title == "" {
		title = r.config.Title + " complete"
	}

	result := NewSuccessResult(title, summary.Details)
	result.AddDetail("Duration", duration.Round(time.Millisecond).String())
	result.Body = summary.Body
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())
}

func (r *Runner) printFailure(err error) {
	_, _ = fmt.Fprintln(r.output)

	var troubleshooting []string
	if r.config.Hints != nil {
		troubleshooting = r.config.Hints(err)
	}

	result := NewFailureResult(r.config.Title+" failed", err, troubleshooting)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())
}

// PrintPleaseWait prints a styled "please wait" message for slow operations.
// The duration hint sets expectations, e.g., "about 2 seconds".
func PrintPleaseWait(out io.Writer, message string, durationHint string) {
	style := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	hintStyle := lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	line := style.Render("⏳ " + message)
	if durationHint != "" {
		line += " " + hintStyle.Render("("+durationHint+")")
	}
	line += style.Render("...")

	_, _ = fmt.Fprintln(out, line)
	_, _ = fmt.Fprintln(out)
}

// PrintSuccess prints a styled success result
func PrintSuccess(out io.Writer, title string, details []Detail) {
	result := NewSuccessResult(title, details)
	_, _ = fmt.Fprintln(out, result.Render())
}

// PrintFailure prints a styled failure result
func PrintFailure(out io.Writer, title string, err error, troubleshooting []string) {
	result := NewFailureResult(title, err, troubleshooting)
	_, _ = fmt.Fprintln(out, result.Render())
}
