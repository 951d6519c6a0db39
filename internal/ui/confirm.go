package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box and asks a yes/no question on out, reading
// the answer from in. Only "y" or "yes" (any case) confirms; anything else,
// including EOF, declines.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string, question string) bool {
	width := GetTerminalWidth()

	if title != "" || len(warnings) > 0 {
		lines := []string{
			"",
			lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true).
				Render(fmt.Sprintf("   ⚠  WARNING  ─  %s", title)),
			"",
		}
		for _, warning := range warnings {
			lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+warning))
		}
		lines = append(lines, "")

		_, _ = fmt.Fprintln(out, WarningBoxStyle(width).Render(strings.Join(lines, "\n")))
		_, _ = fmt.Fprintln(out)
	}

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	_, _ = fmt.Fprint(out, promptStyle.Render(question+" [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	_, _ = fmt.Fprintln(out)
	if err != nil && input == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	_, _ = fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	_, _ = fmt.Fprintln(out)
	return false
}
