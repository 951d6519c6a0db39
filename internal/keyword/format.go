package keyword

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var volumePrinter = message.NewPrinter(language.English)

// FormatVolume formats a search volume with thousands separators (e.g. "12,500")
func FormatVolume(volume int) string {
	return volumePrinter.Sprintf("%d", volume)
}

// RoleBadge returns the upper-case label used for selected keywords, or "" for RoleNone
func RoleBadge(r Role) string {
	switch r {
	case RolePrimary:
		return "PRIMARY"
	case RoleSecondary:
		return "SECONDARY"
	default:
		return ""
	}
}

// FormatDetailed returns a multi-line listing of suggestions
func FormatDetailed(seeds Seeds, suggestions []Suggestion) string {
	var b strings.Builder

	b.WriteString("Keyword Suggestions\n")
	b.WriteString("===================\n")
	b.WriteString(fmt.Sprintf("Based on your seed keywords: %s\n\n", seeds))

	width := len("Keyword")
	for _, s := range suggestions {
		if len(s.Text) > width {
			width = len(s.Text)
		}
	}

	b.WriteString(fmt.Sprintf("  %-*s  %13s  %-11s  %s\n", width, "Keyword", "Search Volume", "Competition", "Role"))
	for _, s := range suggestions {
		b.WriteString(fmt.Sprintf("  %-*s  %13s  %-11s  %s\n",
			width, s.Text, FormatVolume(s.Volume), s.Competition, RoleBadge(s.Role)))
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatCompact returns one line per suggestion: text|volume|competition|role
func FormatCompact(suggestions []Suggestion) string {
	lines := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		lines = append(lines, fmt.Sprintf("%s|%d|%s|%s", s.Text, s.Volume, s.Competition, s.Role))
	}
	return strings.Join(lines, "\n")
}

// FormatSelected lists the confirmed keywords with their role labels
func FormatSelected(suggestions []Suggestion) string {
	var lines []string
	for _, s := range FilterSelected(suggestions) {
		lines = append(lines, fmt.Sprintf("%-10s %s", RoleBadge(s.Role), s.Text))
	}
	return strings.Join(lines, "\n")
}
