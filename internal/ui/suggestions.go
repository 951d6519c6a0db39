package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/kwfinder/internal/keyword"
)

// Column indexes of the suggestion table
const (
	colKeyword = iota
	colVolume
	colCompetition
	colRole
)

// RenderSuggestionTable renders suggestions as a bordered table in provider
// order, with competition levels coloured and role badges shown
func RenderSuggestionTable(suggestions []keyword.Suggestion) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		Headers("KEYWORD", "SEARCH VOLUME", "COMPETITION", "ROLE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			style := TableCellStyle
			switch col {
			case colVolume:
				style = style.Align(lipgloss.Right)
			case colCompetition:
				if row >= 0 && row < len(suggestions) {
					style = style.Foreground(CompetitionColor(suggestions[row].Competition))
				}
			case colRole:
				style = style.Inherit(BadgeStyle)
			}
			return style
		})

	for _, s := range suggestions {
		t.Row(
			s.Text,
			keyword.FormatVolume(s.Volume),
			s.Competition.String(),
			keyword.RoleBadge(s.Role),
		)
	}

	return t.Render()
}

// RenderSelected renders the Primary and Secondary keywords as a short list
func RenderSelected(selected []keyword.Suggestion) string {
	if len(selected) == 0 {
		return StepNoteStyle.Render("   No keywords carry a Primary or Secondary role")
	}

	lines := make([]string, 0, len(selected))
	for _, s := range selected {
		lines = append(lines, fmt.Sprintf("   %s  %s  %s",
			BadgeStyle.Render(fmt.Sprintf("%-11s", keyword.RoleBadge(s.Role))),
			ResultValueStyle.Render(s.Text),
			StepNoteStyle.Render(fmt.Sprintf("(%s searches/month, %s competition)",
				keyword.FormatVolume(s.Volume), s.Competition)),
		))
	}
	return strings.Join(lines, "\n")
}
