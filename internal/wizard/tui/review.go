package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/kwfinder/internal/keyword"
)

// Fixed column widths of the suggestion table
const (
	volumeColumnWidth      = 14
	competitionColumnWidth = 12
	roleColumnWidth        = 11
)

func newSuggestionTable() table.Model {
	t := table.New(
		table.WithColumns(suggestionColumns(MinTerminalWidth-8)),
		table.WithHeight(10),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(TextColor).
		Background(PrimaryColor).
		Bold(false)
	t.SetStyles(s)

	return t
}

func suggestionColumns(width int) []table.Column {
	keywordWidth := width - volumeColumnWidth - competitionColumnWidth - roleColumnWidth - 8
	if keywordWidth < 20 {
		keywordWidth = 20
	}
	return []table.Column{
		{Title: "Keyword", Width: keywordWidth},
		{Title: "Search Volume", Width: volumeColumnWidth},
		{Title: "Competition", Width: competitionColumnWidth},
		{Title: "Role", Width: roleColumnWidth},
	}
}

func resizeSuggestionTable(t *table.Model, width int) {
	t.SetColumns(suggestionColumns(width))
	t.SetWidth(width)
}

// suggestionRows converts suggestions to table rows in provider order
func suggestionRows(suggestions []keyword.Suggestion) []table.Row {
	rows := make([]table.Row, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, table.Row{
			s.Text,
			fmt.Sprintf("%*s", volumeColumnWidth-2, keyword.FormatVolume(s.Volume)),
			s.Competition.String(),
			keyword.RoleBadge(s.Role),
		})
	}
	return rows
}

// updateReviewScreen handles keyboard input on the review screen
func (m AppModel) updateReviewScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ReviewKeys.Confirm):
		next, err := m.State.Confirm()
		if err != nil {
			return m, nil
		}
		m.transition(next)
		m.Table.Blur()
		return m, nil

	case key.Matches(msg, m.ReviewKeys.Edit):
		next, err := m.State.Edit()
		if err != nil {
			return m, nil
		}
		m.transition(next)
		m.Table.SetRows(nil)
		return m, m.focusSlot(keyword.SlotFirst)

	case key.Matches(msg, m.ReviewKeys.Restart):
		return m.restart()

	case key.Matches(msg, m.ReviewKeys.Quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// renderReviewScreen renders the suggestion table and the highlighted row
func (m AppModel) renderReviewScreen() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Review Keyword Suggestions"))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle(fmt.Sprintf("  Based on your seed keywords: %s", m.State.Seeds)))
	b.WriteString("\n\n")

	b.WriteString(m.Table.View())
	b.WriteString("\n\n")

	if cursor := m.Table.Cursor(); cursor >= 0 && cursor < len(m.State.Suggestions) {
		b.WriteString(InfoBoxStyle.Render(renderSuggestionDetail(m.State.Suggestions[cursor])))
		b.WriteString("\n")
	}

	b.WriteString(RenderSubtitle(fmt.Sprintf("  %d suggestions • %d selected for your campaign",
		len(m.State.Suggestions), len(m.State.Selected()))))
	b.WriteString("\n")

	return b.String()
}

// renderSuggestionDetail renders one suggestion with its coloured competition
// level and role badge
func renderSuggestionDetail(s keyword.Suggestion) string {
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		LabelStyle.Render(s.Text),
		"  ",
		RenderBadge(s.Role),
	)

	stats := fmt.Sprintf("Search volume %s • Competition %s",
		keyword.FormatVolume(s.Volume),
		CompetitionStyle(s.Competition).Render(s.Competition.String()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, line, stats)
}
