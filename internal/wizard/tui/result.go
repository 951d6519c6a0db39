package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/kwfinder/internal/keyword"
)

// updateConfirmedScreen handles user input on the confirmation screen
func (m AppModel) updateConfirmedScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ConfirmedKeys.Restart):
		return m.restart()
	case key.Matches(msg, m.ConfirmedKeys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// updateErrorScreen handles user input on the lookup failure screen
func (m AppModel) updateErrorScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ErrorKeys.Retry):
		next, req, err := m.State.Retry()
		if err != nil {
			return m, nil
		}
		return m.startLookup(next, req)

	case key.Matches(msg, m.ErrorKeys.Edit):
		next, err := m.State.Edit()
		if err != nil {
			return m, nil
		}
		m.transition(next)
		return m, m.focusSlot(keyword.SlotFirst)

	case key.Matches(msg, m.ErrorKeys.Restart):
		return m.restart()

	case key.Matches(msg, m.ErrorKeys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// renderConfirmedScreen renders the confirmed Primary and Secondary keywords
func (m AppModel) renderConfirmedScreen() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✓ Keywords Confirmed!"))
	b.WriteString("\n")

	var list strings.Builder
	list.WriteString("Your selected keywords:\n\n")
	for _, s := range m.State.Selected() {
		list.WriteString(fmt.Sprintf("  %s  %s\n", RenderBadge(s.Role), s.Text))
		list.WriteString(fmt.Sprintf("     %s searches/month • %s competition\n\n",
			keyword.FormatVolume(s.Volume),
			CompetitionStyle(s.Competition).Render(s.Competition.String()),
		))
	}
	b.WriteString(SuccessBoxStyle.Render(strings.TrimRight(list.String(), "\n")))
	b.WriteString("\n\n")

	b.WriteString("What would you like to do next?\n\n")
	b.WriteString(MenuItemStyle.Render("n - Start a new keyword search"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("q - Exit application"))
	b.WriteString("\n")

	return b.String()
}

// renderErrorScreen renders the lookup failure with troubleshooting hints
func (m AppModel) renderErrorScreen() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✗ Keyword Lookup Failed"))
	b.WriteString("\n")

	message := "Keyword lookup failed"
	if m.State.LookupErr != nil {
		message = keyword.GetShortErrorMessage(m.State.LookupErr)
	}
	b.WriteString(ErrorBoxStyle.Render("Error: " + message))
	b.WriteString("\n\n")

	if m.State.LookupErr != nil {
		b.WriteString(keyword.FormatTroubleshooting(keyword.GetTroubleshootingHint(m.State.LookupErr)))
		b.WriteString("\n\n")
	}

	b.WriteString("What would you like to do?\n\n")
	b.WriteString(MenuItemStyle.Render("r - Retry the search"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("e - Edit seed keywords"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("q - Exit application"))
	b.WriteString("\n")

	return b.String()
}
