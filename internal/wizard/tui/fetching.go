package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateFetchingScreen handles keyboard input while a lookup is running.
// Submit keys are ignored here; only cancel and quit are accepted.
func (m AppModel) updateFetchingScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.FetchingKeys.Cancel):
		next, err := m.State.Cancel()
		if err != nil {
			return m, nil
		}
		m.abandonLookup()
		m.transition(next)
		return m, m.focusSlot(m.Focus)

	case key.Matches(msg, m.FetchingKeys.Quit):
		m.abandonLookup()
		return m, tea.Quit
	}

	return m, nil
}

// fetchProgress estimates lookup progress from the elapsed time and the
// provider's expected latency. It never reports completion on its own.
func (m AppModel) fetchProgress(elapsed time.Duration) float64 {
	if m.Latency <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(m.Latency)
	if p > 0.95 {
		p = 0.95
	}
	return p
}

// renderFetchingScreen renders the spinner and lookup progress
func (m AppModel) renderFetchingScreen() string {
	width := CalculateContentWidth(m.Width)
	elapsed := time.Since(m.FetchStartTime)

	title := fmt.Sprintf("%s FINDING KEYWORD SUGGESTIONS", m.Spinner.View())
	subtitle := fmt.Sprintf("Analysing %q and %q...", m.State.Seeds.First, m.State.Seeds.Second)
	elapsedText := fmt.Sprintf("Elapsed: %.1fs", elapsed.Seconds())

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		TitleStyle.Render(title),
		SubtitleStyle.Render(subtitle),
		"",
		m.ProgressBar.ViewAs(m.fetchProgress(elapsed)),
		"",
		SubtitleStyle.Render(elapsedText),
		"",
	)

	return lipgloss.Place(width, 0, lipgloss.Center, lipgloss.Top, content)
}
