package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/kwfinder/internal/keyword"
	"github.com/muurk/kwfinder/internal/wizard"
)

// stepLabels are the titles of the four wizard steps
var stepLabels = [4]string{
	"Seed Keywords",
	"Processing",
	"Review Results",
	"Confirmation",
}

// seedPlaceholders are example seeds shown in the empty fields
var seedPlaceholders = [2]string{
	"e.g. plumbing",
	"e.g. Chicago",
}

func newSeedInputs() [2]textinput.Model {
	var inputs [2]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = seedPlaceholders[i]
		ti.CharLimit = 80
		ti.Width = 40
		ti.Prompt = "› "
		ti.PromptStyle = BlurredInputStyle
		inputs[i] = ti
	}
	return inputs
}

func slotIndex(slot keyword.Slot) int {
	if slot == keyword.SlotSecond {
		return 1
	}
	return 0
}

// focusSlot moves keyboard focus to one of the seed fields
func (m *AppModel) focusSlot(slot keyword.Slot) tea.Cmd {
	m.Focus = slot
	var cmd tea.Cmd
	for i := range m.Inputs {
		if i == slotIndex(slot) {
			cmd = m.Inputs[i].Focus()
			m.Inputs[i].PromptStyle = FocusedInputStyle
		} else {
			m.Inputs[i].Blur()
			m.Inputs[i].PromptStyle = BlurredInputStyle
		}
	}
	return cmd
}

// updateInputScreen handles keyboard input on the seed entry screen
func (m AppModel) updateInputScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.InputKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.InputKeys.Next), key.Matches(msg, m.InputKeys.Prev):
		next := keyword.SlotSecond
		if m.Focus == keyword.SlotSecond {
			next = keyword.SlotFirst
		}
		return m, m.focusSlot(next)

	case key.Matches(msg, m.InputKeys.Submit):
		return m.submit()
	}

	return m.updateInputs(msg)
}

// updateInputs forwards a message to the focused field and revalidates it
// when its text changed
func (m AppModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.State.Stage != wizard.StageInput {
		return m, nil
	}

	idx := slotIndex(m.Focus)
	before := m.Inputs[idx].Value()

	var cmd tea.Cmd
	m.Inputs[idx], cmd = m.Inputs[idx].Update(msg)

	if value := m.Inputs[idx].Value(); value != before {
		next, err := m.State.SetSeed(m.Focus, value)
		if err == nil {
			m.transition(next)
		}
	}

	return m, cmd
}

// submit validates both seeds and starts the lookup when they pass
func (m AppModel) submit() (tea.Model, tea.Cmd) {
	next, req, err := m.State.Submit()
	if err != nil {
		m.transition(next)
		if errors.Is(err, wizard.ErrSeedsInvalid) {
			// Focus the first field that needs attention
			if next.Errors.First == "" && next.Errors.Second != "" {
				return m, m.focusSlot(keyword.SlotSecond)
			}
			return m, m.focusSlot(keyword.SlotFirst)
		}
		return m, nil
	}

	return m.startLookup(next, req)
}

// renderSteps renders the four-step indicator and overall progress bar
func (m AppModel) renderSteps() string {
	current := m.State.Stage.Step()

	parts := make([]string, 0, len(stepLabels))
	for i, label := range stepLabels {
		step := i + 1
		text := fmt.Sprintf("%d. %s", step, label)
		switch {
		case step < current:
			parts = append(parts, StepDoneStyle.Render("✓ "+text))
		case step == current:
			parts = append(parts, StepCurrentStyle.Render(text))
		default:
			parts = append(parts, StepPendingStyle.Render(text))
		}
	}

	percent := float64(current-1) / float64(len(stepLabels)-1)

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		"  "+strings.Join(parts, StepPendingStyle.Render("  ›  ")),
		"  "+m.StepBar.ViewAs(percent),
	)
}

// renderInputScreen renders the two seed fields with their inline errors
func (m AppModel) renderInputScreen() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Enter Your Seed Keywords"))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle(fmt.Sprintf("  Two short seeds, up to %d words each, letters and numbers only", keyword.MaxSeedWords)))
	b.WriteString("\n\n")

	for i, slot := range keyword.Slots {
		label := LabelStyle.Render(fmt.Sprintf("  %-16s", slot.String()))
		b.WriteString(label)
		b.WriteString(m.Inputs[i].View())
		b.WriteString("\n")

		if msg := m.State.Errors.Get(slot); msg != "" {
			b.WriteString(FieldErrorStyle.Render("  ✗ " + msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	button := "Find Keywords"
	if m.State.CanSubmit() {
		b.WriteString("  " + ButtonStyle.Render(button))
	} else {
		b.WriteString("  " + DisabledButtonStyle.Render(button))
	}
	b.WriteString("\n")

	return b.String()
}
