package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/kwfinder/internal/keyword"
	"github.com/muurk/kwfinder/internal/wizard"
)

func newTestModel(provider keyword.Provider) AppModel {
	m := NewAppModel(provider, 0)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(AppModel)
	if !ok {
		t.Fatalf("Update() returned %T, want AppModel", updated)
	}
	return model, cmd
}

func typeText(t *testing.T, m AppModel, text string) AppModel {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func enterSeeds(t *testing.T, m AppModel, first, second string) AppModel {
	t.Helper()
	m = typeText(t, m, first)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	return typeText(t, m, second)
}

// findLookup runs the commands of a batch and returns the lookup result
func findLookup(t *testing.T, cmd tea.Cmd) lookupCompleteMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}

	msg := cmd()
	if done, ok := msg.(lookupCompleteMsg); ok {
		return done
	}

	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("command returned %T, want tea.BatchMsg", msg)
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		if done, ok := c().(lookupCompleteMsg); ok {
			return done
		}
	}

	t.Fatal("no lookup command in batch")
	return lookupCompleteMsg{}
}

func mockProvider() *keyword.MockProvider {
	return &keyword.MockProvider{Templates: keyword.DefaultTemplates()}
}

func TestAppModel_HappyPath(t *testing.T) {
	m := newTestModel(mockProvider())
	m = enterSeeds(t, m, "plumbing", "Chicago")

	if m.State.Seeds != (keyword.Seeds{First: "plumbing", Second: "Chicago"}) {
		t.Fatalf("seeds = %+v", m.State.Seeds)
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State.Stage != wizard.StageFetching {
		t.Fatalf("stage after enter = %v, want fetching", m.State.Stage)
	}
	if !strings.Contains(m.View(), "FINDING KEYWORD SUGGESTIONS") {
		t.Error("fetching view missing spinner title")
	}

	m, _ = send(t, m, findLookup(t, cmd))
	if m.State.Stage != wizard.StageReview {
		t.Fatalf("stage after lookup = %v, want review", m.State.Stage)
	}
	if rows := len(m.Table.Rows()); rows != 8 {
		t.Errorf("table rows = %d, want 8", rows)
	}

	view := m.View()
	for _, want := range []string{"plumbing services", "12,500", "PRIMARY", "SECONDARY", "Review Results"} {
		if !strings.Contains(view, want) {
			t.Errorf("review view missing %q", want)
		}
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State.Stage != wizard.StageConfirmed {
		t.Fatalf("stage after confirm = %v, want confirmed", m.State.Stage)
	}
	view = m.View()
	for _, want := range []string{"Keywords Confirmed!", "plumbing services", "best plumbing for Chicago", "plumbing Chicago guide"} {
		if !strings.Contains(view, want) {
			t.Errorf("confirmed view missing %q", want)
		}
	}
	if strings.Contains(view, "plumbing tips") {
		t.Error("confirmed view lists an unselected suggestion")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if m.State.Stage != wizard.StageInput {
		t.Fatalf("stage after restart = %v, want input", m.State.Stage)
	}
	if m.Inputs[0].Value() != "" || m.Inputs[1].Value() != "" {
		t.Error("restart should clear the seed fields")
	}
	if len(m.State.Suggestions) != 0 {
		t.Error("restart should clear suggestions")
	}
}

func TestAppModel_InvalidSeeds(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		second  string
		wantMsg string
	}{
		{"Too many words", "a b c d", "x", keyword.MsgTooManyWords},
		{"Special characters", "café", "tea", keyword.MsgSpecialCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(mockProvider())
			m = enterSeeds(t, m, tt.first, tt.second)

			m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if m.State.Stage != wizard.StageInput {
				t.Fatalf("stage = %v, want input", m.State.Stage)
			}
			if m.State.Generation != 0 {
				t.Error("no lookup should be issued")
			}
			if m.State.Errors.First != tt.wantMsg {
				t.Errorf("Errors.First = %q, want %q", m.State.Errors.First, tt.wantMsg)
			}
			if !strings.Contains(m.View(), tt.wantMsg) {
				t.Errorf("view missing %q", tt.wantMsg)
			}
		})
	}
}

func TestAppModel_EmptySubmitShowsRequired(t *testing.T) {
	m := newTestModel(mockProvider())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State.Stage != wizard.StageInput {
		t.Fatalf("stage = %v, want input", m.State.Stage)
	}
	if m.State.Errors.First != keyword.MsgRequired || m.State.Errors.Second != keyword.MsgRequired {
		t.Errorf("errors = %+v, want required on both", m.State.Errors)
	}
}

func TestAppModel_CancelDiscardsLateResult(t *testing.T) {
	m := newTestModel(mockProvider())
	m = enterSeeds(t, m, "plumbing", "Chicago")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	late := findLookup(t, cmd)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State.Stage != wizard.StageInput {
		t.Fatalf("stage after cancel = %v, want input", m.State.Stage)
	}

	m, _ = send(t, m, late)
	if m.State.Stage != wizard.StageInput || len(m.State.Suggestions) != 0 {
		t.Errorf("late result was applied: stage %v, %d suggestions", m.State.Stage, len(m.State.Suggestions))
	}
	if m.Inputs[0].Value() != "plumbing" {
		t.Errorf("cancel should keep the seeds, got %q", m.Inputs[0].Value())
	}
}

func TestAppModel_SubmitIgnoredWhileFetching(t *testing.T) {
	m := newTestModel(mockProvider())
	m = enterSeeds(t, m, "plumbing", "Chicago")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	generation := m.State.Generation

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter while fetching should not issue a command")
	}
	if m.State.Generation != generation || m.State.Stage != wizard.StageFetching {
		t.Errorf("enter while fetching changed state: %v gen %d", m.State.Stage, m.State.Generation)
	}
}

func TestAppModel_ErrorThenRetry(t *testing.T) {
	provider := mockProvider()
	provider.Err = errors.New("service unavailable")

	m := newTestModel(provider)
	m = enterSeeds(t, m, "plumbing", "Chicago")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, findLookup(t, cmd))
	if m.State.Stage != wizard.StageError {
		t.Fatalf("stage = %v, want error", m.State.Stage)
	}

	view := m.View()
	for _, want := range []string{"Keyword Lookup Failed", "Could not fetch keyword suggestions", "Troubleshooting"} {
		if !strings.Contains(view, want) {
			t.Errorf("error view missing %q", want)
		}
	}

	provider.Err = nil
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.State.Stage != wizard.StageFetching {
		t.Fatalf("stage after retry = %v, want fetching", m.State.Stage)
	}

	m, _ = send(t, m, findLookup(t, cmd))
	if m.State.Stage != wizard.StageReview {
		t.Errorf("stage after retry lookup = %v, want review", m.State.Stage)
	}
}

func TestAppModel_EditFromReview(t *testing.T) {
	m := newTestModel(mockProvider())
	m = enterSeeds(t, m, "plumbing", "Chicago")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, findLookup(t, cmd))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if m.State.Stage != wizard.StageInput {
		t.Fatalf("stage after edit = %v, want input", m.State.Stage)
	}
	if m.State.Seeds.First != "plumbing" || m.Inputs[1].Value() != "Chicago" {
		t.Errorf("edit should keep the seeds: %+v", m.State.Seeds)
	}
	if m.Focus != keyword.SlotFirst {
		t.Errorf("focus = %v, want first slot", m.Focus)
	}
}

func TestRenderSteps(t *testing.T) {
	m := newTestModel(mockProvider())
	steps := m.renderSteps()

	for _, label := range stepLabels {
		if !strings.Contains(steps, label) {
			t.Errorf("step indicator missing %q", label)
		}
	}
}
