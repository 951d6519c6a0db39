package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/kwfinder/internal/keyword"
	"github.com/muurk/kwfinder/internal/logging"
	"github.com/muurk/kwfinder/internal/wizard"
)

// lookupCompleteMsg carries a finished lookup back into the update loop
type lookupCompleteMsg struct {
	req    wizard.Request
	result keyword.Result
}

// AppModel is the top-level model. It owns the wizard state and renders the
// screen that matches the current stage.
type AppModel struct {
	// Wizard state
	State    wizard.State
	Provider keyword.Provider
	Latency  time.Duration

	// Input screen
	Inputs [2]textinput.Model
	Focus  keyword.Slot

	// Step indicator
	StepBar progress.Model

	// Fetching screen
	Spinner        spinner.Model
	ProgressBar    progress.Model
	FetchStartTime time.Time
	cancelLookup   context.CancelFunc

	// Review screen
	Table table.Model

	// UI state
	Width  int
	Height int

	// Help
	Help          help.Model
	InputKeys     inputKeyMap
	FetchingKeys  fetchingKeyMap
	ReviewKeys    reviewKeyMap
	ConfirmedKeys confirmedKeyMap
	ErrorKeys     errorKeyMap
}

// NewAppModel creates the wizard model at the seed entry step.
// latency is the expected lookup duration, used to drive the progress bar.
func NewAppModel(provider keyword.Provider, latency time.Duration) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.Width = 40

	stepBar := progress.New(progress.WithSolidFill(string(PrimaryColor)), progress.WithoutPercentage())
	stepBar.Width = 40

	m := AppModel{
		State:         wizard.New(),
		Provider:      provider,
		Latency:       latency,
		StepBar:       stepBar,
		Spinner:       s,
		ProgressBar:   progressBar,
		Table:         newSuggestionTable(),
		Help:          help.New(),
		InputKeys:     newInputKeyMap(),
		FetchingKeys:  newFetchingKeyMap(),
		ReviewKeys:    newReviewKeyMap(),
		ConfirmedKeys: newConfirmedKeyMap(),
		ErrorKeys:     newErrorKeyMap(),
	}
	m.Inputs = newSeedInputs()
	m.focusSlot(keyword.SlotFirst)

	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages and routes them to the active stage
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			m.abandonLookup()
			return m, tea.Quit
		}

	case lookupCompleteMsg:
		return m.handleLookupComplete(msg)

	case spinner.TickMsg:
		if !m.State.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch m.State.Stage {
	case wizard.StageInput:
		return m.updateInputScreen(keyMsg)
	case wizard.StageFetching:
		return m.updateFetchingScreen(keyMsg)
	case wizard.StageReview:
		return m.updateReviewScreen(keyMsg)
	case wizard.StageConfirmed:
		return m.updateConfirmedScreen(keyMsg)
	case wizard.StageError:
		return m.updateErrorScreen(keyMsg)
	}

	return m, nil
}

// transition applies the next state and logs stage changes
func (m *AppModel) transition(next wizard.State) {
	prev := m.State
	m.State = next
	if prev.Stage != next.Stage {
		logging.LogTransition(prev.Stage.String(), next.Stage.String(), next.Generation)
	}
}

// startLookup moves to Fetching and returns the command that performs req
func (m AppModel) startLookup(next wizard.State, req wizard.Request) (tea.Model, tea.Cmd) {
	m.abandonLookup()
	m.transition(next)
	m.FetchStartTime = time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelLookup = cancel

	for i := range m.Inputs {
		m.Inputs[i].Blur()
	}

	return m, tea.Batch(
		lookupCmd(ctx, m.Provider, req),
		m.Spinner.Tick,
	)
}

// handleLookupComplete resolves a finished lookup; stale results are dropped
func (m AppModel) handleLookupComplete(msg lookupCompleteMsg) (tea.Model, tea.Cmd) {
	if !m.State.IsCurrent(msg.req) {
		logging.LogStaleResult(msg.req.ID, msg.req.Generation, m.State.Generation)
		return m, nil
	}

	if m.cancelLookup != nil {
		m.cancelLookup()
		m.cancelLookup = nil
	}

	m.transition(m.State.Resolve(msg.req, msg.result))
	if m.State.Stage == wizard.StageReview {
		m.Table.SetRows(suggestionRows(m.State.Suggestions))
		m.Table.SetCursor(0)
		m.Table.Focus()
	}
	return m, nil
}

// abandonLookup cancels the in-flight lookup context, if any
func (m *AppModel) abandonLookup() {
	if m.cancelLookup != nil {
		m.cancelLookup()
		m.cancelLookup = nil
	}
}

// restart clears everything and returns to seed entry
func (m AppModel) restart() (tea.Model, tea.Cmd) {
	m.abandonLookup()
	m.transition(m.State.Restart())
	m.Inputs = newSeedInputs()
	m.resize()
	m.Table.SetRows(nil)
	return m, m.focusSlot(keyword.SlotFirst)
}

// lookupCmd runs a suggestion lookup outside the update loop
func lookupCmd(ctx context.Context, provider keyword.Provider, req wizard.Request) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		logging.LogLookupStart(req.ID, provider.Name(), req.Seeds.List())

		result := keyword.Lookup(ctx, provider, req.Seeds)
		logging.LogLookup(req.ID, provider.Name(), len(result.Suggestions), time.Since(start), result.Err)

		return lookupCompleteMsg{req: req, result: result}
	}
}

// resize propagates the terminal width to width-aware components
func (m *AppModel) resize() {
	width := CalculateContentWidth(m.Width)

	inputWidth := width - 24
	if inputWidth > 50 {
		inputWidth = 50
	}
	for i := range m.Inputs {
		m.Inputs[i].Width = inputWidth
	}

	m.ProgressBar.Width = min(width-4, 60)
	m.StepBar.Width = min(width-4, 60)
	m.Help.Width = width
	resizeSuggestionTable(&m.Table, width)
}

// View renders the screen for the current stage.
// Each screen is wrapped by RenderApplicationContainer.
func (m AppModel) View() string {
	var content, helpText string

	switch m.State.Stage {
	case wizard.StageInput:
		content = m.renderInputScreen()
		helpText = m.Help.View(m.InputKeys)
	case wizard.StageFetching:
		content = m.renderFetchingScreen()
		helpText = m.Help.View(m.FetchingKeys)
	case wizard.StageReview:
		content = m.renderReviewScreen()
		helpText = m.Help.View(m.ReviewKeys)
	case wizard.StageConfirmed:
		content = m.renderConfirmedScreen()
		helpText = m.Help.View(m.ConfirmedKeys)
	case wizard.StageError:
		content = m.renderErrorScreen()
		helpText = m.Help.View(m.ErrorKeys)
	default:
		content = "Unknown stage"
	}

	return RenderApplicationContainer(m.renderSteps()+"\n"+content, helpText, m.Width, m.Height)
}

// Run starts the interactive wizard on the terminal
func Run(provider keyword.Provider, latency time.Duration) error {
	p := tea.NewProgram(NewAppModel(provider, latency), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
