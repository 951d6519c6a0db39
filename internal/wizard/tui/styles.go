package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/kwfinder/internal/keyword"
	"github.com/muurk/kwfinder/internal/version"
)

// Application branding constants
const (
	AppName    = "KEYWORDFINDER PRO"
	AppTagline = "Keyword Research Wizard"
	GitHubURL  = "github.com/muurk/kwfinder"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 72  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	// Competition levels
	LowColor    = lipgloss.Color("#43BF6D") // Green
	MediumColor = lipgloss.Color("#E5C07B") // Yellow
	HighColor   = lipgloss.Color("#E06C75") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	MenuItemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(TextColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	BlurredInputStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(2)

	SuccessBoxStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(1, 2)

	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2)

	InfoBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 2)

	// Step indicator styles
	StepDoneStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	StepCurrentStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Underline(true)

	StepPendingStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Role badges
	PrimaryBadgeStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	SecondaryBadgeStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Border(lipgloss.NormalBorder(), false, true).
				BorderForeground(PrimaryColor).
				Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Background(lipgloss.Color("236")).
				Padding(0, 2)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// CompetitionStyle returns the colour used for a competition level
func CompetitionStyle(c keyword.Competition) lipgloss.Style {
	switch c {
	case keyword.CompetitionLow:
		return lipgloss.NewStyle().Foreground(LowColor)
	case keyword.CompetitionHigh:
		return lipgloss.NewStyle().Foreground(HighColor)
	default:
		return lipgloss.NewStyle().Foreground(MediumColor)
	}
}

// RenderBadge renders the PRIMARY/SECONDARY badge for a role, or "" for none
func RenderBadge(r keyword.Role) string {
	switch r {
	case keyword.RolePrimary:
		return PrimaryBadgeStyle.Render(keyword.RoleBadge(r))
	case keyword.RoleSecondary:
		return SecondaryBadgeStyle.Render(keyword.RoleBadge(r))
	default:
		return ""
	}
}

// BuildHeaderContent creates header content with app name and project URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(AppTagline + " • " + GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer is the wrapper for every screen in the wizard.
// It draws the application header, the screen content and a context-sensitive
// footer inside a bordered panel that fills the terminal.
//
//	func (m AppModel) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, m.Help.View(keys), m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth <= 0 {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = 24
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	// Callers control their own content margins
	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// CalculateContentWidth returns the usable width inside the container,
// capped for readability on very wide terminals
func CalculateContentWidth(terminalWidth int) int {
	w := terminalWidth - 8
	if w < MinTerminalWidth-8 {
		w = MinTerminalWidth - 8
	}
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	return w
}
