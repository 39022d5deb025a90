package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"provisr/internal/step"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("99")  // purple
	SuccessColor = lipgloss.Color("42")  // green
	ErrorColor   = lipgloss.Color("196") // red
	WarningColor = lipgloss.Color("214") // orange
	InfoColor    = lipgloss.Color("39")  // blue
	MutedColor   = lipgloss.Color("241") // gray
)

// Panel and text styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Terminal size bounds for the pre-WindowSizeMsg fallback
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 16
)

// statusGlyph returns the step-list marker for a status.
func statusGlyph(s step.Status) string {
	switch s {
	case step.StatusRunning:
		return "[>]"
	case step.StatusSkipped:
		return "[-]"
	case step.StatusSuccess:
		return "[✓]"
	case step.StatusFailed:
		return "[✗]"
	default:
		return "[ ]"
	}
}

// statusStyle returns the color style used for a status word or glyph.
func statusStyle(s step.Status) lipgloss.Style {
	switch s {
	case step.StatusRunning:
		return lipgloss.NewStyle().Foreground(WarningColor)
	case step.StatusSkipped:
		return lipgloss.NewStyle().Foreground(InfoColor)
	case step.StatusSuccess:
		return lipgloss.NewStyle().Foreground(SuccessColor)
	case step.StatusFailed:
		return lipgloss.NewStyle().Foreground(ErrorColor)
	default:
		return lipgloss.NewStyle()
	}
}

// GetTerminalSize returns the current terminal size, with fallbacks. Used to
// size the first frame before the program receives a WindowSizeMsg.
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, MinTerminalHeight
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}
	return width, height
}
