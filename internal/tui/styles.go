package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Theme groups the styles used by the package views.
type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewTheme returns the styles for mode. ModePlain yields unstyled text.
func NewTheme(mode Mode) Theme {
	if mode != ModeStyled {
		plain := lipgloss.NewStyle()
		return Theme{Title: plain, Label: plain, Value: plain, Muted: plain, Success: plain, Error: plain}
	}

	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Label:   lipgloss.NewStyle().Foreground(ColorSecondary),
		Value:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
		Success: lipgloss.NewStyle().Foreground(ColorSuccess),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	}
}

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)
