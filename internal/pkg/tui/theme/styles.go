package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all shared TUI styles
type Styles struct {
	// Text styles
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	Muted       lipgloss.Style
	Bold        lipgloss.Style
	Highlighted lipgloss.Style

	// Form fields
	Label       lipgloss.Style
	ActiveLabel lipgloss.Style
	Cursor      lipgloss.Style

	// Help and hints
	Help    lipgloss.Style
	HelpKey lipgloss.Style

	// Layout
	Container lipgloss.Style
	Card      lipgloss.Style

	// Bars
	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style

	// Figures
	Money   lipgloss.Style
	Savings lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(LightEmerald),

		Subtitle: lipgloss.NewStyle().
			Foreground(Mint).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(Sage),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Highlighted: lipgloss.NewStyle().
			Foreground(LightEmerald).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(DimGray).
			Width(16),

		ActiveLabel: lipgloss.NewStyle().
			Foreground(LightEmerald).
			Bold(true).
			Width(16),

		Cursor: lipgloss.NewStyle().
			Foreground(LightEmerald),

		Help: lipgloss.NewStyle().
			Foreground(DimGray).
			MarginTop(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(Sage).
			Bold(true),

		Container: lipgloss.NewStyle().
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Emerald).
			Padding(1, 2),

		BarFilled: lipgloss.NewStyle().
			Foreground(Emerald),

		BarEmpty: lipgloss.NewStyle().
			Foreground(DarkGray),

		Money: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Savings: lipgloss.NewStyle().
			Bold(true).
			Foreground(Success),
	}
}
