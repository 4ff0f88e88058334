package theme

import "github.com/charmbracelet/lipgloss"

// Guild & Grove palette
var (
	// Brand greens
	Emerald      = lipgloss.Color("#047857")
	LightEmerald = lipgloss.Color("#34D399")
	DeepEmerald  = lipgloss.Color("#064E3B")
	Mint         = lipgloss.Color("#A7F3D0")

	// Neutrals
	White    = lipgloss.Color("#FFFFFF")
	Sage     = lipgloss.Color("#9CA3AF")
	DimGray  = lipgloss.Color("#6B7280")
	DarkGray = lipgloss.Color("#374151")

	// Semantic colors
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#F59E0B")
)
