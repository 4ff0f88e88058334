package components

import (
	"math"
	"strings"

	"github.com/guildandgrove/website/internal/pkg/tui/theme"
)

// Bar is a horizontal gauge showing Value as a share of Max.
type Bar struct {
	Width  int
	Value  float64
	Max    float64
	styles *theme.Styles
}

func NewBar(width int) Bar {
	return Bar{
		Width:  width,
		styles: theme.Default(),
	}
}

// Set updates value and max.
func (b *Bar) Set(value, limit float64) {
	b.Value = value
	b.Max = limit
}

// Filled returns the number of filled cells, in [0, Width].
func (b Bar) Filled() int {
	if b.Width <= 0 || !(b.Max > 0) || !(b.Value > 0) {
		return 0
	}
	ratio := b.Value / b.Max
	if ratio > 1 || math.IsInf(ratio, 1) {
		ratio = 1
	}
	return int(math.Round(ratio * float64(b.Width)))
}

// View renders the bar
func (b Bar) View() string {
	filled := b.Filled()
	var sb strings.Builder
	sb.WriteString(b.styles.BarFilled.Render(strings.Repeat("█", filled)))
	sb.WriteString(b.styles.BarEmpty.Render(strings.Repeat("░", b.Width-filled)))
	return sb.String()
}
