package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oracle/internal/ui/theme"
)

// Gauge shows Value out of Max as a horizontal bar followed by the count.
type Gauge struct {
	Value int
	Max   int
	Width int
}

// Fraction returns Value/Max clamped to [0, 1]. An empty gauge is 0.
func (g Gauge) Fraction() float64 {
	if g.Max <= 0 || g.Value <= 0 {
		return 0
	}
	if g.Value >= g.Max {
		return 1
	}
	return float64(g.Value) / float64(g.Max)
}

// View renders the gauge.
func (g Gauge) View() string {
	count := fmt.Sprintf("  %d/%d", g.Value, g.Max)

	barWidth := g.Width - len(count)
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(float64(barWidth) * g.Fraction())
	if g.Value > 0 && filled == 0 {
		filled = 1
	}

	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}
