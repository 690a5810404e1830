package picker

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oracle/internal/draw"
	"github.com/abhisek/oracle/internal/oracle"
	"github.com/abhisek/oracle/internal/store"
	"github.com/abhisek/oracle/internal/ui/components"
	"github.com/abhisek/oracle/internal/ui/layout"
	"github.com/abhisek/oracle/internal/ui/theme"
)

const menuWidth = 30

// fadeColors are the text colors a drawn card steps through as it appears.
func fadeColors() []color.Color {
	return []color.Color{theme.BgCard, theme.Border, theme.TextDim, theme.Text}
}

func revealSteps() int { return len(fadeColors()) - 1 }

func (p *PickerScreen) View(width, height int) string {
	switch p.sess.Phase() {
	case oracle.PhasePending:
		return p.renderLoading(width, height)
	case oracle.PhaseFailed:
		return p.renderFailure(width, height)
	}

	menus := p.renderMenus(!layout.IsCompactHeight(height))

	var body string
	if layout.IsCompactWidth(width) {
		card := p.renderCard(width - 4)
		body = lipgloss.JoinVertical(lipgloss.Left, card, "", menus)
	} else {
		card := p.renderCard(width - menuWidth - 8)
		body = lipgloss.JoinHorizontal(lipgloss.Top, menus, "    ", card)
	}

	if p.help.ShowAll {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", p.help.View(p.keys))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (p *PickerScreen) renderLoading(width, height int) string {
	msg := p.spinner.View() + " " + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Shuffling the deck...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func (p *PickerScreen) renderFailure(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Failure.Render("The oracle could not be reached."))
	b.WriteString("\n\n")
	if err := p.sess.Err(); err != nil {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width - 8).
			Render(err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render("Check --db or ORACLE_DB and try again."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderMenus draws both menus and, when withGauge is set, how much of the
// dataset the selection covers.
func (p *PickerScreen) renderMenus(withGauge bool) string {
	col := lipgloss.NewStyle().Width(menuWidth)

	var b strings.Builder
	b.WriteString(col.Render(p.decks.View()))
	b.WriteString("\n")
	b.WriteString(col.Render(p.categories.View()))

	if n, err := p.sess.Count(); err == nil {
		total := 0
		if st, err := p.sess.Store(); err == nil {
			total = st.MessageCount()
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d %s in this selection", n, plural(n, "card", "cards"))))
		if withGauge {
			b.WriteString("\n")
			b.WriteString(components.Gauge{Value: n, Max: total, Width: menuWidth}.View())
		}
	}
	return b.String()
}

func (p *PickerScreen) renderCard(width int) string {
	if width < 20 {
		width = 20
	}
	card := theme.Card.Width(width)

	if p.result == nil {
		return card.Render(theme.Hint.Render("Focus your question, then press space to draw."))
	}

	res := p.result
	colors := fadeColors()
	step := min(p.revealStep, len(colors)-1)
	textStyle := lipgloss.NewStyle().Foreground(colors[step])

	if !res.Matched() {
		return card.Render(textStyle.Italic(true).Render(res.Text()))
	}

	var b strings.Builder
	if glyph, ok := drawnIcon(*res); ok {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(glyph))
		b.WriteString("\n\n")
	}
	b.WriteString(textStyle.Bold(true).Render(res.Text()))
	return card.Render(b.String())
}

// drawnIcon returns the glyph of the drawn card's category when the draw
// was constrained to a category.
func drawnIcon(res draw.Result) (string, bool) {
	for _, c := range res.Filter.Constraints() {
		if c.Field == store.FieldCategory {
			return Icon(res.Message.CategoryID)
		}
	}
	return "", false
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
