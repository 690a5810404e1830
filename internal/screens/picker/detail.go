package picker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/oracle/internal/decktheme"
	"github.com/abhisek/oracle/internal/draw"
	"github.com/abhisek/oracle/internal/router"
	"github.com/abhisek/oracle/internal/screen"
	"github.com/abhisek/oracle/internal/ui/layout"
	"github.com/abhisek/oracle/internal/ui/theme"
)

// CardDetailScreen shows a drawn card on its own with where it came from.
type CardDetailScreen struct {
	res      draw.Result
	deck     string
	category string
	glyph    string
	tag      decktheme.Tag
}

var _ screen.Screen = (*CardDetailScreen)(nil)
var _ screen.KeyHintProvider = (*CardDetailScreen)(nil)
var _ screen.StatusProvider = (*CardDetailScreen)(nil)

// newCardDetail builds the detail view for res. Deck and category names
// come from the loaded store.
func (p *PickerScreen) newCardDetail(res draw.Result) *CardDetailScreen {
	d := &CardDetailScreen{res: res, tag: p.tag}
	st, err := p.sess.Store()
	if err != nil {
		return d
	}
	if deck, ok := st.Deck(res.Message.DeckID); ok {
		d.deck = deck.Name
	}
	if cat, ok := st.Category(res.Message.CategoryID); ok {
		d.category = cat.Name
	}
	d.glyph, _ = Icon(res.Message.CategoryID)
	return d
}

func (d *CardDetailScreen) Init() tea.Cmd { return nil }
func (d *CardDetailScreen) Title() string { return "Your Card" }
func (d *CardDetailScreen) Status() string { return "✦ " + d.tag.String() }

func (d *CardDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *CardDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *CardDetailScreen) View(width, height int) string {
	contentWidth := min(width-8, 60)

	var b strings.Builder
	if d.glyph != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(d.glyph))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth - 4).
		Foreground(theme.Text).
		Bold(true).
		Render(d.res.Text()))
	card := theme.Card.Width(contentWidth).Align(lipgloss.Center).Render(b.String())

	meta := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{card, ""}
	if d.deck != "" {
		lines = append(lines, meta.Render(fmt.Sprintf("%s · %s", d.deck, d.category)))
	}
	lines = append(lines, theme.Hint.Render("draw "+d.res.ID.String()[:8]))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
