package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oracle/internal/decktheme"
)

// Palette is the set of colors a deck theme paints with.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	BgCard    color.Color
	Border    color.Color
}

var palettes = map[decktheme.Tag]Palette{
	decktheme.Core: {
		Primary:   lipgloss.Color("#8B5CF6"), // Vivid Purple
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F59E0B"), // Amber
		BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
		Border:    lipgloss.Color("#334155"), // Slate
	},
	decktheme.Shadow: {
		Primary:   lipgloss.Color("#A78BFA"), // Lavender
		Secondary: lipgloss.Color("#64748B"), // Storm
		Accent:    lipgloss.Color("#E11D48"), // Crimson
		BgCard:    lipgloss.Color("#18122B"), // Night
		Border:    lipgloss.Color("#3B2F5C"), // Dusk
	},
	decktheme.Connection: {
		Primary:   lipgloss.Color("#F472B6"), // Rose Pink
		Secondary: lipgloss.Color("#FB923C"), // Peach
		Accent:    lipgloss.Color("#FDE68A"), // Warm Gold
		BgCard:    lipgloss.Color("#2A1B24"), // Plum
		Border:    lipgloss.Color("#4C2A3C"), // Wine
	},
	decktheme.Momentum: {
		Primary:   lipgloss.Color("#22C55E"), // Green
		Secondary: lipgloss.Color("#38BDF8"), // Sky
		Accent:    lipgloss.Color("#F97316"), // Orange
		BgCard:    lipgloss.Color("#0F2A1D"), // Forest
		Border:    lipgloss.Color("#1F4D36"), // Moss
	},
}

// Color palette. Primary, Secondary, Accent, BgCard and Border follow the
// active deck theme.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    color.Color
	Border    color.Color
)

// Styles, rebuilt by Apply.
var (
	Hint       lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Failure    lipgloss.Style
)

var current decktheme.Tag

func init() {
	Apply(decktheme.Default)
}

// For returns the palette of tag, falling back to the default theme.
func For(tag decktheme.Tag) Palette {
	if p, ok := palettes[tag]; ok {
		return p
	}
	return palettes[decktheme.Default]
}

// Current returns the tag applied last.
func Current() decktheme.Tag { return current }

// Apply switches the package colors and styles to the palette of tag.
func Apply(tag decktheme.Tag) {
	p := For(tag)
	if _, ok := palettes[tag]; !ok {
		tag = decktheme.Default
	}
	current = tag

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	BgCard = p.BgCard
	Border = p.Border

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 3)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
}
