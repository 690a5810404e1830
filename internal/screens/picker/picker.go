// Package picker is the main screen: deck and category menus and the
// drawn card.
package picker

import (
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/abhisek/oracle/internal/choice"
	"github.com/abhisek/oracle/internal/decktheme"
	"github.com/abhisek/oracle/internal/draw"
	"github.com/abhisek/oracle/internal/logging"
	"github.com/abhisek/oracle/internal/oracle"
	"github.com/abhisek/oracle/internal/router"
	"github.com/abhisek/oracle/internal/screen"
	"github.com/abhisek/oracle/internal/store"
	"github.com/abhisek/oracle/internal/ui/components"
	"github.com/abhisek/oracle/internal/ui/layout"
	"github.com/abhisek/oracle/internal/ui/theme"
)

const (
	anyDeckLabel     = "Any Deck"
	anyCategoryLabel = "Any Category"

	revealInterval = 80 * time.Millisecond
)

type focusArea int

const (
	focusDecks focusArea = iota
	focusCategories
)

// PickerScreen lets the user choose a deck and category and draw a card.
// It receives session notifications as an oracle.Listener.
type PickerScreen struct {
	sess *oracle.Session
	log  *log.Logger

	decks       components.Menu
	categories  components.Menu
	deckIDs     []choice.Choice
	categoryIDs []choice.Choice
	focus       focusArea

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	tag     decktheme.Tag

	result     *draw.Result
	revealStep int
}

var (
	_ screen.Screen          = (*PickerScreen)(nil)
	_ screen.KeyHintProvider = (*PickerScreen)(nil)
	_ screen.StatusProvider  = (*PickerScreen)(nil)
	_ oracle.Listener        = (*PickerScreen)(nil)
)

// New creates a picker bound to sess and registers it as the session
// listener. If sess is already ready the menus are filled immediately.
func New(sess *oracle.Session) *PickerScreen {
	p := &PickerScreen{
		sess: sess,
		log:  logging.WithPrefix("picker"),
		keys: defaultKeyMap(),
		help: help.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
		tag: decktheme.Default,
	}
	p.decks = components.NewMenu("Deck", nil)
	p.categories = components.NewMenu("Category", nil)
	p.setFocus(focusDecks)

	sess.SetListener(p)
	p.replay()
	return p
}

// replay fills the menus from a session that loaded before the picker
// existed.
func (p *PickerScreen) replay() {
	decks, err := p.sess.Decks()
	if err != nil {
		return
	}
	cats, _ := p.sess.Categories()
	vis, _ := p.sess.Visibility()
	tag, _ := p.sess.Theme()

	p.DecksAvailable(decks)
	p.CategoriesAvailable(cats)
	p.CategoryVisibility(vis)
	p.ThemeChanged(tag)
	p.syncSelection()
}

func (p *PickerScreen) Title() string {
	return "Draw a Card"
}

// Status shows the active deck theme in the header.
func (p *PickerScreen) Status() string {
	return "✦ " + p.tag.String()
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	bindings := []key.Binding{p.keys.Quit}
	if p.sess.Phase() == oracle.PhaseReady {
		bindings = p.keys.ShortHelp()
	}
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

func (p *PickerScreen) Init() tea.Cmd {
	if p.sess.Phase() == oracle.PhasePending {
		return p.spinner.Tick
	}
	return nil
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if p.sess.Phase() != oracle.PhasePending {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case deckSelectedMsg:
		if err := p.sess.DeckChanged(msg.Deck); err != nil {
			p.log.Warn("deck change ignored", "err", err)
		}
		p.syncSelection()
		return p, nil

	case categorySelectedMsg:
		ok, err := p.sess.CategoryChanged(msg.Category)
		if err != nil || !ok {
			p.syncSelection()
		}
		return p, nil

	case revealTickMsg:
		if p.result == nil || p.result.ID != msg.id || p.revealStep >= revealSteps() {
			return p, nil
		}
		p.revealStep++
		if p.revealStep < revealSteps() {
			return p, revealTick(msg.id)
		}
		return p, nil

	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *PickerScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	// Controls are inert until the dataset is ready.
	if p.sess.Phase() != oracle.PhaseReady {
		return p, nil
	}

	switch {
	case key.Matches(msg, p.keys.Switch):
		if p.focus == focusDecks {
			p.setFocus(focusCategories)
		} else {
			p.setFocus(focusDecks)
		}
		return p, nil
	case key.Matches(msg, p.keys.Draw):
		return p, p.draw()
	case key.Matches(msg, p.keys.Open):
		return p, p.openCard()
	case key.Matches(msg, p.keys.Help):
		p.help.ShowAll = !p.help.ShowAll
		return p, nil
	}

	var cmd tea.Cmd
	if p.focus == focusDecks {
		p.decks, cmd = p.decks.Update(msg)
	} else {
		p.categories, cmd = p.categories.Update(msg)
	}
	return p, cmd
}

func (p *PickerScreen) setFocus(f focusArea) {
	p.focus = f
	p.decks.Focused = f == focusDecks
	p.categories.Focused = f == focusCategories
}

func (p *PickerScreen) draw() tea.Cmd {
	res, err := p.sess.DrawRequested()
	if err != nil {
		p.log.Warn("draw ignored", "err", err)
		return nil
	}
	return revealTick(res.ID)
}

// openCard pushes the detail screen for the last matched draw.
func (p *PickerScreen) openCard() tea.Cmd {
	if p.result == nil || !p.result.Matched() {
		return nil
	}
	detail := p.newCardDetail(*p.result)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func revealTick(id uuid.UUID) tea.Cmd {
	return tea.Tick(revealInterval, func(time.Time) tea.Msg {
		return revealTickMsg{id: id}
	})
}

// syncSelection moves the chosen markers to the session's selection.
func (p *PickerScreen) syncSelection() {
	sel, err := p.sess.Selection()
	if err != nil {
		return
	}
	for i, c := range p.deckIDs {
		if c == sel.Deck {
			p.decks.Choose(i)
		}
	}
	for i, c := range p.categoryIDs {
		if c == sel.Category {
			p.categories.Choose(i)
		}
	}
}

func selectDeck(c choice.Choice) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return deckSelectedMsg{Deck: c} }
	}
}

func selectCategory(c choice.Choice) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return categorySelectedMsg{Category: c} }
	}
}

// DecksAvailable rebuilds the deck menu with the neutral entry first.
func (p *PickerScreen) DecksAvailable(decks []store.Deck) {
	p.deckIDs = []choice.Choice{choice.Any}
	items := []components.MenuItem{{Label: anyDeckLabel, Action: selectDeck(choice.Any)}}
	for _, d := range decks {
		c := choice.ID(d.ID)
		p.deckIDs = append(p.deckIDs, c)
		items = append(items, components.MenuItem{Label: d.Name, Action: selectDeck(c)})
	}
	p.decks = components.NewMenu("Deck", items)
	p.decks.Choose(0)
	p.setFocus(p.focus)
}

// CategoriesAvailable rebuilds the category menu with the neutral entry
// first.
func (p *PickerScreen) CategoriesAvailable(categories []store.Category) {
	p.categoryIDs = []choice.Choice{choice.Any}
	items := []components.MenuItem{{Label: anyCategoryLabel, Action: selectCategory(choice.Any)}}
	for _, c := range categories {
		label := c.Name
		if glyph, ok := Icon(c.ID); ok {
			label = glyph + " " + label
		}
		ch := choice.ID(c.ID)
		p.categoryIDs = append(p.categoryIDs, ch)
		items = append(items, components.MenuItem{Label: label, Action: selectCategory(ch)})
	}
	p.categories = components.NewMenu("Category", items)
	p.categories.Choose(0)
	p.setFocus(p.focus)
}

// CategoryVisibility hides the categories the current deck cannot reach.
func (p *PickerScreen) CategoryVisibility(visible map[int64]bool) {
	p.categories.SetHidden(func(i int) bool {
		id, ok := p.categoryIDs[i].Value()
		return ok && !visible[id]
	})
}

// ThemeChanged repaints the UI with the palette of tag.
func (p *PickerScreen) ThemeChanged(tag decktheme.Tag) {
	p.tag = tag
	theme.Apply(tag)
}

// DrawResult shows res and restarts the reveal.
func (p *PickerScreen) DrawResult(res draw.Result) {
	p.result = &res
	p.revealStep = 0
}
