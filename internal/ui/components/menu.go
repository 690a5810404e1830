package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/oracle/internal/ui/theme"
)

// MenuItem represents a single item in a selection menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd

	// Hidden items are skipped by navigation and not rendered.
	Hidden bool
}

func (it MenuItem) selectable() bool { return !it.Hidden }

// Menu is a vertical selection menu. Chosen marks the item last activated
// with enter, Selected is the cursor.
type Menu struct {
	Title    string
	Items    []MenuItem
	Selected int
	Chosen   int
	Focused  bool
}

// NewMenu creates a new menu with the cursor on the first selectable item.
func NewMenu(title string, items []MenuItem) Menu {
	m := Menu{
		Title:   title,
		Items:   items,
		Chosen:  -1,
		Focused: true,
	}
	m.Selected = m.first()
	return m
}

func (m Menu) first() int {
	for i, item := range m.Items {
		if item.selectable() {
			return i
		}
	}
	return 0
}

// Update handles keyboard navigation. Unfocused menus ignore keys.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.Focused {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if m.Items[i].selectable() {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if m.Items[i].selectable() {
				m.Selected = i
				break
			}
		}
	case "home", "g":
		m.Selected = m.first()
	case "enter":
		return m.activate()
	}

	return m, nil
}

func (m Menu) activate() (Menu, tea.Cmd) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return m, nil
	}
	item := m.Items[m.Selected]
	if !item.selectable() {
		return m, nil
	}
	m.Chosen = m.Selected
	if item.Action != nil {
		return m, item.Action()
	}
	return m, nil
}

// SetHidden updates the Hidden flag of every item using hide. If the
// cursor or the chosen item becomes hidden they move to the first
// selectable item.
func (m *Menu) SetHidden(hide func(i int) bool) {
	for i := range m.Items {
		m.Items[i].Hidden = hide(i)
	}
	if m.Selected >= len(m.Items) || !m.Items[m.Selected].selectable() {
		m.Selected = m.first()
	}
	if m.Chosen >= 0 && m.Chosen < len(m.Items) && !m.Items[m.Chosen].selectable() {
		m.Chosen = m.first()
	}
}

// Choose marks item i as chosen and moves the cursor to it without
// running its action.
func (m *Menu) Choose(i int) {
	if i < 0 || i >= len(m.Items) {
		return
	}
	m.Chosen = i
	m.Selected = i
}

// Visible returns the number of items that are not hidden.
func (m Menu) Visible() int {
	n := 0
	for _, item := range m.Items {
		if !item.Hidden {
			n++
		}
	}
	return n
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	if m.Title != "" {
		title := lipgloss.NewStyle().Foreground(theme.TextDim)
		if m.Focused {
			title = title.Foreground(theme.Accent).Bold(true)
		}
		b.WriteString(title.Render(m.Title) + "\n\n")
	}

	for i, item := range m.Items {
		if item.Hidden {
			continue
		}

		marker := "  "
		if i == m.Chosen {
			marker = "● "
		}

		switch {
		case i == m.Selected && m.Focused:
			b.WriteString(theme.Selected.Render("▸ "+marker+item.Label) + "\n")
		default:
			b.WriteString(theme.Unselected.Render("  "+marker+item.Label) + "\n")
		}
	}
	return b.String()
}
