// Package layout renders the frame around every screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oracle/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

const (
	brand       = "  ✦ Oracle"
	hintSep     = "   "
	hintOverrun = "…"
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal, drawn as a face-down card.
func RenderMinSizeMessage(width, height int) string {
	text := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("The cards need more room.")
	need := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Resize to at least %d x %d (now %d x %d)", MinWidth, MinHeight, width, height))

	back := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render("✦ ✧ ✦\n✧ ✦ ✧\n✦ ✧ ✦")

	body := lipgloss.JoinVertical(lipgloss.Center, back, "", text, need)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// Frame is the chrome drawn around the active screen: a header bar with the
// screen title and status, and a footer bar of key hints.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
	Width  int
	Height int
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// innerWidth is the usable width inside a bar's border and indent.
func (f Frame) innerWidth() int {
	return max(f.Width-4, 0)
}

// Header renders the top bar. The title is dropped on compact widths when
// it would collide with the brand or the status.
func (f Frame) Header() string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(f.Status)

	inner := f.innerWidth()
	leftLen, centerLen, rightLen := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	if leftLen+centerLen+rightLen+2 > inner {
		center, centerLen = "", 0
	}

	leftGap := max((inner-centerLen)/2-leftLen, 1)
	rightGap := max(inner-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return bar(f.Width).Render(content)
}

// Footer renders the bottom bar. Hints that do not fit are cut from the
// end and replaced by an ellipsis.
func (f Frame) Footer() string {
	inner := f.innerWidth()
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var parts []string
	used := 0
	for i, h := range f.Hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		w := lipgloss.Width(part)
		if i > 0 {
			w += len(hintSep)
		}
		if used+w > inner {
			parts = append(parts, descStyle.Render(hintOverrun))
			break
		}
		parts = append(parts, part)
		used += w
	}

	return bar(f.Width).Render("  " + strings.Join(parts, hintSep))
}

// ContentHeight is the height left for the screen between the bars.
func (f Frame) ContentHeight() int {
	h := f.Height - lipgloss.Height(f.Header()) - lipgloss.Height(f.Footer())
	return max(h, 0)
}

// Render composes header, content and footer into a full-height frame.
func (f Frame) Render(content string) string {
	header, footer := f.Header(), f.Footer()
	contentHeight := max(f.Height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := lipgloss.NewStyle().
		Width(f.Width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
