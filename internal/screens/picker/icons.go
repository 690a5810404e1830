package picker

// categoryIcon names the icon of the built-in categories by id.
var categoryIcon = map[int64]string{
	1:  "intuition",
	2:  "timing",
	3:  "energy",
	4:  "clarity",
	5:  "shadow",
	6:  "patterns",
	7:  "healing",
	8:  "connection",
	9:  "attraction",
	10: "momentum",
	11: "courage",
	12: "breakthrough",
}

var iconGlyph = map[string]string{
	"intuition":    "◉",
	"timing":       "⧗",
	"energy":       "ϟ",
	"clarity":      "◇",
	"shadow":       "◐",
	"patterns":     "⁂",
	"healing":      "✚",
	"connection":   "∞",
	"attraction":   "❦",
	"momentum":     "➶",
	"courage":      "♛",
	"breakthrough": "✺",
}

// Icon returns the glyph for a category id. ok is false for ids without
// an icon.
func Icon(categoryID int64) (glyph string, ok bool) {
	name, ok := categoryIcon[categoryID]
	if !ok {
		return "", false
	}
	return iconGlyph[name], true
}
