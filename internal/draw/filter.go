package draw

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/abhisek/oracle/internal/choice"
	"github.com/abhisek/oracle/internal/store"
)

// Constraint is a single equality test on a message column.
type Constraint struct {
	Field store.Field
	Value int64
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s = %d", c.Field.Column(), c.Value)
}

func (c Constraint) match(m store.Message) bool {
	switch c.Field {
	case store.FieldDeck:
		return m.DeckID == c.Value
	case store.FieldCategory:
		return m.CategoryID == c.Value
	}
	return false
}

// Filter is a conjunction of zero or more constraints. The empty filter
// matches every message.
type Filter struct {
	constraints []Constraint
}

// NewFilter adds a deck constraint unless deck is choice.Any, then a
// category constraint unless category is choice.Any.
func NewFilter(deck, category choice.Choice) Filter {
	var f Filter
	if id, ok := deck.Value(); ok {
		f.constraints = append(f.constraints, Constraint{Field: store.FieldDeck, Value: id})
	}
	if id, ok := category.Value(); ok {
		f.constraints = append(f.constraints, Constraint{Field: store.FieldCategory, Value: id})
	}
	return f
}

// Constraints returns a copy of the filter's constraints.
func (f Filter) Constraints() []Constraint {
	out := make([]Constraint, len(f.constraints))
	copy(out, f.constraints)
	return out
}

// IsEmpty reports whether the filter has no constraints.
func (f Filter) IsEmpty() bool { return len(f.constraints) == 0 }

// Match evaluates the filter against one message.
func (f Filter) Match(m store.Message) bool {
	for _, c := range f.constraints {
		if !c.match(m) {
			return false
		}
	}
	return true
}

// Eval returns the positions of matching messages. The result may be
// shared with the store and must not be modified.
func (f Filter) Eval(st *store.Store) *roaring.Bitmap {
	switch len(f.constraints) {
	case 0:
		return st.AllMessages()
	case 1:
		c := f.constraints[0]
		return st.Postings(c.Field, c.Value)
	}
	postings := make([]*roaring.Bitmap, 0, len(f.constraints))
	for _, c := range f.constraints {
		postings = append(postings, st.Postings(c.Field, c.Value))
	}
	return roaring.FastAnd(postings...)
}

func (f Filter) String() string {
	if len(f.constraints) == 0 {
		return "TRUE"
	}
	parts := make([]string, 0, len(f.constraints))
	for _, c := range f.constraints {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " AND ")
}
