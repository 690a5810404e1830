// Package selection holds the user's current deck and category choice and
// keeps the category valid as the deck changes.
package selection

import (
	"github.com/abhisek/oracle/internal/availability"
	"github.com/abhisek/oracle/internal/choice"
)

// Snapshot is a value copy of the current choices.
type Snapshot struct {
	Deck     choice.Choice
	Category choice.Choice
}

// State is the mutable selection. The category is always choice.Any or a
// member of the availability set of the current deck.
type State struct {
	resolver *availability.Resolver
	deck     choice.Choice
	category choice.Choice
	avail    availability.Set
}

// New returns a State with both choices set to choice.Any.
func New(r *availability.Resolver) *State {
	return &State{
		resolver: r,
		deck:     choice.Any,
		category: choice.Any,
		avail:    r.Resolve(choice.Any),
	}
}

// SetDeck changes the deck, recomputes availability, and resets the
// category to choice.Any if it is no longer available. reset reports
// whether that happened.
func (s *State) SetDeck(deck choice.Choice) (set availability.Set, reset bool) {
	s.deck = deck
	s.avail = s.resolver.Resolve(deck)
	if !s.avail.Contains(s.category) {
		s.category = choice.Any
		reset = true
	}
	return s.avail, reset
}

// SetCategory applies category only if it is available under the current
// deck. Illegal selections are ignored and reported as false.
func (s *State) SetCategory(category choice.Choice) bool {
	if !s.avail.Contains(category) {
		return false
	}
	s.category = category
	return true
}

func (s *State) Deck() choice.Choice     { return s.deck }
func (s *State) Category() choice.Choice { return s.category }

// Available returns the availability set of the current deck.
func (s *State) Available() availability.Set { return s.avail }

// Snapshot returns the current choices.
func (s *State) Snapshot() Snapshot {
	return Snapshot{Deck: s.deck, Category: s.category}
}
