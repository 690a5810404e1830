// Package decktheme classifies a deck into a presentation theme by sniffing
// its name for known keywords.
package decktheme

import (
	"strings"

	"github.com/abhisek/oracle/internal/choice"
	"github.com/abhisek/oracle/internal/store"
)

// Tag is a presentation theme.
type Tag string

const (
	Core       Tag = "core"
	Shadow     Tag = "shadow"
	Connection Tag = "connection"
	Momentum   Tag = "momentum"
)

// Default is used for choice.Any, unknown decks and names without a keyword.
const Default = Core

// priority is the keyword match order; the first keyword found wins, so a
// deck named "Shadow Momentum" is a shadow deck.
var priority = []Tag{Shadow, Connection, Momentum}

// Tags lists every tag, default first.
func Tags() []Tag {
	return []Tag{Core, Shadow, Connection, Momentum}
}

func (t Tag) String() string { return string(t) }

// Classify returns the tag for a deck name.
func Classify(name string) Tag {
	n := strings.ToLower(name)
	for _, t := range priority {
		if strings.Contains(n, string(t)) {
			return t
		}
	}
	return Default
}

// Resolver maps deck choices to tags using the deck names of a store.
type Resolver struct {
	st *store.Store
}

// NewResolver returns a Resolver over st.
func NewResolver(st *store.Store) *Resolver {
	return &Resolver{st: st}
}

// For returns the theme of deck.
func (r *Resolver) For(deck choice.Choice) Tag {
	id, ok := deck.Value()
	if !ok {
		return Default
	}
	d, ok := r.st.Deck(id)
	if !ok {
		return Default
	}
	return Classify(d.Name)
}
