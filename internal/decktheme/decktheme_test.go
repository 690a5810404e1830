package decktheme

import (
	"testing"

	"github.com/abhisek/oracle/internal/choice"
	"github.com/abhisek/oracle/internal/store"
	"github.com/abhisek/oracle/internal/store/storetest"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Tag
	}{
		{"Shadow Archetypes", Shadow},
		{"Momentum Builders", Momentum},
		{"Connection Circle", Connection},
		{"Core", Core},
		{"Quiet Hours", Core},
		{"", Core},
		{"MOMENTUM", Momentum},
		{"Deep shadows", Shadow},
		{"Shadow Momentum", Shadow},            // shadow outranks momentum
		{"Momentum of Connection", Connection}, // connection outranks momentum
		{"Disconnection", Connection},          // substring match
	}

	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolverFor(t *testing.T) {
	r := NewResolver(storetest.Load(t, storetest.Sample()))

	tests := []struct {
		deck choice.Choice
		want Tag
	}{
		{choice.Any, Core},
		{choice.ID(404), Core},
		{choice.ID(1), Core},
		{choice.ID(2), Shadow},
		{choice.ID(3), Connection},
		{choice.ID(4), Momentum},
		{choice.ID(5), Core},
	}

	for _, tt := range tests {
		if got := r.For(tt.deck); got != tt.want {
			t.Errorf("For(%v) = %q, want %q", tt.deck, got, tt.want)
		}
	}
}

func TestResolverUsesNamesNotIDs(t *testing.T) {
	// Ids 1-4 carried fixed themes in the browser version; the resolver
	// must go by name instead.
	f := storetest.Fixture{
		Decks: []store.Deck{{ID: 1, Name: "Momentum Builders"}, {ID: 2, Name: "Plain"}},
	}
	r := NewResolver(storetest.Load(t, f))

	if got := r.For(choice.ID(1)); got != Momentum {
		t.Errorf("For(1) = %q, want momentum", got)
	}
	if got := r.For(choice.ID(2)); got != Core {
		t.Errorf("For(2) = %q, want core", got)
	}
}
