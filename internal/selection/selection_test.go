package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/oracle/internal/availability"
	"github.com/abhisek/oracle/internal/choice"
	"github.com/abhisek/oracle/internal/store"
	"github.com/abhisek/oracle/internal/store/storetest"
)

func newState(t *testing.T, f storetest.Fixture) (*State, *store.Store) {
	t.Helper()
	st := storetest.Load(t, f)
	return New(availability.NewResolver(st)), st
}

func TestInitialState(t *testing.T) {
	s, _ := newState(t, storetest.Sample())
	assert.True(t, s.Deck().IsAny())
	assert.True(t, s.Category().IsAny())
	assert.Equal(t, 6, s.Available().Len())
}

func TestScenarioResetOnDeckChange(t *testing.T) {
	s, _ := newState(t, storetest.Scenario())

	s.SetDeck(choice.ID(1))
	require.True(t, s.SetCategory(choice.ID(1)))
	assert.Equal(t, choice.ID(1), s.Category())

	_, reset := s.SetDeck(choice.ID(2))
	assert.True(t, reset)
	assert.Equal(t, choice.Any, s.Category())
	assert.Equal(t, choice.ID(2), s.Deck())
}

func TestCategoryKeptWhenStillAvailable(t *testing.T) {
	s, _ := newState(t, storetest.Sample())

	require.True(t, s.SetCategory(choice.ID(6))) // courage: decks 2 and 4
	_, reset := s.SetDeck(choice.ID(2))
	assert.False(t, reset)
	assert.Equal(t, choice.ID(6), s.Category())

	_, reset = s.SetDeck(choice.ID(4))
	assert.False(t, reset)
	assert.Equal(t, choice.ID(6), s.Category())

	_, reset = s.SetDeck(choice.ID(1))
	assert.True(t, reset)
	assert.True(t, s.Category().IsAny())
}

func TestAnyCategoryNeverReset(t *testing.T) {
	s, _ := newState(t, storetest.Sample())
	_, reset := s.SetDeck(choice.ID(5))
	assert.False(t, reset)
	assert.True(t, s.Category().IsAny())
}

func TestRejectUnavailableCategory(t *testing.T) {
	s, st := newState(t, storetest.Sample())

	// For every deck and every category outside its availability set,
	// selecting the category must leave the state unchanged.
	for d := range st.Decks() {
		s.SetDeck(choice.ID(d.ID))
		require.True(t, s.SetCategory(choice.Any))
		for c := range st.Categories() {
			if s.Available().Contains(choice.ID(c.ID)) {
				continue
			}
			before := s.Snapshot()
			assert.False(t, s.SetCategory(choice.ID(c.ID)), "deck %d category %d", d.ID, c.ID)
			assert.Equal(t, before, s.Snapshot())
		}
	}
}

func TestRejectUnknownCategory(t *testing.T) {
	s, _ := newState(t, storetest.Sample())
	assert.False(t, s.SetCategory(choice.ID(999)))
	assert.True(t, s.Category().IsAny())
}

func TestCategoryAlwaysValidAfterDeckChange(t *testing.T) {
	s, st := newState(t, storetest.Sample())
	r := availability.NewResolver(st)

	decks := []choice.Choice{choice.Any, choice.ID(404)}
	for d := range st.Decks() {
		decks = append(decks, choice.ID(d.ID))
	}

	for _, from := range decks {
		for c := range st.Categories() {
			for _, to := range decks {
				s.SetDeck(from)
				s.SetCategory(choice.ID(c.ID))
				s.SetDeck(to)
				got := s.Category()
				assert.True(t, got.IsAny() || r.Resolve(to).Contains(got),
					"from %v category %d to %v left stale category %v", from, c.ID, to, got)
			}
		}
	}
}
