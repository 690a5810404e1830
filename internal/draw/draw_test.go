package draw

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/oracle/internal/choice"
	"github.com/abhisek/oracle/internal/store"
	"github.com/abhisek/oracle/internal/store/storetest"
)

func seeded() Option {
	return WithRand(rand.New(rand.NewPCG(1, 2)))
}

func TestNewFilter(t *testing.T) {
	tests := []struct {
		name     string
		deck     choice.Choice
		category choice.Choice
		want     string
		n        int
	}{
		{"no filters", choice.Any, choice.Any, "TRUE", 0},
		{"deck only", choice.ID(2), choice.Any, "deck_id = 2", 1},
		{"category only", choice.Any, choice.ID(5), "category_id = 5", 1},
		{"both", choice.ID(2), choice.ID(5), "deck_id = 2 AND category_id = 5", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.deck, tt.category)
			assert.Equal(t, tt.want, f.String())
			assert.Len(t, f.Constraints(), tt.n)
			assert.Equal(t, tt.n == 0, f.IsEmpty())
		})
	}
}

func TestConstraintsReturnsCopy(t *testing.T) {
	f := NewFilter(choice.ID(1), choice.ID(2))
	cs := f.Constraints()
	cs[0].Value = 99
	assert.Equal(t, "deck_id = 1 AND category_id = 2", f.String())
}

func TestDrawAnyAnyAlwaysMatches(t *testing.T) {
	e := New(storetest.Load(t, storetest.Sample()), seeded())
	for i := 0; i < 200; i++ {
		res := e.Draw(choice.Any, choice.Any)
		require.True(t, res.Matched())
		assert.NotEmpty(t, res.Text())
		assert.NotEqual(t, uuid.Nil, res.ID)
	}
}

func TestDrawRespectsFilters(t *testing.T) {
	e := New(storetest.Load(t, storetest.Sample()), seeded())
	for i := 0; i < 100; i++ {
		res := e.Draw(choice.ID(2), choice.ID(5))
		require.True(t, res.Matched())
		assert.Equal(t, int64(2), res.Message.DeckID)
		assert.Equal(t, int64(5), res.Message.CategoryID)
	}
}

// NoMatch must be returned exactly when no message satisfies the active
// constraints, for every combination including unknown ids.
func TestNoMatchIffNoRowSatisfies(t *testing.T) {
	f := storetest.Sample()
	st := storetest.Load(t, f)
	e := New(st, seeded())

	decks := []choice.Choice{choice.Any, choice.ID(404)}
	for _, d := range f.Decks {
		decks = append(decks, choice.ID(d.ID))
	}
	categories := []choice.Choice{choice.Any, choice.ID(404)}
	for _, c := range f.Categories {
		categories = append(categories, choice.ID(c.ID))
	}

	for _, d := range decks {
		for _, c := range categories {
			filter := NewFilter(d, c)
			want := 0
			for _, m := range f.Messages {
				if filter.Match(m) {
					want++
				}
			}

			res := e.Draw(d, c)
			assert.Equal(t, want > 0, res.Matched(), "deck %v category %v", d, c)
			assert.Equal(t, want, e.Count(d, c), "deck %v category %v", d, c)
			if res.Matched() {
				assert.True(t, filter.Match(res.Message))
			} else {
				assert.Equal(t, NoMatchText, res.Text())
			}
		}
	}
}

func TestDrawEmptyDataset(t *testing.T) {
	e := New(storetest.Load(t, storetest.Fixture{}))
	res := e.Draw(choice.Any, choice.Any)
	assert.False(t, res.Matched())
	assert.Equal(t, "No messages match this selection.", res.Text())
	assert.Equal(t, uuid.Nil, res.ID)
}

func TestDrawScenario(t *testing.T) {
	e := New(storetest.Load(t, storetest.Scenario()))
	assert.Equal(t, "t1", e.Draw(choice.ID(1), choice.ID(1)).Text())
	assert.False(t, e.Draw(choice.ID(2), choice.Any).Matched())
	assert.False(t, e.Draw(choice.Any, choice.ID(2)).Matched())
}

func TestDrawIsUniform(t *testing.T) {
	e := New(storetest.Load(t, storetest.Sample()), seeded())

	const draws = 3000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		counts[e.Draw(choice.ID(2), choice.Any).Text()]++
	}

	require.Len(t, counts, 3)
	for text, n := range counts {
		assert.InDelta(t, draws/3, n, draws/10, "message %q drawn %d times", text, n)
	}
}

func TestDrawsAreIndependent(t *testing.T) {
	e := New(storetest.Load(t, storetest.Sample()), seeded())

	ids := make(map[uuid.UUID]bool)
	for i := 0; i < 50; i++ {
		res := e.Draw(choice.ID(3), choice.Any)
		require.True(t, res.Matched())
		assert.Equal(t, "Reach out first.", res.Text(), "a single candidate repeats")
		assert.False(t, ids[res.ID], "draw ids must be unique")
		ids[res.ID] = true
	}
}

func TestFilterEvalDoesNotMutateStore(t *testing.T) {
	st := storetest.Load(t, storetest.Sample())
	before := st.Postings(store.FieldDeck, 2).GetCardinality()

	_ = NewFilter(choice.ID(2), choice.ID(5)).Eval(st)
	e := New(st, seeded())
	for i := 0; i < 10; i++ {
		e.Draw(choice.ID(2), choice.ID(6))
	}

	assert.Equal(t, before, st.Postings(store.FieldDeck, 2).GetCardinality())
	assert.Equal(t, uint64(9), st.AllMessages().GetCardinality())
}
