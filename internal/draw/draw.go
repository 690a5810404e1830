// Package draw picks a random message matching the current selection.
package draw

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/oracle/internal/choice"
	"github.com/abhisek/oracle/internal/store"
)

// NoMatchText is shown when the active filters exclude every message.
const NoMatchText = "No messages match this selection."

// Result is the outcome of a draw: either a matched message or NoMatch.
type Result struct {
	ID      uuid.UUID
	Message store.Message
	Filter  Filter
	matched bool
}

// Matched reports whether a message was drawn. A false value is the
// NoMatch outcome, which is not an error.
func (r Result) Matched() bool { return r.matched }

// Text is the drawn message, or NoMatchText.
func (r Result) Text() string {
	if !r.matched {
		return NoMatchText
	}
	return r.Message.Text
}

// Engine draws messages from a loaded store. It keeps no state between
// draws.
type Engine struct {
	st  *store.Store
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand makes the engine use r, typically a seeded source in tests.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// New returns an Engine over st.
func New(st *store.Store, opts ...Option) *Engine {
	e := &Engine{st: st}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Draw picks one message uniformly at random among those matching deck
// and category. Repeated draws are independent and may repeat.
func (e *Engine) Draw(deck, category choice.Choice) Result {
	f := NewFilter(deck, category)
	res := Result{Filter: f}

	matches := f.Eval(e.st)
	n := matches.GetCardinality()
	if n == 0 {
		return res
	}

	pos, err := matches.Select(uint32(e.intN(int(n))))
	if err != nil {
		return res
	}

	res.ID = uuid.New()
	res.Message = e.st.Message(pos)
	res.matched = true
	return res
}

// Count returns how many messages match deck and category.
func (e *Engine) Count(deck, category choice.Choice) int {
	return int(NewFilter(deck, category).Eval(e.st).GetCardinality())
}

func (e *Engine) intN(n int) int {
	if e.rng != nil {
		return e.rng.IntN(n)
	}
	return rand.IntN(n)
}
