// Package oracle coordinates a loaded dataset with the user's selection.
// It consumes load, selection and draw events and reports the derived
// state to a Listener.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/abhisek/oracle/internal/availability"
	"github.com/abhisek/oracle/internal/choice"
	"github.com/abhisek/oracle/internal/decktheme"
	"github.com/abhisek/oracle/internal/draw"
	"github.com/abhisek/oracle/internal/logging"
	"github.com/abhisek/oracle/internal/selection"
	"github.com/abhisek/oracle/internal/store"
)

var (
	// ErrNotReady is returned by every query before a dataset is loaded.
	ErrNotReady = errors.New("oracle: dataset not loaded")

	// ErrAlreadyLoaded is returned when a second dataset is offered.
	ErrAlreadyLoaded = errors.New("oracle: dataset already loaded")
)

// Phase is the lifecycle state of a Session.
type Phase int

const (
	PhasePending Phase = iota // Waiting for the dataset
	PhaseReady                // Dataset loaded, events accepted
	PhaseFailed               // Dataset could not be loaded
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Listener receives the outputs of a Session. Calls are made synchronously
// from the goroutine that raised the event.
type Listener interface {
	DecksAvailable(decks []store.Deck)
	CategoriesAvailable(categories []store.Category)
	CategoryVisibility(visible map[int64]bool)
	ThemeChanged(tag decktheme.Tag)
	DrawResult(res draw.Result)
}

// Session owns the dataset and every component derived from it.
type Session struct {
	listener Listener
	drawOpts []draw.Option
	log      *log.Logger

	phase Phase
	err   error

	st     *store.Store
	sel    *selection.State
	engine *draw.Engine
	themes *decktheme.Resolver
	theme  decktheme.Tag
}

// Option configures a Session.
type Option func(*Session)

// WithListener sets the receiver of session notifications.
func WithListener(l Listener) Option {
	return func(s *Session) { s.listener = l }
}

// WithDrawOptions passes opts to the draw engine once the dataset loads.
func WithDrawOptions(opts ...draw.Option) Option {
	return func(s *Session) { s.drawOpts = append(s.drawOpts, opts...) }
}

// New returns a pending Session.
func New(opts ...Option) *Session {
	s := &Session{
		phase: PhasePending,
		theme: decktheme.Default,
	}
	for _, o := range opts {
		o(s)
	}
	s.log = logging.WithPrefix("oracle")
	return s
}

// SetListener replaces the receiver of session notifications. l may be
// nil.
func (s *Session) SetListener(l Listener) { s.listener = l }

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Err returns the load failure of a failed session, or nil.
func (s *Session) Err() error { return s.err }

// Load fetches the snapshot at source and loads it.
func (s *Session) Load(ctx context.Context, source string, opts store.FetchOptions) error {
	if s.phase != PhasePending {
		return ErrAlreadyLoaded
	}
	s.log.Info("fetching dataset", "source", source)
	b, err := store.Fetch(ctx, source, opts)
	if err != nil {
		_ = s.DatasetFailed(err)
		return s.err
	}
	return s.DatasetLoaded(b)
}

// DatasetLoaded parses snapshot bytes and moves the session to ready.
func (s *Session) DatasetLoaded(b []byte) error {
	if s.phase != PhasePending {
		return ErrAlreadyLoaded
	}
	st, err := store.Load(b)
	if err != nil {
		_ = s.DatasetFailed(err)
		return s.err
	}
	return s.Attach(st)
}

// DatasetFailed records a load failure. The session serves nothing
// afterwards.
func (s *Session) DatasetFailed(err error) error {
	if s.phase != PhasePending {
		return ErrAlreadyLoaded
	}
	var le *store.LoadError
	if !errors.As(err, &le) {
		err = &store.LoadError{Stage: store.StageFetch, Err: err}
	}
	s.phase = PhaseFailed
	s.err = err
	s.log.Error("dataset load failed", "err", err)
	return nil
}

// Attach adopts an already loaded store.
func (s *Session) Attach(st *store.Store) error {
	if s.phase != PhasePending {
		return ErrAlreadyLoaded
	}

	s.st = st
	s.sel = selection.New(availability.NewResolver(st))
	s.engine = draw.New(st, s.drawOpts...)
	s.themes = decktheme.NewResolver(st)
	s.theme = s.themes.For(choice.Any)
	s.phase = PhaseReady

	s.log.Info("dataset loaded",
		"decks", st.DeckCount(),
		"categories", st.CategoryCount(),
		"messages", st.MessageCount(),
	)

	if s.listener != nil {
		s.listener.DecksAvailable(slices.Collect(st.Decks()))
		s.listener.CategoriesAvailable(slices.Collect(st.Categories()))
		s.listener.CategoryVisibility(s.sel.Available().Visibility())
		s.listener.ThemeChanged(s.theme)
	}
	return nil
}

func (s *Session) check() error {
	switch s.phase {
	case PhaseReady:
		return nil
	case PhaseFailed:
		return fmt.Errorf("oracle: dataset unavailable: %w", s.err)
	default:
		return ErrNotReady
	}
}

// DeckChanged selects deck, refreshes category visibility and the theme.
// A category that is no longer available falls back to choice.Any.
func (s *Session) DeckChanged(deck choice.Choice) error {
	if err := s.check(); err != nil {
		return err
	}

	prev := s.sel.Category()
	avail, reset := s.sel.SetDeck(deck)
	s.theme = s.themes.For(deck)

	s.log.Debug("deck changed", "deck", deck, "categories", avail.Len(), "theme", s.theme)
	if reset {
		s.log.Debug("category reset", "from", prev)
	}

	if s.listener != nil {
		s.listener.CategoryVisibility(avail.Visibility())
		s.listener.ThemeChanged(s.theme)
	}
	return nil
}

// CategoryChanged selects category if it is available under the current
// deck. The returned bool is false when the selection was rejected.
func (s *Session) CategoryChanged(category choice.Choice) (bool, error) {
	if err := s.check(); err != nil {
		return false, err
	}
	if !s.sel.SetCategory(category) {
		s.log.Debug("category rejected", "category", category, "deck", s.sel.Deck())
		return false, nil
	}
	s.log.Debug("category changed", "category", category)
	return true, nil
}

// DrawRequested draws a message for the current selection.
func (s *Session) DrawRequested() (draw.Result, error) {
	if err := s.check(); err != nil {
		return draw.Result{}, err
	}

	res := s.engine.Draw(s.sel.Deck(), s.sel.Category())
	s.log.Debug("draw", "filter", res.Filter, "matched", res.Matched(), "id", res.ID)

	if s.listener != nil {
		s.listener.DrawResult(res)
	}
	return res, nil
}

// Selection returns the current deck and category choice.
func (s *Session) Selection() (selection.Snapshot, error) {
	if err := s.check(); err != nil {
		return selection.Snapshot{}, err
	}
	return s.sel.Snapshot(), nil
}

// Decks returns every deck in id order.
func (s *Session) Decks() ([]store.Deck, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return slices.Collect(s.st.Decks()), nil
}

// Categories returns every category in id order.
func (s *Session) Categories() ([]store.Category, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return slices.Collect(s.st.Categories()), nil
}

// Visibility maps each category id to whether it is selectable under the
// current deck.
func (s *Session) Visibility() (map[int64]bool, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.sel.Available().Visibility(), nil
}

// Theme returns the theme of the current deck.
func (s *Session) Theme() (decktheme.Tag, error) {
	if err := s.check(); err != nil {
		return decktheme.Default, err
	}
	return s.theme, nil
}

// Count returns how many messages match the current selection.
func (s *Session) Count() (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	return s.engine.Count(s.sel.Deck(), s.sel.Category()), nil
}

// Store returns the loaded dataset.
func (s *Session) Store() (*store.Store, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.st, nil
}
