package store

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
)

// Deck is a named grouping of messages.
type Deck struct {
	ID   int64
	Name string
}

// Category is a named sub-grouping of messages.
type Category struct {
	ID   int64
	Name string
}

// Message is a single oracle message. It belongs to exactly one deck and
// one category.
type Message struct {
	Text       string
	DeckID     int64
	CategoryID int64
}

// Store holds a loaded snapshot in memory. It is immutable after Load and
// all methods are read-only.
type Store struct {
	decks      []Deck     // ordered by id
	categories []Category // ordered by id
	messages   []Message  // snapshot row order

	deckPos     map[int64]int
	categoryPos map[int64]int

	idx *index
}

// Open reads the snapshot file at path and loads it.
func Open(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Stage: StageFetch, Source: path, Err: err}
	}
	s, err := Load(b)
	if err != nil {
		return nil, withSource(err, path)
	}
	return s, nil
}

// Decks yields every deck ordered by id. The sequence can be ranged over
// any number of times.
func (s *Store) Decks() iter.Seq[Deck] {
	return func(yield func(Deck) bool) {
		for _, d := range s.decks {
			if !yield(d) {
				return
			}
		}
	}
}

// Categories yields every category ordered by id.
func (s *Store) Categories() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, c := range s.categories {
			if !yield(c) {
				return
			}
		}
	}
}

// CategoriesForDeck yields the distinct ids of categories referenced by at
// least one message of deckID, ordered by id. Unknown decks yield nothing.
func (s *Store) CategoriesForDeck(deckID int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		bm, ok := s.idx.deckCategories[deckID]
		if !ok {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(s.categories[it.Next()].ID) {
				return
			}
		}
	}
}

// Deck looks up a deck by id.
func (s *Store) Deck(id int64) (Deck, bool) {
	i, ok := s.deckPos[id]
	if !ok {
		return Deck{}, false
	}
	return s.decks[i], true
}

// Category looks up a category by id.
func (s *Store) Category(id int64) (Category, bool) {
	i, ok := s.categoryPos[id]
	if !ok {
		return Category{}, false
	}
	return s.categories[i], true
}

// CategoryOrdinal returns the position of category id in id order.
func (s *Store) CategoryOrdinal(id int64) (uint32, bool) {
	i, ok := s.categoryPos[id]
	return uint32(i), ok
}

// CategoryAt returns the category at ordinal position i.
func (s *Store) CategoryAt(i uint32) Category {
	return s.categories[i]
}

// Message returns the message at position pos.
func (s *Store) Message(pos uint32) Message {
	return s.messages[pos]
}

func (s *Store) DeckCount() int     { return len(s.decks) }
func (s *Store) CategoryCount() int { return len(s.categories) }
func (s *Store) MessageCount() int  { return len(s.messages) }

// DefaultDBPath resolves the snapshot location in priority order:
// 1. ORACLE_DB environment variable (path or URL)
// 2. $XDG_DATA_HOME/oracle/oracle.db
// 3. ~/.local/share/oracle/oracle.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ORACLE_DB"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "oracle", "oracle.db"), nil
}
