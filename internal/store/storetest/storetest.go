// Package storetest builds real SQLite snapshots for tests.
package storetest

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/oracle/internal/store"

	_ "modernc.org/sqlite"
)

// DefaultSchema is the relational layout the oracle dataset ships with.
const DefaultSchema = `
CREATE TABLE decks (id INTEGER PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE categories (id INTEGER PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	deck_id INTEGER NOT NULL REFERENCES decks(id),
	category_id INTEGER NOT NULL REFERENCES categories(id)
);`

// Fixture describes the rows of a snapshot.
type Fixture struct {
	Decks      []store.Deck
	Categories []store.Category
	Messages   []store.Message

	// Schema replaces DefaultSchema when set.
	Schema string
	// Extra statements run after the rows are inserted.
	Extra []string
}

// Scenario is the two-deck, two-category, one-message dataset used to
// exercise the deck-change reset rule.
func Scenario() Fixture {
	return Fixture{
		Decks:      []store.Deck{{ID: 1, Name: "Core"}, {ID: 2, Name: "Shadow"}},
		Categories: []store.Category{{ID: 1, Name: "Clarity"}, {ID: 2, Name: "Courage"}},
		Messages:   []store.Message{{Text: "t1", DeckID: 1, CategoryID: 1}},
	}
}

// Sample is a small but realistic dataset with four themed decks.
func Sample() Fixture {
	return Fixture{
		Decks: []store.Deck{
			{ID: 1, Name: "Core Guidance"},
			{ID: 2, Name: "Shadow Archetypes"},
			{ID: 3, Name: "Connection Circle"},
			{ID: 4, Name: "Momentum Builders"},
			{ID: 5, Name: "Quiet Hours"},
		},
		Categories: []store.Category{
			{ID: 1, Name: "Intuition"},
			{ID: 2, Name: "Timing"},
			{ID: 3, Name: "Energy"},
			{ID: 4, Name: "Clarity"},
			{ID: 5, Name: "Shadow"},
			{ID: 6, Name: "Courage"},
		},
		Messages: []store.Message{
			{Text: "Trust the first answer.", DeckID: 1, CategoryID: 1},
			{Text: "Not yet, but soon.", DeckID: 1, CategoryID: 2},
			{Text: "Rest is part of the work.", DeckID: 1, CategoryID: 3},
			{Text: "What you avoid is asking for light.", DeckID: 2, CategoryID: 5},
			{Text: "Name the fear and it shrinks.", DeckID: 2, CategoryID: 6},
			{Text: "The mirror is kind today.", DeckID: 2, CategoryID: 5},
			{Text: "Reach out first.", DeckID: 3, CategoryID: 4},
			{Text: "Small steps, every day.", DeckID: 4, CategoryID: 6},
			{Text: "Start before you are ready.", DeckID: 4, CategoryID: 2},
		},
	}
}

// Snapshot writes f to a SQLite file and returns its bytes.
func Snapshot(t testing.TB, f Fixture) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "oracle.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}

	schema := f.Schema
	if schema == "" {
		schema = DefaultSchema
	}
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	for _, d := range f.Decks {
		if _, err := db.Exec("INSERT INTO decks (id, name) VALUES (?, ?)", d.ID, d.Name); err != nil {
			t.Fatalf("insert deck %d: %v", d.ID, err)
		}
	}
	for _, c := range f.Categories {
		if _, err := db.Exec("INSERT INTO categories (id, name) VALUES (?, ?)", c.ID, c.Name); err != nil {
			t.Fatalf("insert category %d: %v", c.ID, err)
		}
	}
	for _, m := range f.Messages {
		if _, err := db.Exec("INSERT INTO messages (text, deck_id, category_id) VALUES (?, ?, ?)",
			m.Text, m.DeckID, m.CategoryID); err != nil {
			t.Fatalf("insert message %q: %v", m.Text, err)
		}
	}
	for _, stmt := range f.Extra {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}

	if err := db.Close(); err != nil {
		t.Fatalf("close fixture db: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture db: %v", err)
	}
	return b
}

// WriteFile writes the snapshot for f into dir and returns its path.
func WriteFile(t testing.TB, dir string, f Fixture) string {
	t.Helper()
	path := filepath.Join(dir, "oracle.db")
	if err := os.WriteFile(path, Snapshot(t, f), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

// Load builds a snapshot for f and loads it into a Store.
func Load(t testing.TB, f Fixture) *store.Store {
	t.Helper()
	s, err := store.Load(Snapshot(t, f))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return s
}
