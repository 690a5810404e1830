package store

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const sqliteMagic = "SQLite format 3\x00"

// requiredColumns lists the relations the snapshot must carry. Anything
// else in the file is ignored.
var requiredColumns = map[string][]string{
	"decks":      {"id", "name"},
	"categories": {"id", "name"},
	"messages":   {"text", "deck_id", "category_id"},
}

// tableOrder keeps schema errors deterministic.
var tableOrder = []string{"decks", "categories", "messages"}

// Load parses a SQLite snapshot into memory. The bytes are written to a
// private temp file, read once through a read-only connection, and the file
// is removed before Load returns.
func Load(b []byte) (*Store, error) {
	if !bytes.HasPrefix(b, []byte(sqliteMagic)) {
		return nil, &LoadError{Stage: StageOpen, Err: ErrNotSQLite}
	}

	path, cleanup, err := writeTemp(b)
	if err != nil {
		return nil, &LoadError{Stage: StageOpen, Err: err}
	}
	defer cleanup()

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, &LoadError{Stage: StageOpen, Err: fmt.Errorf("open database: %w", err)}
	}
	defer func() { _ = db.Close() }()

	if err := applyPragmas(db); err != nil {
		return nil, &LoadError{Stage: StageOpen, Err: fmt.Errorf("apply pragmas: %w", err)}
	}

	ctx := context.Background()
	if err := checkSchema(ctx, db); err != nil {
		return nil, err
	}

	decks, err := readDecks(ctx, db)
	if err != nil {
		return nil, err
	}
	categories, err := readCategories(ctx, db)
	if err != nil {
		return nil, err
	}
	messages, err := readMessages(ctx, db)
	if err != nil {
		return nil, err
	}

	return build(decks, categories, messages)
}

// writeTemp copies the snapshot to a temp file and returns a func that
// removes it.
func writeTemp(b []byte) (string, func(), error) {
	tmp, err := os.CreateTemp("", "oracle-snapshot-*.db")
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close temp file: %w", err)
	}
	return path, cleanup, nil
}

// applyPragmas locks the connection down to reads.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA temp_store = MEMORY",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func checkSchema(ctx context.Context, db *sql.DB) error {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("name").
		From(b.Table("sqlite_master")).
		Where(entsql.In("type", "table", "view")).
		Query()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return &LoadError{Stage: StageSchema, Err: fmt.Errorf("list tables: %w", err)}
	}
	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			_ = rows.Close()
			return &LoadError{Stage: StageSchema, Err: err}
		}
		present[name] = true
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return &LoadError{Stage: StageSchema, Err: err}
	}

	for _, table := range tableOrder {
		if !present[table] {
			return &LoadError{Stage: StageSchema, Err: fmt.Errorf("missing relation %q", table)}
		}
		cols, err := tableColumns(ctx, db, table)
		if err != nil {
			return &LoadError{Stage: StageSchema, Err: fmt.Errorf("inspect %s: %w", table, err)}
		}
		for _, c := range requiredColumns[table] {
			if !cols[c] {
				return &LoadError{Stage: StageSchema, Err: fmt.Errorf("relation %q has no column %q", table, c)}
			}
		}
	}
	return nil
}

func tableColumns(ctx context.Context, db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// namedRowsQuery builds SELECT id, name FROM <table> ORDER BY id.
func namedRowsQuery(table string) (string, []any) {
	b := entsql.Dialect(dialect.SQLite)
	return b.Select("id", "name").
		From(b.Table(table)).
		OrderBy("id").
		Query()
}

type namedRow struct {
	id   int64
	name string
}

func readNamedRows(ctx context.Context, db *sql.DB, table string) ([]namedRow, error) {
	query, args := namedRowsQuery(table)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &LoadError{Stage: StageRead, Err: fmt.Errorf("query %s: %w", table, err)}
	}
	defer func() { _ = rows.Close() }()

	var out []namedRow
	for rows.Next() {
		var id sql.NullInt64
		var name sql.NullString
		if err := rows.Scan(&id, &name); err != nil {
			return nil, &LoadError{Stage: StageRead, Err: fmt.Errorf("scan %s: %w", table, err)}
		}
		if !id.Valid || !name.Valid {
			return nil, validationErr("%s row %d has NULL id or name", table, len(out)+1)
		}
		out = append(out, namedRow{id: id.Int64, name: name.String})
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Stage: StageRead, Err: fmt.Errorf("iterate %s: %w", table, err)}
	}
	return out, nil
}

func readDecks(ctx context.Context, db *sql.DB) ([]Deck, error) {
	rows, err := readNamedRows(ctx, db, "decks")
	if err != nil {
		return nil, err
	}
	decks := make([]Deck, 0, len(rows))
	for _, r := range rows {
		decks = append(decks, Deck{ID: r.id, Name: r.name})
	}
	return decks, nil
}

func readCategories(ctx context.Context, db *sql.DB) ([]Category, error) {
	rows, err := readNamedRows(ctx, db, "categories")
	if err != nil {
		return nil, err
	}
	categories := make([]Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, Category{ID: r.id, Name: r.name})
	}
	return categories, nil
}

func readMessages(ctx context.Context, db *sql.DB) ([]Message, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("text", "deck_id", "category_id").
		From(b.Table("messages")).
		Query()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &LoadError{Stage: StageRead, Err: fmt.Errorf("query messages: %w", err)}
	}
	defer func() { _ = rows.Close() }()

	var out []Message
	for rows.Next() {
		var text sql.NullString
		var deckID, categoryID sql.NullInt64
		if err := rows.Scan(&text, &deckID, &categoryID); err != nil {
			return nil, &LoadError{Stage: StageRead, Err: fmt.Errorf("scan messages: %w", err)}
		}
		if !text.Valid || !deckID.Valid || !categoryID.Valid {
			return nil, validationErr("messages row %d has NULL columns", len(out)+1)
		}
		out = append(out, Message{Text: text.String, DeckID: deckID.Int64, CategoryID: categoryID.Int64})
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Stage: StageRead, Err: fmt.Errorf("iterate messages: %w", err)}
	}
	return out, nil
}

// build validates the rows and assembles the in-memory store.
func build(decks []Deck, categories []Category, messages []Message) (*Store, error) {
	if len(messages) > math.MaxUint32 {
		return nil, validationErr("too many messages: %d", len(messages))
	}

	s := &Store{
		decks:       decks,
		categories:  categories,
		messages:    messages,
		deckPos:     make(map[int64]int, len(decks)),
		categoryPos: make(map[int64]int, len(categories)),
	}

	for i, d := range decks {
		if d.Name == "" {
			return nil, validationErr("deck %d has an empty name", d.ID)
		}
		if _, dup := s.deckPos[d.ID]; dup {
			return nil, validationErr("duplicate deck id %d", d.ID)
		}
		s.deckPos[d.ID] = i
	}
	for i, c := range categories {
		if c.Name == "" {
			return nil, validationErr("category %d has an empty name", c.ID)
		}
		if _, dup := s.categoryPos[c.ID]; dup {
			return nil, validationErr("duplicate category id %d", c.ID)
		}
		s.categoryPos[c.ID] = i
	}
	for i, m := range messages {
		if m.Text == "" {
			return nil, validationErr("message %d has empty text", i+1)
		}
		if _, ok := s.deckPos[m.DeckID]; !ok {
			return nil, validationErr("message %d references unknown deck %d", i+1, m.DeckID)
		}
		if _, ok := s.categoryPos[m.CategoryID]; !ok {
			return nil, validationErr("message %d references unknown category %d", i+1, m.CategoryID)
		}
	}

	s.idx = buildIndex(s)
	return s, nil
}
