package store

import "github.com/RoaringBitmap/roaring"

// Field names a filterable message column.
type Field int

const (
	FieldDeck Field = iota
	FieldCategory
)

// Column returns the relation column the field maps to.
func (f Field) Column() string {
	switch f {
	case FieldDeck:
		return "deck_id"
	case FieldCategory:
		return "category_id"
	default:
		return "unknown"
	}
}

// index holds posting lists over message positions, built once at load.
type index struct {
	all            *roaring.Bitmap
	byDeck         map[int64]*roaring.Bitmap
	byCategory     map[int64]*roaring.Bitmap
	deckCategories map[int64]*roaring.Bitmap // deck id -> category ordinals
}

func buildIndex(s *Store) *index {
	idx := &index{
		all:            roaring.New(),
		byDeck:         make(map[int64]*roaring.Bitmap, len(s.decks)),
		byCategory:     make(map[int64]*roaring.Bitmap, len(s.categories)),
		deckCategories: make(map[int64]*roaring.Bitmap, len(s.decks)),
	}

	for i, m := range s.messages {
		pos := uint32(i)
		idx.all.Add(pos)
		postingFor(idx.byDeck, m.DeckID).Add(pos)
		postingFor(idx.byCategory, m.CategoryID).Add(pos)
		postingFor(idx.deckCategories, m.DeckID).Add(uint32(s.categoryPos[m.CategoryID]))
	}

	idx.all.RunOptimize()
	for _, bm := range idx.byDeck {
		bm.RunOptimize()
	}
	for _, bm := range idx.byCategory {
		bm.RunOptimize()
	}
	return idx
}

func postingFor(m map[int64]*roaring.Bitmap, id int64) *roaring.Bitmap {
	bm, ok := m[id]
	if !ok {
		bm = roaring.New()
		m[id] = bm
	}
	return bm
}

// Postings returns the positions of messages whose field equals id. The
// returned bitmap is shared and must not be modified; ids with no messages
// yield an empty bitmap.
func (s *Store) Postings(f Field, id int64) *roaring.Bitmap {
	var m map[int64]*roaring.Bitmap
	switch f {
	case FieldDeck:
		m = s.idx.byDeck
	case FieldCategory:
		m = s.idx.byCategory
	}
	if bm, ok := m[id]; ok {
		return bm
	}
	return roaring.New()
}

// AllMessages returns the positions of every message. The bitmap is shared
// and must not be modified.
func (s *Store) AllMessages() *roaring.Bitmap {
	return s.idx.all
}
