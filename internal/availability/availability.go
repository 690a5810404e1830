// Package availability computes which categories are selectable for a deck
// choice.
package availability

import (
	"iter"

	"github.com/RoaringBitmap/roaring"

	"github.com/abhisek/oracle/internal/choice"
	"github.com/abhisek/oracle/internal/store"
)

// Set is the collection of category ids reachable from a deck choice. The
// neutral choice is a member of every set.
type Set struct {
	st   *store.Store
	bits *roaring.Bitmap // category ordinals
}

// Contains reports whether c may be selected. choice.Any is always allowed.
func (s Set) Contains(c choice.Choice) bool {
	id, ok := c.Value()
	if !ok {
		return true
	}
	if s.st == nil {
		return false
	}
	ord, ok := s.st.CategoryOrdinal(id)
	return ok && s.bits.Contains(ord)
}

// IDs yields the member category ids in id order. choice.Any is implicit
// and not yielded.
func (s Set) IDs() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if s.bits == nil {
			return
		}
		it := s.bits.Iterator()
		for it.HasNext() {
			if !yield(s.st.CategoryAt(it.Next()).ID) {
				return
			}
		}
	}
}

// Len is the number of real categories in the set.
func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.GetCardinality())
}

// Equal reports whether both sets hold the same categories.
func (s Set) Equal(o Set) bool {
	if s.Len() == 0 || o.Len() == 0 {
		return s.Len() == o.Len()
	}
	return s.bits.Equals(o.bits)
}

// Visibility maps every category id in the dataset to whether it is in
// the set.
func (s Set) Visibility() map[int64]bool {
	if s.st == nil {
		return map[int64]bool{}
	}
	out := make(map[int64]bool, s.st.CategoryCount())
	for c := range s.st.Categories() {
		ord, _ := s.st.CategoryOrdinal(c.ID)
		out[c.ID] = s.bits.Contains(ord)
	}
	return out
}

// Resolver derives availability sets from a loaded store.
type Resolver struct {
	st *store.Store
}

// NewResolver returns a Resolver over st.
func NewResolver(st *store.Store) *Resolver {
	return &Resolver{st: st}
}

// Resolve returns the categories selectable under deck. choice.Any makes
// every category available; unknown decks yield an empty set.
func (r *Resolver) Resolve(deck choice.Choice) Set {
	id, ok := deck.Value()
	if !ok {
		bits := roaring.New()
		bits.AddRange(0, uint64(r.st.CategoryCount()))
		return Set{st: r.st, bits: bits}
	}
	bits := roaring.New()
	for cat := range r.st.CategoriesForDeck(id) {
		ord, _ := r.st.CategoryOrdinal(cat)
		bits.Add(ord)
	}
	return Set{st: r.st, bits: bits}
}
