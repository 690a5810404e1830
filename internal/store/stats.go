package store

// DeckStats counts messages per category within one deck.
type DeckStats struct {
	Deck       Deck
	Total      int
	ByCategory map[int64]int
}

// Stats returns per-deck message counts, ordered by deck id.
func (s *Store) Stats() []DeckStats {
	out := make([]DeckStats, 0, len(s.decks))
	for _, d := range s.decks {
		ds := DeckStats{Deck: d, ByCategory: make(map[int64]int)}
		it := s.Postings(FieldDeck, d.ID).Iterator()
		for it.HasNext() {
			m := s.messages[it.Next()]
			ds.ByCategory[m.CategoryID]++
			ds.Total++
		}
		out = append(out, ds)
	}
	return out
}
