package tracker

import "growthlog/backend/models"

// Store is the ordered entry list of one session, newest first by insertion.
// A Store value is never modified in place: Append returns a new Store, so a
// State snapshot handed to a renderer stays stable.
type Store struct {
	entries []models.ProgressEntry
}

// Append returns a store with entry at index 0.
func (s Store) Append(entry models.ProgressEntry) Store {
	next := make([]models.ProgressEntry, 0, len(s.entries)+1)
	next = append(next, entry)
	next = append(next, s.entries...)
	return Store{entries: next}
}

// All returns a copy of the entries in current order.
func (s Store) All() []models.ProgressEntry {
	out := make([]models.ProgressEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s Store) Len() int {
	return len(s.entries)
}
