package rates

import "sync/atomic"

// Store holds the current rate snapshot. Readers always see a complete table;
// writers publish by swapping the pointer.
type Store struct {
	current atomic.Pointer[Table]
}

// NewStore creates a store, optionally primed with an initial table.
func NewStore(initial *Table) *Store {
	s := &Store{}
	if initial != nil {
		s.current.Store(initial)
	}
	return s
}

// Load returns the current snapshot, or nil if none has been published.
func (s *Store) Load() *Table {
	return s.current.Load()
}

// Replace publishes t and returns the snapshot it replaced.
func (s *Store) Replace(t *Table) *Table {
	return s.current.Swap(t)
}
