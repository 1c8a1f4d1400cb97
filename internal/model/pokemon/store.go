package pokemon

import "sync"

// Store exposes the shared record collection to services. Every call holds the
// same lock for the duration of fn.
type Store interface {
	View(fn func(items []Pokemon) error) error
	Update(fn func(items []Pokemon) error) error
	Len() int
}

// MemoryStore implements Store with an in-memory slice guarded by a single mutex.
// The slice length never changes after construction.
type MemoryStore struct {
	mu    sync.Mutex
	items []Pokemon
}

// NewMemoryStore returns a MemoryStore holding copies of the supplied records.
func NewMemoryStore(items []Pokemon) *MemoryStore {
	copied := make([]Pokemon, len(items))
	for i, item := range items {
		copied[i] = item.Clone()
	}
	return &MemoryStore{items: copied}
}

// View runs fn with exclusive access. fn must not retain or mutate items.
func (s *MemoryStore) View(fn func(items []Pokemon) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.items)
}

// Update runs fn with exclusive access; fn may modify elements in place.
func (s *MemoryStore) Update(fn func(items []Pokemon) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.items)
}

// Len returns the number of records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
