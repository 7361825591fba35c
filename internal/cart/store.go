// Package cart holds the cart state container owned by an application shell.
package cart

import (
	"sync"

	"github.com/fjod/go_storefront/internal/domain"
)

// Listener receives the cart snapshot produced by every append.
type Listener func(c domain.Cart)

// Store is the single mutable source of truth for selected products.
// Listeners run inside the store's critical section, so they observe
// snapshots in append order and must not call back into the store.
type Store struct {
	mu        sync.Mutex
	items     []domain.Product
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{
		listeners: make(map[int]Listener),
	}
}

// Add appends p to the end of the cart and notifies every listener with
// the resulting snapshot.
func (s *Store) Add(p domain.Product) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, p)
	snapshot := s.snapshotLocked()

	for _, l := range s.sortedListenersLocked() {
		l(snapshot)
	}
	return snapshot
}

// Snapshot returns a copy of the current cart that later appends never alter.
func (s *Store) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers l for future appends and returns a function that
// removes it again.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) snapshotLocked() domain.Cart {
	items := make([]domain.Product, len(s.items))
	copy(items, s.items)
	return domain.Cart{Items: items}
}

// sortedListenersLocked returns listeners in subscription order.
func (s *Store) sortedListenersLocked() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			out = append(out, l)
		}
	}
	return out
}
