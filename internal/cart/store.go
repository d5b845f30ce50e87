package cart

import (
	"sync"

	"github.com/gr-qft/teini/internal/domain"
)

// Store holds per-session carts in memory. Each session owns its own cart;
// the lock only serializes mutations within a session against each other and
// against map growth. Carts are never written to any backing store.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string]*domain.Cart)}
}

// Get returns a snapshot of the session's cart. Unknown sessions get an
// empty cart rather than an error.
func (s *Store) Get(sessionID string) *domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return &domain.Cart{SessionID: sessionID}
	}
	return snapshot(cart)
}

// Update applies fn to the session's cart atomically and returns the
// resulting snapshot. The cart passed to fn may be mutated freely; an empty
// cart is created on first touch and the entry is removed again when fn
// leaves it empty.
func (s *Store) Update(sessionID string, fn func(*domain.Cart) error) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &domain.Cart{SessionID: sessionID}
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	if cart.IsEmpty() {
		delete(s.carts, sessionID)
	} else {
		s.carts[sessionID] = cart
	}
	return snapshot(cart), nil
}

// Delete discards the session's cart.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func snapshot(cart *domain.Cart) *domain.Cart {
	out := &domain.Cart{
		SessionID: cart.SessionID,
		Items:     make([]domain.CartItem, len(cart.Items)),
	}
	copy(out.Items, cart.Items)
	return out
}
