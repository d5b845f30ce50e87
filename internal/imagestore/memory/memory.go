// Package memory provides an in-memory image store used in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gr-qft/teini/internal/imagestore"
)

// Store implements imagestore.Store with an in-memory map.
type Store struct {
	mu     sync.RWMutex
	images map[int64]map[string][]byte
}

// New creates an empty in-memory image store.
func New() *Store {
	return &Store{images: make(map[int64]map[string][]byte)}
}

// Put stores image bytes for a product under the given reference.
func (s *Store) Put(productID int64, ref string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.images[productID] == nil {
		s.images[productID] = make(map[string][]byte)
	}
	s.images[productID][ref] = data
}

// List returns the product's image references in sorted order, mirroring the
// filesystem store's name-ordered listing.
func (s *Store) List(_ context.Context, productID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	imgs, ok := s.images[productID]
	if !ok || len(imgs) == 0 {
		return nil, imagestore.ErrNotFound
	}

	refs := make([]string, 0, len(imgs))
	for ref := range imgs {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	return refs, nil
}

// Read returns the bytes stored under the reference.
func (s *Store) Read(_ context.Context, ref string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, imgs := range s.images {
		if data, ok := imgs[ref]; ok {
			return data, nil
		}
	}
	return nil, fmt.Errorf("image %q not stored", ref)
}
