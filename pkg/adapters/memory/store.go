// Package memory provides an in-memory ReceiptStore, used as the default
// store and as the reference implementation for the contract suite.
package memory

import (
	"context"
	"sync"

	"github.com/shopflow/shopflow/pkg/shop"
)

// Store implements ports.ReceiptStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]shop.Receipt
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]shop.Receipt),
	}
}

// Save persists the receipt in memory.
func (s *Store) Save(ctx context.Context, receipt shop.Receipt) error {
	// Copy the slices so later caller mutations don't leak into the store.
	copied := receipt
	copied.Items = append([]shop.ItemID(nil), receipt.Items...)
	copied.Trail = append([]string(nil), receipt.Trail...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[receipt.SessionID] = copied
	return nil
}

// Load retrieves a receipt from memory.
func (s *Store) Load(ctx context.Context, sessionID string) (shop.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	receipt, ok := s.data[sessionID]
	if !ok {
		return shop.Receipt{}, shop.ErrReceiptNotFound
	}

	ret := receipt
	ret.Items = append([]shop.ItemID(nil), receipt.Items...)
	ret.Trail = append([]string(nil), receipt.Trail...)
	return ret, nil
}

// Delete removes a receipt.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns the stored session IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	return sessions, nil
}
