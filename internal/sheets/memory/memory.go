package memory

import (
	"context"
	"fmt"
	"sync"

	"splitbook/internal/core"
)

// Store is an in-memory ledger used by tests and local development.
type Store struct {
	mu    sync.Mutex
	items []core.Record
}

func New() *Store {
	return &Store{}
}

// NewWithRecords seeds the store with an initial snapshot.
func NewWithRecords(records []core.Record) *Store {
	s := &Store{}
	s.items = append(s.items, records...)
	return s
}

// Append stores the record and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, rec core.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, rec)
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// Records returns a copy of the ledger in insertion order.
func (s *Store) Records(_ context.Context) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Record, len(s.items))
	copy(out, s.items)
	return out, nil
}
