// Package memstore provides an in-memory commission.Repository. It backs the
// "memory" storage backend and stands in for SQLite in tests.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/repository"
)

// Store keeps commissions in insertion order behind a mutex.
type Store struct {
	mu     sync.Mutex
	nextID int64
	rows   []commission.Commission
}

// New returns an empty store whose first id is 1.
func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Create(_ context.Context, c *commission.Commission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, *c)
	return nil
}

func (s *Store) Get(_ context.Context, id int64) (*commission.Commission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	c := s.rows[i]
	return &c, nil
}

func (s *Store) Update(_ context.Context, c *commission.Commission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(c.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	s.rows[i] = *c
	return nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.rows = slices.Delete(s.rows, i, i+1)
	}
	return nil
}

func (s *Store) SetStatus(_ context.Context, id int64, status commission.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	s.rows[i].Status = status
	return nil
}

// List filters by exact status and orders with the key's comparator. The sort
// is stable over insertion order, so ties keep storage order.
func (s *Store) List(_ context.Context, opts commission.ListOptions) ([]commission.Commission, error) {
	s.mu.Lock()
	list := make([]commission.Commission, 0, len(s.rows))
	for _, c := range s.rows {
		if opts.Status == "" || c.Status == opts.Status {
			list = append(list, c)
		}
	}
	s.mu.Unlock()

	key := opts.Sort
	if !key.Valid() {
		key = commission.DefaultSortKey
	}
	slices.SortStableFunc(list, key.Compare)
	return list, nil
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.rows, func(c commission.Commission) bool { return c.ID == id })
}
