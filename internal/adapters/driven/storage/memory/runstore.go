package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.Run
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Save records a run. Saving an existing ID replaces it.
func (s *RunStore) Save(_ context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *run
	stored.Documents = slices.Clone(run.Documents)
	stored.Counters.Groups = slices.Clone(run.Counters.Groups)

	for i := range s.runs {
		if s.runs[i].ID == run.ID {
			s.runs[i] = stored
			return nil
		}
	}
	s.runs = append(s.runs, stored)
	return nil
}

// Get retrieves a run by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.runs {
		if s.runs[i].ID == id {
			run := s.runs[i]
			return &run, nil
		}
	}
	return nil, fmt.Errorf("run %s: %w", id, domain.ErrNotFound)
}

// List returns up to limit runs, newest first.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := slices.Clone(s.runs)
	slices.SortStableFunc(result, func(a, b domain.Run) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Close is a no-op for the memory store.
func (s *RunStore) Close() error {
	return nil
}
