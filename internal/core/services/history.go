package services

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads past release note runs.
type HistoryService struct {
	runs driven.RunStore
}

// NewHistoryService creates a history service. runs may be nil when
// history is disabled.
func NewHistoryService(runs driven.RunStore) *HistoryService {
	return &HistoryService{runs: runs}
}

// List returns up to limit runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.runs == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	return s.runs.List(ctx, limit)
}

// Get retrieves a run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Run, error) {
	if s.runs == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	return s.runs.Get(ctx, id)
}
