package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/core/ports/driving"
	"github.com/custodia-labs/relnote/internal/logger"
)

// Ensure ReleaseNoteService implements the interface.
var _ driving.ReleaseNoteService = (*ReleaseNoteService)(nil)

// ErrNoWriter is returned by Generate when no document writer is configured.
var ErrNoWriter = errors.New("document writer not configured")

// ReleaseNoteService classifies milestone pull requests and writes the
// resulting documents.
type ReleaseNoteService struct {
	writer driven.DocumentWriter
	runs   driven.RunStore // optional

	now   func() time.Time
	newID func() string
}

// NewReleaseNoteService creates a release note service.
// runs may be nil, in which case runs are not recorded.
func NewReleaseNoteService(writer driven.DocumentWriter, runs driven.RunStore) *ReleaseNoteService {
	return &ReleaseNoteService{
		writer: writer,
		runs:   runs,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Generate classifies, renders and writes the documents, then records
// the run.
func (s *ReleaseNoteService) Generate(
	ctx context.Context, source driven.DatasetSource, req domain.ReleaseNoteRequest,
) (*domain.ReleaseNoteResult, error) {
	if s.writer == nil {
		return nil, ErrNoWriter
	}

	result, err := s.build(ctx, source, req)
	if err != nil {
		return nil, err
	}

	logger.Section("Writing Documents")
	for _, doc := range result.Documents {
		path, err := s.writer.Write(ctx, req.OutputDir, doc)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", doc.Name, err)
		}
		logger.Debug("Wrote %s (%d bytes)", path, len(doc.Content))
		result.Written = append(result.Written, path)
	}

	if s.runs != nil {
		run := &domain.Run{
			ID:        s.newID(),
			Milestone: result.Milestone,
			Source:    source.Describe(),
			Counters:  *result.Counters,
			Documents: result.Written,
			CreatedAt: s.now(),
		}
		// The documents are already on disk; a history failure only loses
		// the record.
		if err := s.runs.Save(ctx, run); err != nil {
			logger.Warn("Failed to record run: %v", err)
		} else {
			result.RunID = run.ID
		}
	}

	return result, nil
}

// Preview classifies and renders without side effects.
func (s *ReleaseNoteService) Preview(
	ctx context.Context, source driven.DatasetSource, req domain.ReleaseNoteRequest,
) (*domain.ReleaseNoteResult, error) {
	return s.build(ctx, source, req)
}

func (s *ReleaseNoteService) build(
	ctx context.Context, source driven.DatasetSource, req domain.ReleaseNoteRequest,
) (*domain.ReleaseNoteResult, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: no dataset source", domain.ErrInvalidInput)
	}

	logger.Section("Loading Pull Requests")
	logger.Info("Source: %s", source.Describe())

	records, err := source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pull requests: %w", err)
	}
	logger.Debug("Fetched %d records", len(records))

	dataset, err := domain.NewMilestoneDataset(records)
	if err != nil {
		return nil, err
	}

	criteria := ParseAllCriteria(req.Criteria)
	logger.Section("Classification")
	for _, family := range domain.Families() {
		for _, g := range criteria.Groups(family) {
			logger.Debug("%s group %q: tokens %q", family, g.DisplayKey, g.Tokens)
		}
	}

	partition, counters := Classify(dataset, criteria)
	logger.Info("Milestone %q: %d merged, %d unmerged, %d in default bucket",
		dataset.Title, counters.Total, counters.Unmerged, len(partition.Default))

	return &domain.ReleaseNoteResult{
		Milestone: dataset.Title,
		Partition: partition,
		Counters:  counters,
		Summary:   Summarize(counters),
		Documents: Render(partition, req.Options),
	}, nil
}
