package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/core/ports/driving"
	"github.com/custodia-labs/relnote/internal/logger"
)

// Ensure AuthorService implements the interface.
var _ driving.AuthorService = (*AuthorService)(nil)

// ErrNoAuthorDirectory is returned when profile lookups are not configured.
var ErrNoAuthorDirectory = errors.New("author directory not configured")

// AuthorService looks up the profiles of a milestone's contributors.
type AuthorService struct {
	directory driven.AuthorDirectory
	writer    driven.DocumentWriter
}

// NewAuthorService creates an author service.
func NewAuthorService(directory driven.AuthorDirectory, writer driven.DocumentWriter) *AuthorService {
	return &AuthorService{
		directory: directory,
		writer:    writer,
	}
}

// Profiles looks up each distinct author of the merged pull requests once.
// Accounts that no longer exist are reported with Found set to false.
func (s *AuthorService) Profiles(
	ctx context.Context, source driven.DatasetSource, outputDir string,
) (*domain.AuthorsResult, error) {
	if s.directory == nil {
		return nil, ErrNoAuthorDirectory
	}
	if source == nil {
		return nil, fmt.Errorf("%w: no dataset source", domain.ErrInvalidInput)
	}

	records, err := source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pull requests: %w", err)
	}

	dataset, err := domain.NewMilestoneDataset(records)
	if err != nil {
		return nil, err
	}

	logger.Section("Author Lookup")

	cache := make(map[string]bool)
	var profiles []domain.AuthorProfile

	for _, pr := range dataset.PullRequests {
		if !pr.IsMerged() {
			continue
		}
		if cache[pr.Author] {
			logger.Debug("Author %s already looked up", pr.Author)
			continue
		}
		cache[pr.Author] = true

		profile, err := s.directory.Lookup(ctx, pr.Author)
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("No profile for %s", pr.Author)
			profiles = append(profiles, domain.AuthorProfile{Login: pr.Author})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lookup %s: %w", pr.Author, err)
		}
		profiles = append(profiles, *profile)
	}

	result := &domain.AuthorsResult{
		Milestone: dataset.Title,
		Profiles:  profiles,
		Document:  RenderContributorProfiles(dataset.Title, profiles),
	}

	if outputDir == "" {
		return result, nil
	}
	if s.writer == nil {
		return nil, ErrNoWriter
	}

	path, err := s.writer.Write(ctx, outputDir, result.Document)
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", result.Document.Name, err)
	}
	result.Written = path

	return result, nil
}
