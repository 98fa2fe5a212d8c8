package github

import (
	"context"
	"fmt"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/logger"
)

// Ensure sources implement the interface.
var (
	_ driven.DatasetSource = (*MilestoneSource)(nil)
	_ driven.DatasetSource = (*FileSource)(nil)
)

// MilestoneSource fetches a milestone's closed pull requests from the
// search API.
type MilestoneSource struct {
	client   *Client
	query    domain.MilestoneQuery
	search   string
	savePath string
}

// NewMilestoneSource creates a source for query. When query.SavePath is
// set the raw payload is written there on every fetch.
func NewMilestoneSource(client *Client, query domain.MilestoneQuery) (*MilestoneSource, error) {
	search, err := BuildMilestoneQuery(query)
	if err != nil {
		return nil, err
	}
	return &MilestoneSource{
		client:   client,
		query:    query,
		search:   search,
		savePath: query.SavePath,
	}, nil
}

// Fetch runs the search and converts every hit.
func (s *MilestoneSource) Fetch(ctx context.Context) ([]domain.PullRequestRecord, error) {
	payload, err := s.client.SearchMilestonePulls(ctx, s.search)
	if err != nil {
		return nil, err
	}
	logger.Info("Fetched %d pull requests for %s", len(payload.Issues), s.Describe())

	if s.savePath != "" {
		if err := WritePayload(s.savePath, payload); err != nil {
			return nil, err
		}
		logger.Debug("Saved search payload to %s", s.savePath)
	}
	return RecordsFromIssues(payload.Issues), nil
}

// Describe names the repository and milestone.
func (s *MilestoneSource) Describe() string {
	return fmt.Sprintf("%s/%s milestone %s", s.query.Owner, s.query.Repo, s.query.Milestone)
}

// Query returns the search query sent to GitHub.
func (s *MilestoneSource) Query() string {
	return s.search
}

// FileSource reads a previously exported search payload.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path.
func NewFileSource(path string) *FileSource {
	if path == "" {
		path = DefaultExportFile
	}
	return &FileSource{path: path}
}

// Fetch decodes the payload file.
func (s *FileSource) Fetch(ctx context.Context) ([]domain.PullRequestRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := ReadPayloadFile(s.path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Read %d pull requests from %s", len(payload.Issues), s.path)
	return RecordsFromIssues(payload.Issues), nil
}

// Describe returns the file path.
func (s *FileSource) Describe() string {
	return s.path
}

// Path returns the file path.
func (s *FileSource) Path() string {
	return s.path
}
