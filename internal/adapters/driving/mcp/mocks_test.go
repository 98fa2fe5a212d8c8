package mcp

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// mockReleaseNoteService is a mock implementation of driving.ReleaseNoteService.
type mockReleaseNoteService struct {
	result *domain.ReleaseNoteResult
	err    error

	lastSource  driven.DatasetSource
	lastRequest domain.ReleaseNoteRequest
	generated   int
	previewed   int
}

func (m *mockReleaseNoteService) Generate(
	_ context.Context, source driven.DatasetSource, req domain.ReleaseNoteRequest,
) (*domain.ReleaseNoteResult, error) {
	m.generated++
	m.lastSource = source
	m.lastRequest = req
	return m.result, m.err
}

func (m *mockReleaseNoteService) Preview(
	_ context.Context, source driven.DatasetSource, req domain.ReleaseNoteRequest,
) (*domain.ReleaseNoteResult, error) {
	m.previewed++
	m.lastSource = source
	m.lastRequest = req
	return m.result, m.err
}

// stubSource is a driven.DatasetSource that only describes itself.
type stubSource struct {
	name string
}

func (s *stubSource) Fetch(_ context.Context) ([]domain.PullRequestRecord, error) {
	return nil, nil
}

func (s *stubSource) Describe() string {
	return s.name
}

// mockSourceFactory is a mock implementation of driven.DatasetSourceFactory.
type mockSourceFactory struct {
	err       error
	lastPath  string
	lastQuery domain.MilestoneQuery
}

func (m *mockSourceFactory) FromFile(path string) driven.DatasetSource {
	m.lastPath = path
	if path == "" {
		path = "githublist.json"
	}
	return &stubSource{name: path}
}

func (m *mockSourceFactory) FromMilestone(_ context.Context, query domain.MilestoneQuery) (driven.DatasetSource, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return &stubSource{name: query.Owner + "/" + query.Repo + " milestone " + query.Milestone}, nil
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs []domain.Run
	run  *domain.Run
	err  error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.Run, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.Run, error) {
	return m.run, m.err
}
