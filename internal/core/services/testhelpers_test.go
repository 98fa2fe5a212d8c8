package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

const testMilestone = "v2.3.0"

var mergedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// mergedPR builds a merged pull request of the test milestone.
func mergedPR(number int, title, author string, labels ...string) domain.PullRequestRecord {
	return domain.PullRequestRecord{
		Title:     title,
		URL:       fmt.Sprintf("https://github.com/acme/widgets/pull/%d", number),
		Number:    number,
		Author:    author,
		Labels:    labels,
		MergedAt:  &mergedAt,
		Milestone: testMilestone,
	}
}

// closedPR builds a pull request closed without merging.
func closedPR(number int, title, author string) domain.PullRequestRecord {
	pr := mergedPR(number, title, author)
	pr.MergedAt = nil
	return pr
}

func dataset(records ...domain.PullRequestRecord) *domain.MilestoneDataset {
	return &domain.MilestoneDataset{Title: testMilestone, PullRequests: records}
}

// stubSource returns fixed records.
type stubSource struct {
	records []domain.PullRequestRecord
	err     error
}

func (s *stubSource) Fetch(_ context.Context) ([]domain.PullRequestRecord, error) {
	return s.records, s.err
}

func (s *stubSource) Describe() string {
	return "acme/widgets milestone " + testMilestone
}

// mockWriter records written documents.
type mockWriter struct {
	docs   []domain.Document
	dirs   []string
	failOn string
}

func (m *mockWriter) Write(_ context.Context, dir string, doc domain.Document) (string, error) {
	if doc.Name == m.failOn {
		return "", errors.New("disk full")
	}
	m.docs = append(m.docs, doc)
	m.dirs = append(m.dirs, dir)
	return dir + "/" + doc.Name + ".md", nil
}

// mockRunStore keeps runs in a slice.
type mockRunStore struct {
	mu      sync.Mutex
	runs    []domain.Run
	saveErr error
}

func (m *mockRunStore) Save(_ context.Context, run *domain.Run) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, *run)
	return nil
}

func (m *mockRunStore) Get(_ context.Context, id string) (*domain.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.runs {
		if m.runs[i].ID == id {
			run := m.runs[i]
			return &run, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRunStore) List(_ context.Context, limit int) ([]domain.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.runs) {
		limit = len(m.runs)
	}
	return m.runs[:limit], nil
}

func (m *mockRunStore) Close() error {
	return nil
}

// mockDirectory returns canned profiles and counts lookups.
type mockDirectory struct {
	profiles map[string]domain.AuthorProfile
	err      error
	lookups  []string
}

func (m *mockDirectory) Lookup(_ context.Context, login string) (*domain.AuthorProfile, error) {
	m.lookups = append(m.lookups, login)
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.profiles[login]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", login, domain.ErrNotFound)
	}
	return &p, nil
}
