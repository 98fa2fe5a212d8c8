package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

func authorsResult() *domain.AuthorsResult {
	return &domain.AuthorsResult{
		Milestone: "v2.3.0",
		Profiles: []domain.AuthorProfile{
			{Login: "alice", Name: "Alice Liddell", Company: "Acme", Found: true},
			{Login: "bob", Found: true},
			{Login: "ghost"},
		},
		Written: "v2.3.0-contributors.md",
	}
}

func TestAuthorsCmd_HasNoTokenFlag(t *testing.T) {
	assert.Nil(t, authorsCmd.Flags().Lookup("token"))
	assert.NotNil(t, authorsCmd.Flags().Lookup("milestone"))
	assert.NotNil(t, authorsCmd.Flags().Lookup("input"))
}

func TestAuthorsCmd_FromPayload(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.authors.result = authorsResult()

	out, err := executeCommand("authors", "--output-dir", "out")

	require.NoError(t, err)
	assert.Equal(t, "", ts.sources.lastPath)
	assert.Equal(t, "out", ts.authors.lastOutputDir)
	assert.Contains(t, out, "Contributors of v2.3.0: 3")
	assert.Contains(t, out, "- Alice Liddell (@alice), Acme")
	assert.Contains(t, out, "- bob (@bob)")
	assert.Contains(t, out, "- @ghost (no profile)")
	assert.Contains(t, out, "Wrote v2.3.0-contributors.md")
}

func TestAuthorsCmd_FromMilestone(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.authors.result = authorsResult()

	_, err := executeCommand("authors", "-o", "acme", "-r", "widgets", "-m", "v2.3.0")

	require.NoError(t, err)
	require.NotNil(t, ts.sources.lastQuery)
	assert.Equal(t, "v2.3.0", ts.sources.lastQuery.Milestone)
	assert.Empty(t, ts.sources.lastQuery.Token)
}

func TestAuthorsCmd_EmptyDataset(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.authors.err = domain.ErrEmptyDataset

	out, err := executeCommand("authors", "-i", "empty.json")

	require.NoError(t, err)
	assert.Contains(t, out, "No pull requests to parse in empty.json")
}

func TestAuthorsCmd_NotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	authorService = nil

	_, err := executeCommand("authors")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "author service not configured")
}
