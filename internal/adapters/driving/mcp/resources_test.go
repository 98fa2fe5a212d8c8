package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestExtractRunID(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"relnote://runs/abc-123", "abc-123"},
		{"relnote://runs/", ""},
		{"relnote://runs/a/b", ""},
		{"other://runs/abc", ""},
		{"relnote://runs", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractRunID(tt.uri), tt.uri)
	}
}

func TestServer_handleRunsResource(t *testing.T) {
	ctx := context.Background()
	uri := "relnote://runs"

	t.Run("lists runs", func(t *testing.T) {
		history := &mockHistoryService{runs: []domain.Run{
			{ID: "run-2", Milestone: "v2", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "run-1", Milestone: "v1", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}}
		server, err := NewServer(&Ports{
			ReleaseNote: &mockReleaseNoteService{}, Sources: &mockSourceFactory{}, History: history,
		})
		require.NoError(t, err)

		result, err := server.handleRunsResource(ctx, readRequest(uri))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		var runs []domain.Run
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &runs))
		require.Len(t, runs, 2)
		assert.Equal(t, "run-2", runs[0].ID)
	})

	t.Run("no history is an empty list", func(t *testing.T) {
		server := newTestServer(t, &mockReleaseNoteService{}, &mockSourceFactory{})

		result, err := server.handleRunsResource(ctx, readRequest(uri))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("disabled history is an empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{
			ReleaseNote: &mockReleaseNoteService{}, Sources: &mockSourceFactory{},
			History: &mockHistoryService{err: domain.ErrHistoryUnavailable},
		})
		require.NoError(t, err)

		result, err := server.handleRunsResource(ctx, readRequest(uri))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("store error", func(t *testing.T) {
		server, err := NewServer(&Ports{
			ReleaseNote: &mockReleaseNoteService{}, Sources: &mockSourceFactory{},
			History: &mockHistoryService{err: errors.New("locked")},
		})
		require.NoError(t, err)

		_, err = server.handleRunsResource(ctx, readRequest(uri))
		assert.Error(t, err)
	})
}

func TestServer_handleRunResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns run", func(t *testing.T) {
		server, err := NewServer(&Ports{
			ReleaseNote: &mockReleaseNoteService{}, Sources: &mockSourceFactory{},
			History: &mockHistoryService{run: &domain.Run{ID: "run-1", Milestone: "v1"}},
		})
		require.NoError(t, err)

		result, err := server.handleRunResource(ctx, readRequest("relnote://runs/run-1"))

		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"milestone": "v1"`)
	})

	t.Run("unknown run", func(t *testing.T) {
		server, err := NewServer(&Ports{
			ReleaseNote: &mockReleaseNoteService{}, Sources: &mockSourceFactory{},
			History: &mockHistoryService{err: domain.ErrNotFound},
		})
		require.NoError(t, err)

		_, err = server.handleRunResource(ctx, readRequest("relnote://runs/nope"))
		assert.Error(t, err)
	})

	t.Run("no history", func(t *testing.T) {
		server := newTestServer(t, &mockReleaseNoteService{}, &mockSourceFactory{})

		_, err := server.handleRunResource(ctx, readRequest("relnote://runs/run-1"))
		assert.Error(t, err)
	})
}
