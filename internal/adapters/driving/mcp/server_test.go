package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		require.Error(t, err)
		assert.Nil(t, server)
	})

	t.Run("missing release note service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Sources: &mockSourceFactory{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingReleaseNoteService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			ReleaseNote: &mockReleaseNoteService{},
			Sources:     &mockSourceFactory{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("missing source factory returns error", func(t *testing.T) {
		ports := &Ports{ReleaseNote: &mockReleaseNoteService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingSourceFactory)
	})

	t.Run("history is optional", func(t *testing.T) {
		ports := &Ports{ReleaseNote: &mockReleaseNoteService{}, Sources: &mockSourceFactory{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			ReleaseNote: &mockReleaseNoteService{},
			Sources:     &mockSourceFactory{},
			History:     &mockHistoryService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
