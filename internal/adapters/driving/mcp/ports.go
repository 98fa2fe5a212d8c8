package mcp

import (
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/core/ports/driving"
)

// Ports aggregates the services required by the MCP server.
type Ports struct {
	// ReleaseNote classifies and renders release notes.
	ReleaseNote driving.ReleaseNoteService

	// Sources builds dataset sources from files or milestone searches.
	Sources driven.DatasetSourceFactory

	// History lists past runs. Optional.
	History driving.HistoryService

	// Settings supplies the configured repository, sort order and output
	// directory when a tool call leaves them out. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.ReleaseNote == nil {
		return ErrMissingReleaseNoteService
	}
	if p.Sources == nil {
		return ErrMissingSourceFactory
	}
	return nil
}
