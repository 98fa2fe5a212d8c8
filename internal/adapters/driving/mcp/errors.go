// Package mcp provides an MCP (Model Context Protocol) server adapter for
// relnote. It lets AI assistants classify a milestone's pull requests and
// generate release notes.
package mcp

import "errors"

var (
	// ErrMissingReleaseNoteService is returned when the release note service is not provided.
	ErrMissingReleaseNoteService = errors.New("mcp: release note service is required")

	// ErrMissingSourceFactory is returned when the dataset source factory is not provided.
	ErrMissingSourceFactory = errors.New("mcp: dataset source factory is required")
)
