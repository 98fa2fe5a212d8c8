package github

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// DefaultExportFile is the file name used for exported search payloads.
const DefaultExportFile = "githublist.json"

// exportedPayload is the on-disk form of a search result. Unlike
// gh.IssuesSearchResult it always writes the items array.
type exportedPayload struct {
	Total             int         `json:"total_count"`
	IncompleteResults bool        `json:"incomplete_results"`
	Items             []*gh.Issue `json:"items"`
}

// WritePayload stores a search payload as indented JSON.
func WritePayload(path string, payload *gh.IssuesSearchResult) error {
	out := exportedPayload{
		Total:             payload.GetTotal(),
		IncompleteResults: payload.GetIncompleteResults(),
		Items:             payload.Issues,
	}
	if out.Items == nil {
		out.Items = []*gh.Issue{}
	}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// ReadPayload decodes a search payload. A payload without an items array
// is rejected; an empty array is valid.
func ReadPayload(r io.Reader) (*gh.IssuesSearchResult, error) {
	var payload exportedPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
	}
	if payload.Items == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, ErrMissingItems)
	}
	return &gh.IssuesSearchResult{
		Total:             gh.Ptr(payload.Total),
		IncompleteResults: gh.Ptr(payload.IncompleteResults),
		Issues:            payload.Items,
	}, nil
}

// ReadPayloadFile decodes the search payload stored at path.
func ReadPayloadFile(path string) (*gh.IssuesSearchResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	defer f.Close()

	payload, err := ReadPayload(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return payload, nil
}
