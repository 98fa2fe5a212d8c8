package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/logger"
)

// CriteriaInput holds the four criterion lists shared by both tools.
// Each entry is a label or word, or a comma-joined compound.
type CriteriaInput struct {
	LabelExclude []string `json:"label_exclude,omitempty" jsonschema:"labels whose pull requests are left out of the release note"`
	LabelInclude []string `json:"label_include,omitempty" jsonschema:"labels whose pull requests get a dedicated release note section"`
	WordExclude  []string `json:"word_exclude,omitempty" jsonschema:"title words whose pull requests are left out (case-insensitive)"`
	WordInclude  []string `json:"word_include,omitempty" jsonschema:"title words whose pull requests get a dedicated section (case-insensitive)"`
	Authors      bool     `json:"authors,omitempty" jsonschema:"also render the contributors document"`
	PRNumbers    bool     `json:"pr_numbers,omitempty" jsonschema:"show pull request numbers in links"`
}

func (c CriteriaInput) request(outputDir string) domain.ReleaseNoteRequest {
	return domain.ReleaseNoteRequest{
		Criteria: domain.CriteriaInput{
			LabelExclude: c.LabelExclude,
			LabelInclude: c.LabelInclude,
			WordExclude:  c.WordExclude,
			WordInclude:  c.WordInclude,
		},
		Options: domain.RenderOptions{
			IncludeAuthors: c.Authors,
			ShowPRNumber:   c.PRNumbers,
		},
		OutputDir: outputDir,
	}
}

// ClassifyInput is the input schema for the classify_pull_requests tool.
type ClassifyInput struct {
	Criteria CriteriaInput `json:"criteria,omitempty" jsonschema:"classification criteria"`
	Input    string        `json:"input,omitempty" jsonschema:"path of an exported search payload (default githublist.json)"`
}

// DocumentOutput is one rendered document.
type DocumentOutput struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// ClassifyOutput is the output schema for the classify_pull_requests tool.
type ClassifyOutput struct {
	Milestone string           `json:"milestone,omitempty"`
	Empty     bool             `json:"empty"`
	Summary   []string         `json:"summary"`
	Counters  *domain.Counters `json:"counters,omitempty"`
	Outcomes  []domain.Outcome `json:"outcomes,omitempty"`
	Documents []DocumentOutput `json:"documents,omitempty"`
}

// GenerateInput is the input schema for the generate_release_note tool.
type GenerateInput struct {
	Criteria  CriteriaInput `json:"criteria,omitempty" jsonschema:"classification criteria"`
	Owner     string        `json:"owner,omitempty" jsonschema:"owner of the GitHub repository"`
	Repo      string        `json:"repo,omitempty" jsonschema:"name of the GitHub repository"`
	Milestone string        `json:"milestone,omitempty" jsonschema:"milestone title to fetch pull requests for"`
	Sort      string        `json:"sort,omitempty" jsonschema:"search sort order (default updated-desc)"`
	Input     string        `json:"input,omitempty" jsonschema:"read an exported payload instead of querying GitHub"`
	OutputDir string        `json:"output_dir,omitempty" jsonschema:"directory the documents are written to (default current directory)"`
}

// GenerateOutput is the output schema for the generate_release_note tool.
type GenerateOutput struct {
	RunID     string   `json:"run_id,omitempty"`
	Milestone string   `json:"milestone,omitempty"`
	Empty     bool     `json:"empty"`
	Summary   []string `json:"summary"`
	Written   []string `json:"written,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "classify_pull_requests",
		Description: "Classify the pull requests of an exported milestone payload by label and title word, " +
			"and return the rendered release note documents without writing them",
	}, s.handleClassify)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "generate_release_note",
		Description: "Fetch a GitHub milestone's closed pull requests (or read an exported payload), " +
			"classify them and write the release note documents",
	}, s.handleGenerate)
}

// handleClassify handles the classify_pull_requests tool invocation.
func (s *Server) handleClassify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	source := s.ports.Sources.FromFile(input.Input)

	result, err := s.ports.ReleaseNote.Preview(ctx, source, input.Criteria.request(""))
	if errors.Is(err, domain.ErrEmptyDataset) {
		return nil, ClassifyOutput{Empty: true, Summary: []string{emptyMessage(source)}}, nil
	}
	if err != nil {
		return nil, ClassifyOutput{}, err
	}

	output := ClassifyOutput{
		Milestone: result.Milestone,
		Summary:   result.Summary,
		Counters:  result.Counters,
		Documents: make([]DocumentOutput, len(result.Documents)),
	}
	if result.Partition != nil {
		output.Outcomes = result.Partition.Outcomes
	}
	for i, doc := range result.Documents {
		output.Documents[i] = DocumentOutput{Name: doc.Name, Kind: string(doc.Kind), Content: doc.Content}
	}
	return nil, output, nil
}

// handleGenerate handles the generate_release_note tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	input = s.withSettings(input)

	source, err := s.source(ctx, input)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	result, err := s.ports.ReleaseNote.Generate(ctx, source, input.Criteria.request(input.OutputDir))
	if errors.Is(err, domain.ErrEmptyDataset) {
		return nil, GenerateOutput{Empty: true, Summary: []string{emptyMessage(source)}}, nil
	}
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	return nil, GenerateOutput{
		RunID:     result.RunID,
		Milestone: result.Milestone,
		Summary:   result.Summary,
		Written:   result.Written,
	}, nil
}

// withSettings fills owner, repo, sort and output directory from the
// configured settings when the call leaves them empty.
func (s *Server) withSettings(input GenerateInput) GenerateInput {
	if s.ports.Settings == nil {
		return input
	}
	settings, err := s.ports.Settings.Get()
	if err != nil || settings == nil {
		logger.Warn("mcp: loading settings: %v", err)
		return input
	}

	if input.Owner == "" {
		input.Owner = settings.GitHub.Owner
	}
	if input.Repo == "" {
		input.Repo = settings.GitHub.Repo
	}
	if input.Sort == "" {
		input.Sort = settings.GitHub.Sort
	}
	if input.OutputDir == "" {
		input.OutputDir = settings.Output.Dir
	}
	return input
}

// source picks a payload file when input is given, otherwise a milestone
// search.
func (s *Server) source(ctx context.Context, input GenerateInput) (driven.DatasetSource, error) {
	if input.Input != "" {
		return s.ports.Sources.FromFile(input.Input), nil
	}
	if input.Owner == "" || input.Repo == "" {
		return nil, fmt.Errorf("%w: owner and repo are required (or set github.owner and github.repo)",
			domain.ErrInvalidInput)
	}
	if input.Milestone == "" {
		return nil, fmt.Errorf("%w: either input or milestone is required", domain.ErrInvalidInput)
	}
	return s.ports.Sources.FromMilestone(ctx, domain.MilestoneQuery{
		Owner:     input.Owner,
		Repo:      input.Repo,
		Milestone: input.Milestone,
		Sort:      input.Sort,
	})
}

func emptyMessage(source driven.DatasetSource) string {
	return "No pull requests to parse in " + source.Describe()
}
