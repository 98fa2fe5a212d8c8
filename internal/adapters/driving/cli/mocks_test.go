package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/relnote/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/core/services"
)

// mockReleaseNoteService records the last request.
type mockReleaseNoteService struct {
	result *domain.ReleaseNoteResult
	err    error

	calls       int
	lastSource  driven.DatasetSource
	lastRequest domain.ReleaseNoteRequest
}

func (m *mockReleaseNoteService) Generate(
	_ context.Context, source driven.DatasetSource, req domain.ReleaseNoteRequest,
) (*domain.ReleaseNoteResult, error) {
	m.calls++
	m.lastSource = source
	m.lastRequest = req
	return m.result, m.err
}

func (m *mockReleaseNoteService) Preview(
	ctx context.Context, source driven.DatasetSource, req domain.ReleaseNoteRequest,
) (*domain.ReleaseNoteResult, error) {
	return m.Generate(ctx, source, req)
}

// stubSource returns fixed records.
type stubSource struct {
	name    string
	records []domain.PullRequestRecord
	err     error
}

func (s *stubSource) Fetch(_ context.Context) ([]domain.PullRequestRecord, error) {
	return s.records, s.err
}

func (s *stubSource) Describe() string {
	return s.name
}

// mockSourceFactory records the requested sources.
type mockSourceFactory struct {
	records []domain.PullRequestRecord
	err     error

	lastPath  string
	lastQuery *domain.MilestoneQuery
}

func (m *mockSourceFactory) FromFile(path string) driven.DatasetSource {
	m.lastPath = path
	if path == "" {
		path = defaultExportFile
	}
	return &stubSource{name: path, records: m.records}
}

func (m *mockSourceFactory) FromMilestone(_ context.Context, query domain.MilestoneQuery) (driven.DatasetSource, error) {
	m.lastQuery = &query
	if m.err != nil {
		return nil, m.err
	}
	return &stubSource{
		name:    query.Owner + "/" + query.Repo + " milestone " + query.Milestone,
		records: m.records,
	}, nil
}

// mockAuthorService returns fixed profiles.
type mockAuthorService struct {
	result *domain.AuthorsResult
	err    error

	lastOutputDir string
}

func (m *mockAuthorService) Profiles(
	_ context.Context, _ driven.DatasetSource, outputDir string,
) (*domain.AuthorsResult, error) {
	m.lastOutputDir = outputDir
	return m.result, m.err
}

// mockHistoryService returns fixed runs.
type mockHistoryService struct {
	runs []domain.Run
	err  error

	lastLimit int
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Run, error) {
	m.lastLimit = limit
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.Run, error) {
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// testServices are the mocks installed by setupTestServices.
type testServices struct {
	releaseNote *mockReleaseNoteService
	sources     *mockSourceFactory
	authors     *mockAuthorService
	history     *mockHistoryService
	config      *memory.ConfigStore
}

func sampleResult() *domain.ReleaseNoteResult {
	return &domain.ReleaseNoteResult{
		RunID:     "run-1",
		Milestone: "v2.3.0",
		Counters:  &domain.Counters{Total: 6, Regular: 1, Authors: 2},
		Summary: []string{
			services.SummaryHeading,
			"Total number of pull requests parsed: 6",
		},
		Written: []string{"v2.3.0-release-note.md", "v2.3.0-wontfix.md"},
	}
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// setupTestServices installs mocks and returns a cleanup function that
// restores the previous services and resets every flag.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		releaseNote: &mockReleaseNoteService{result: sampleResult()},
		sources:     &mockSourceFactory{},
		authors:     &mockAuthorService{},
		history: &mockHistoryService{runs: []domain.Run{{
			ID:        "run-1",
			Milestone: "v2.3.0",
			Source:    "acme/widgets milestone v2.3.0",
			Counters:  domain.Counters{Total: 6, Regular: 1},
			Documents: []string{"v2.3.0-release-note.md"},
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}}},
		config: memory.NewConfigStore(),
	}

	rootCmd.SetContext(context.Background())
	resetContexts(rootCmd)

	origReleaseNote := releaseNoteService
	origAuthors := authorService
	origHistory := historyService
	origSettings := settingsService
	origSources := sourceFactory

	SetServices(Services{
		ReleaseNote: ts.releaseNote,
		Authors:     ts.authors,
		History:     ts.history,
		Settings:    services.NewSettingsService(ts.config),
		Sources:     ts.sources,
	})

	return ts, func() {
		releaseNoteService = origReleaseNote
		authorService = origAuthors
		historyService = origHistory
		settingsService = origSettings
		sourceFactory = origSources
		resetFlags(rootCmd)
		rootCmd.SetContext(context.Background())
		resetContexts(rootCmd)
		rootCmd.SetIn(nil)
	}
}

// resetFlags restores every flag of cmd and its subcommands to its
// default, since cobra keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// resetContexts clears the context of every subcommand. Cobra only hands
// the root context down to a subcommand whose context is nil, so a context
// left over from an earlier execution would shadow ExecuteContext.
func resetContexts(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		c.SetContext(nil) //nolint:staticcheck // nil lets cobra inherit the root context
		resetContexts(c)
	}
}
