// Command relnote builds Markdown release notes from GitHub milestones.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/relnote/internal/adapters/driven/auth"
	"github.com/custodia-labs/relnote/internal/adapters/driven/config/file"
	"github.com/custodia-labs/relnote/internal/adapters/driven/output/markdown"
	"github.com/custodia-labs/relnote/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relnote/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/relnote/internal/adapters/driving/cli"
	"github.com/custodia-labs/relnote/internal/connectors/github"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/core/services"
	"github.com/custodia-labs/relnote/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	closeServices := setup()
	defer closeServices()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		closeServices()
		os.Exit(1)
	}
}

// setup wires the adapters into the services and returns a function
// releasing them.
func setup() func() {
	configDir, err := file.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	var config driven.ConfigStore
	fileConfig, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config unavailable, using defaults: %v\n", err)
		config = memory.NewConfigStore()
	} else {
		config = fileConfig
	}

	settingsService := services.NewSettingsService(config)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}

	runs := openRunStore(settings.History.Enabled, configDir)

	factory := github.NewFactory(auth.NewResolver(config))
	writer := markdown.NewWriter()

	cli.SetServices(cli.Services{
		ReleaseNote: services.NewReleaseNoteService(writer, runs),
		Authors:     services.NewAuthorService(factory.Authors(""), writer),
		History:     services.NewHistoryService(runs),
		Settings:    settingsService,
		Sources:     factory,
	})

	closed := false
	return func() {
		if closed || runs == nil {
			return
		}
		closed = true
		if err := runs.Close(); err != nil {
			logger.Warn("Closing run history: %v", err)
		}
	}
}

// openRunStore opens the SQLite history, falling back to an in-memory
// store when the database cannot be opened. Returns nil when history is
// disabled.
func openRunStore(enabled bool, configDir string) driven.RunStore {
	if !enabled {
		return nil
	}

	dataDir := ""
	if configDir != "" {
		dataDir = filepath.Join(configDir, "data")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: run history kept in memory only: %v\n", err)
		return memory.NewRunStore()
	}
	return store
}
