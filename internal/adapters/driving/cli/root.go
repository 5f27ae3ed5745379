// Package cli provides the cobra command tree of the academic assistant.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhbw-labs/academic-assistant/internal/adapters/driven/config/file"
	datasetfile "github.com/dhbw-labs/academic-assistant/internal/adapters/driven/storage/file"
	"github.com/dhbw-labs/academic-assistant/internal/adapters/driven/storage/sqlite"
	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/core/ports/driven"
	"github.com/dhbw-labs/academic-assistant/internal/core/ports/driving"
	"github.com/dhbw-labs/academic-assistant/internal/core/services"
	"github.com/dhbw-labs/academic-assistant/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flag values.
var (
	configPath  string
	datasetPath string
	verbose     bool
)

// Effective state shared by the commands. Tests inject services directly;
// otherwise they are built on first use from the configured dataset.
var (
	settings        = domain.DefaultSettings()
	settingsStore   driven.SettingsStore
	activeDataset   *domain.Dataset
	queryService    driving.QueryService
	resourceService driving.ResourceService
)

var rootCmd = &cobra.Command{
	Use:   "academic-assistant",
	Short: "DHBW academic data assistant",
	Long: `Answers questions about students, grades, schedules, professors,
courses, news and events from a read-only academic dataset.

Run "academic-assistant mcp serve" to expose the data to an MCP host, or use
the query commands to inspect it from the terminal.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.academic-assistant/config.toml)")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "dataset file (.json, .yaml, .db); empty uses the built-in sample")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute(ctx context.Context, v string) error {
	if v != "" {
		version = v
	}
	defer logger.Sync()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// openSettingsStore and datasetLoaderFor build the driven adapters; tests
// replace them with in-memory implementations.
var (
	openSettingsStore = func(path string) (driven.SettingsStore, error) {
		return file.NewSettingsStore(path)
	}
	datasetLoaderFor = defaultDatasetLoader
)

// loadSettings reads the config file and applies flag overrides.
func loadSettings(cmd *cobra.Command, _ []string) error {
	store, err := openSettingsStore(configPath)
	if err != nil {
		return err
	}
	settingsStore = store

	loaded, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("dataset") {
		loaded.Dataset.Path = datasetPath
	}
	if cmd.Flags().Changed("verbose") {
		loaded.Log.Verbose = verbose
	}

	settings = loaded
	logger.SetVerbose(settings.Log.Verbose)
	return nil
}

// ensureServices loads the dataset and builds the services unless they
// were injected already.
func ensureServices(ctx context.Context) error {
	if queryService != nil && resourceService != nil {
		return nil
	}

	path := settings.Dataset.Path
	logger.Debugw("loading dataset", logger.FieldPath, path)

	ds, err := datasetLoaderFor(path).Load(ctx)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	for _, ref := range ds.DanglingProfessors() {
		logger.Warnw("dangling professor reference",
			"table", ref.Table, "key", ref.Key, "prof_id", ref.ProfID)
	}

	activeDataset = ds
	queryService = services.NewQueryService(ds)
	resourceService = services.NewResourceService(ds)
	return nil
}

// defaultDatasetLoader picks a loader by file extension.
func defaultDatasetLoader(path string) driven.DatasetLoader {
	if sqlite.IsSnapshotPath(path) {
		return snapshotLoader{path: path}
	}
	return datasetfile.NewDatasetLoader(path)
}

// snapshotLoader opens a SQLite snapshot only for the duration of Load.
type snapshotLoader struct {
	path string
}

func (l snapshotLoader) Load(ctx context.Context) (*domain.Dataset, error) {
	// NewStore creates missing files.
	if _, err := os.Stat(l.path); err != nil {
		return nil, err
	}

	store, err := sqlite.NewStore(l.path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Load(ctx)
}
