package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhbw-labs/academic-assistant/internal/adapters/driven/storage/sqlite"
	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/logger"
)

var datasetStatsJSON bool

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect and convert the dataset",
}

var datasetImportCmd = &cobra.Command{
	Use:   "import [target.db]",
	Short: "Write the loaded dataset into a SQLite snapshot",
	Long: `Loads the configured dataset (--dataset or dataset.path) and writes it
into a SQLite snapshot. An existing snapshot at the target is replaced.
Point dataset.path at the snapshot afterwards to serve from it.`,
	Args: cobra.ExactArgs(1),
	RunE: runDatasetImport,
}

var datasetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show table sizes of the loaded dataset",
	Args:  cobra.NoArgs,
	RunE:  runDatasetStats,
}

func init() {
	datasetStatsCmd.Flags().BoolVar(&datasetStatsJSON, "json", false, "output as JSON")
	datasetCmd.AddCommand(datasetImportCmd)
	datasetCmd.AddCommand(datasetStatsCmd)
	rootCmd.AddCommand(datasetCmd)
}

func runDatasetImport(cmd *cobra.Command, args []string) error {
	target := args[0]
	if !sqlite.IsSnapshotPath(target) {
		return fmt.Errorf("%w: target must end in .db, .sqlite or .sqlite3", domain.ErrInvalidInput)
	}

	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}
	if activeDataset == nil {
		return errors.New("dataset not loaded")
	}

	store, err := sqlite.NewStore(target)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(cmd.Context(), activeDataset); err != nil {
		return fmt.Errorf("importing dataset: %w", err)
	}

	logger.Info("snapshot written to %s", store.Path())
	stats := activeDataset.Stats()
	cmd.Printf("Imported %d students, %d professors and %d grades into %s\n",
		stats.Students, stats.Professors, stats.Grades, store.Path())
	return nil
}

func runDatasetStats(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	stats := queryService.Stats(cmd.Context())

	if datasetStatsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Dataset")
	cmd.Println("=======")
	cmd.Printf("  Students:     %d\n", stats.Students)
	cmd.Printf("  Professors:   %d\n", stats.Professors)
	cmd.Printf("  Grades:       %d\n", stats.Grades)
	cmd.Printf("  Lectures:     %d\n", stats.Lectures)
	cmd.Printf("  Courses:      %d\n", stats.Courses)
	cmd.Printf("  Syllabi:      %d\n", stats.Syllabi)
	cmd.Printf("  News:         %d\n", stats.News)
	cmd.Printf("  Publications: %d\n", stats.Publications)
	cmd.Printf("  Events:       %d\n", stats.Events)
	return nil
}
