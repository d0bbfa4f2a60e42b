package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/seacliff-health/vitals/internal/metrics"
	"github.com/seacliff-health/vitals/internal/output"
)

var importFlagDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file.json>...",
	Short: "Bulk-ingest readings from JSON files",
	Long: `Import reads exported reading files and stores their entries. Each file
holds a JSON array of readings:

  [{"type": "heart_rate", "value": "72", "recorded_at": "2026-08-01T08:30:00Z"}]

Rows without a parseable timestamp or type are skipped and counted. Files are
parsed concurrently; a failing file does not abort the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlagDryRun, "dry-run", false, "Parse and report without writing to the database")
	rootCmd.AddCommand(importCmd)
}

// importedReading is the wire form of one exported reading.
type importedReading struct {
	Type       string `json:"type"`
	Value      string `json:"value"`
	RecordedAt string `json:"recorded_at"`
	UserID     string `json:"user_id,omitempty"`
}

// fileReport summarizes one parsed file.
type fileReport struct {
	Path     string
	Readings []metrics.Reading
	Skipped  int
	Err      error
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	user := resolveUser(cfg)

	// Parse all files concurrently; each goroutine owns its slot.
	reports := make([]fileReport, len(args))

	var g errgroup.Group
	g.SetLimit(4)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			reports[i] = parseImportFile(path, user)
			return nil
		})
	}
	_ = g.Wait()

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	total, skipped, failed := 0, 0, 0
	for _, rep := range reports {
		if rep.Err != nil {
			failed++
			fmt.Printf(" %s %s: %v\n", output.StyleError.Render("failed"), rep.Path, rep.Err)
			continue
		}
		if !importFlagDryRun {
			for _, r := range rep.Readings {
				if _, err := db.InsertReading(r); err != nil {
					return fmt.Errorf("storing reading from %s: %w", rep.Path, err)
				}
			}
		}
		total += len(rep.Readings)
		skipped += rep.Skipped
		fmt.Printf(" %s %s: %d reading(s), %d skipped\n",
			output.StyleSuccess.Render("ok"), rep.Path, len(rep.Readings), rep.Skipped)
	}

	fmt.Println()
	verb := "Imported"
	if importFlagDryRun {
		verb = "Parsed"
	}
	fmt.Printf(" %s %d reading(s) from %d file(s); %d row(s) skipped, %d file(s) failed\n",
		verb, total, len(args), skipped, failed)

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed to import", failed)
	}
	return nil
}

// parseImportFile reads and validates one export file. Unusable rows are
// skipped, not fatal.
func parseImportFile(path, defaultUser string) fileReport {
	report := fileReport{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		report.Err = err
		return report
	}

	var rows []importedReading
	if err := json.Unmarshal(data, &rows); err != nil {
		report.Err = fmt.Errorf("parsing JSON: %w", err)
		return report
	}

	for _, row := range rows {
		if row.Type == "" || row.Value == "" {
			report.Skipped++
			continue
		}
		recordedAt, err := time.Parse(time.RFC3339, row.RecordedAt)
		if err != nil {
			report.Skipped++
			continue
		}
		userID := row.UserID
		if userID == "" {
			userID = defaultUser
		}
		report.Readings = append(report.Readings, metrics.Reading{
			UserID:     userID,
			Type:       metrics.Type(row.Type),
			Value:      row.Value,
			RecordedAt: recordedAt,
		})
	}
	return report
}
