package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seacliff-health/vitals/internal/metrics"
	"github.com/seacliff-health/vitals/internal/output"
)

var (
	historyFlagType  string
	historyFlagLimit int
	historyFlagJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded readings",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyFlagType, "type", "", "Only show readings of this metric type")
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 20, "Maximum readings to show (0 = all)")
	historyCmd.Flags().BoolVar(&historyFlagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	user := resolveUser(cfg)

	var readings []metrics.Reading
	if historyFlagType != "" {
		readings, err = db.GetReadingsByType(user, metrics.Type(historyFlagType), historyFlagLimit)
	} else {
		readings, err = db.GetReadings(user)
		if err == nil && historyFlagLimit > 0 && len(readings) > historyFlagLimit {
			readings = readings[:historyFlagLimit]
		}
	}
	if err != nil {
		return fmt.Errorf("loading readings: %w", err)
	}

	if historyFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(readings)
	}

	fmt.Println(output.Section("Reading History"))
	fmt.Println()

	if len(readings) == 0 {
		fmt.Println(output.StyleMuted.Render(" No readings recorded yet."))
		return nil
	}

	tbl := output.NewTable("Recorded", "Metric", "Value")
	for _, r := range readings {
		tbl.AddRow(
			formatRelativeTime(r.RecordedAt),
			metrics.DisplayName(r.Type),
			r.Value,
		)
	}
	tbl.Print()
	return nil
}

// formatRelativeTime converts a timestamp to a human-friendly relative time
// string like "2d ago", "12h ago", "just now".
func formatRelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Hour:
		return "just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
