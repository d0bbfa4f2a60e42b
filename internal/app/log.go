package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seacliff-health/vitals/internal/metrics"
	"github.com/seacliff-health/vitals/internal/output"
)

var logFlagAt string

var logCmd = &cobra.Command{
	Use:   "log <type> <value>",
	Short: "Record a health reading",
	Long: `Log records a single timestamped reading. Values are free-form and
metric-specific: blood pressure as systolic/diastolic ("118/76"), everything
else numeric ("72", "72 bpm", "8500").

Examples:
  vitals log blood_pressure 118/76
  vitals log heart_rate 72
  vitals log steps 8500 --at 2026-08-20`,
	Args: cobra.ExactArgs(2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logFlagAt, "at", "", "Timestamp of the reading (RFC3339 or YYYY-MM-DD, default: now)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	metricType := metrics.Type(args[0])
	value := args[1]

	recordedAt := time.Now()
	if logFlagAt != "" {
		recordedAt, err = parseTimestamp(logFlagAt)
		if err != nil {
			return fmt.Errorf("invalid --at value %q: %w", logFlagAt, err)
		}
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.InsertReading(metrics.Reading{
		UserID:     resolveUser(cfg),
		Type:       metricType,
		Value:      value,
		RecordedAt: recordedAt,
	}); err != nil {
		return fmt.Errorf("storing reading: %w", err)
	}

	fmt.Printf(" %s %s = %s (%s)\n",
		output.StyleSuccess.Render("Logged"),
		metrics.DisplayName(metricType), value,
		recordedAt.Format("2006-01-02 15:04"))

	if !metricType.IsKnown() {
		fmt.Println(output.StyleMuted.Render(
			" Note: unrecognized metric type; stored but excluded from scoring."))
	}

	return nil
}

// parseTimestamp accepts RFC3339 or date-only timestamps.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
