// Package app contains the Cobra command tree for vitals.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/seacliff-health/vitals/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
	flagUser    string
)

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Track health metrics and score your wellness over time",
	Long: `vitals records timestamped health readings (blood pressure, blood sugar,
heart rate, weight, steps) and derives a composite wellness score: an overall
0-100 value with a letter grade, per-metric sub-scores, tracking consistency,
and recommendations.

Run 'vitals score' after logging some readings to see where you stand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Color off when asked or when stdout is not a terminal.
		if flagNoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			output.SetNoColor(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("vitals", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  log       Record a health reading")
		fmt.Println("  score     Compute and display your health score")
		fmt.Println("  history   List recorded readings")
		fmt.Println("  track     Snapshot your score and compare over time")
		fmt.Println("  import    Bulk-ingest readings from JSON files")
		fmt.Println("  watch     Monitor readings and alert on score regressions")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/vitals/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "User the readings belong to (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
