package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/seacliff-health/vitals/internal/fetch"
	"github.com/seacliff-health/vitals/internal/output"
	"github.com/seacliff-health/vitals/internal/watcher"
)

var (
	watchFlagInterval string
	watchFlagRange    string
	watchFlagQuiet    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor readings and alert on score regressions",
	Long: `Watch periodically recomputes your health score and prints alerts when
something notable changes: the overall score drops, the grade changes, a
component falls to poor, or no new readings have arrived for a while.

Examples:
  vitals watch                  # run in foreground (ctrl-c to stop)
  vitals watch --interval 5m    # check every 5 minutes (default: 10m)`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchFlagInterval, "interval", "", "Check interval as duration string (e.g. 5m, 1h)")
	watchCmd.Flags().StringVar(&watchFlagRange, "range", "", "Lookback window: week, month, or 3months")
	watchCmd.Flags().BoolVar(&watchFlagQuiet, "quiet", false, "Only print alerts, no status lines")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rng, err := resolveRange(watchFlagRange, cfg)
	if err != nil {
		return err
	}

	intervalStr := watchFlagInterval
	if intervalStr == "" {
		intervalStr = cfg.WatchInterval
	}
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", intervalStr, err)
	}
	if interval < 30*time.Second {
		return fmt.Errorf("interval must be at least 30s, got %s", interval)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if !watchFlagQuiet {
		fmt.Printf("vitals watching... (checking every %s)\n", interval)
	}

	alertFn := func(a watcher.Alert) {
		printAlert(a)
	}

	w := watcher.New(fetch.New(db), resolveUser(cfg), rng, interval, alertFn)
	w.DropThreshold = cfg.Alerts.ScoreDrop
	w.StaleAfter = time.Duration(cfg.Alerts.StaleHours) * time.Hour

	// Take the initial snapshot and display the baseline.
	initial, err := w.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("initial snapshot failed: %w", err)
	}

	if !watchFlagQuiet {
		fmt.Printf("[%s] baseline: score %d (%s), %d reading(s)\n",
			time.Now().Format("15:04:05"),
			initial.Result.OverallScore,
			initial.Result.Grade,
			initial.ReadingCount)
	}

	err = w.Run(ctx)
	if err == context.Canceled {
		if !watchFlagQuiet {
			fmt.Println("\nStopped.")
		}
		return nil
	}
	return err
}

// printAlert formats and prints an alert to the terminal.
func printAlert(a watcher.Alert) {
	timestamp := a.Time.Format("15:04:05")
	fmt.Printf("[%s] %s %s\n", timestamp, levelTag(a.Level), a.Title)
	if a.Message != "" {
		fmt.Printf("         %s\n", a.Message)
	}
}

// levelTag returns the styled level indicator for an alert.
func levelTag(level watcher.Level) string {
	switch level {
	case watcher.LevelCritical:
		return output.StyleError.Render("[crit]")
	case watcher.LevelWarning:
		return output.StyleWarning.Render("[warn]")
	default:
		return output.StyleMuted.Render("[info]")
	}
}
