package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seacliff-health/vitals/internal/fetch"
	"github.com/seacliff-health/vitals/internal/output"
	"github.com/seacliff-health/vitals/internal/score"
	"github.com/seacliff-health/vitals/internal/store"
)

var (
	trackFlagRange string
	trackFlagJSON  bool
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot your score and compare over time",
	Long: `Track computes the current health score, stores it as a snapshot, and
compares against the previous snapshot for the same range, showing per-
component deltas with trend arrows.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackFlagRange, "range", "", "Lookback window: week, month, or 3months")
	trackCmd.Flags().BoolVar(&trackFlagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rng, err := resolveRange(trackFlagRange, cfg)
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	user := resolveUser(cfg)
	fetcher := fetch.New(db)
	snap, err := fetcher.Fetch(context.Background(), user, rng)
	if err != nil {
		return err
	}

	res := score.Compute(snap.Readings, rng, score.Options{History: snap.History})

	// Load the previous snapshot before persisting the new one.
	prev, err := db.GetSnapshotN(user, rng, 1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	snapshotID, err := db.CreateScoreSnapshot(user, rng, res, appVersion)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	current, err := db.GetSnapshot(snapshotID)
	if err != nil {
		return fmt.Errorf("loading current snapshot: %w", err)
	}

	var diff *store.SnapshotDiff
	if prev != nil {
		prevComponents, err := db.GetSnapshotComponents(prev.ID)
		if err != nil {
			return fmt.Errorf("loading previous components: %w", err)
		}
		diff = &store.SnapshotDiff{
			Previous: prev,
			Current:  current,
			Deltas:   componentDeltas(prevComponents, res.Components),
		}
	}

	if trackFlagJSON || flagJSON {
		result := map[string]any{"snapshot": current, "result": res}
		if diff != nil {
			result["diff"] = diff
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderTrack(current, res, diff)
	return nil
}

// componentDeltas compares persisted previous components against the fresh
// result, by component name.
func componentDeltas(prev []store.SnapshotComponent, curr []score.Component) []store.ComponentDelta {
	prevMap := make(map[string]int, len(prev))
	for _, c := range prev {
		prevMap[c.Name] = c.Score
	}

	var deltas []store.ComponentDelta
	for _, c := range curr {
		prevScore, known := prevMap[c.Name]
		delta := c.Score - prevScore

		direction := "unchanged"
		if known && delta > 0 {
			direction = "improved"
		} else if known && delta < 0 {
			direction = "regressed"
		}

		deltas = append(deltas, store.ComponentDelta{
			Name:      c.Name,
			Previous:  prevScore,
			Current:   c.Score,
			Delta:     delta,
			Direction: direction,
		})
	}
	return deltas
}

func renderTrack(current *store.ScoreSnapshot, res score.Result, diff *store.SnapshotDiff) {
	fmt.Println(output.Section("Track: Score Snapshot"))
	fmt.Println()
	fmt.Printf(" Snapshot #%d taken at %s\n", current.ID, current.TakenAt.Format("2006-01-02 15:04:05"))
	fmt.Printf(" %s %s  %s  %s\n\n",
		output.StyleLabel.Render("Overall:"),
		output.ScoreBar(res.OverallScore, 20),
		output.GradeText(res.Grade),
		output.TrendText(res.Trend))

	if diff == nil {
		fmt.Println(" First snapshot recorded. Run 'vitals track' again later to see trends.")
		return
	}

	fmt.Printf(" Comparing against snapshot #%d (%s)\n\n",
		diff.Previous.ID, diff.Previous.TakenAt.Format("2006-01-02 15:04:05"))

	overallDelta := current.OverallScore - diff.Previous.OverallScore
	fmt.Printf(" %s %d → %d  %s\n\n",
		output.StyleLabel.Render("Overall change:"),
		diff.Previous.OverallScore, current.OverallScore,
		output.TrendArrow(overallDelta))

	tbl := output.NewTable("Component", "Previous", "Current", "Trend").AlignRight(1, 2)
	for _, d := range diff.Deltas {
		tbl.AddRow(
			d.Name,
			fmt.Sprintf("%d", d.Previous),
			fmt.Sprintf("%d", d.Current),
			output.TrendArrow(d.Delta),
		)
	}
	tbl.Print()
}
