package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seacliff-health/vitals/internal/fetch"
	"github.com/seacliff-health/vitals/internal/insights"
	"github.com/seacliff-health/vitals/internal/output"
	"github.com/seacliff-health/vitals/internal/score"
)

var (
	scoreFlagRange string
	scoreFlagJSON  bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute and display your health score",
	Long: `Score filters your readings to the lookback window, scores the latest
reading of each metric against fixed clinical thresholds, measures tracking
consistency, and aggregates everything into a 0-100 overall score with a
letter grade and recommendations.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreFlagRange, "range", "", "Lookback window: week, month, or 3months")
	scoreCmd.Flags().BoolVar(&scoreFlagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rng, err := resolveRange(scoreFlagRange, cfg)
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

	if scoreFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	renderScore(res, rng)
	renderInsights(res, snap.History)
	return nil
}

func renderScore(res score.Result, rng score.TimeRange) {
	fmt.Println(output.Section(fmt.Sprintf("Health Score (%s)", rng)))
	fmt.Println()

	if len(res.Components) == 0 {
		fmt.Println(output.StyleMuted.Render(" No readings in this window. Log some with 'vitals log'."))
		fmt.Println()
		return
	}

	fmt.Printf(" %s %s  %s  %s\n\n",
		output.StyleLabel.Render("Overall:"),
		output.ScoreBar(res.OverallScore, 20),
		output.GradeText(res.Grade),
		output.TrendText(res.Trend))

	tbl := output.NewTable("Component", "Score", "Weight", "Status", "Notes").AlignRight(1)
	for _, c := range res.Components {
		tbl.AddRow(
			c.Name,
			fmt.Sprintf("%d", c.Score),
			fmt.Sprintf("%.2f", c.Weight),
			output.StatusText(c.Status),
			c.Description,
		)
	}
	tbl.Print()

	// Recommendations, deduplicated across components.
	seen := make(map[string]bool)
	var recs []string
	for _, c := range res.Components {
		for _, r := range c.Recommendations {
			if !seen[r] {
				seen[r] = true
				recs = append(recs, r)
			}
		}
	}
	if len(recs) > 0 {
		fmt.Println(output.Section("Recommendations"))
		fmt.Println()
		for _, r := range recs {
			fmt.Printf("  %s %s\n", output.StyleWarning.Render("•"), r)
		}
		fmt.Println()
	}
}

func renderInsights(res score.Result, history []int) {
	tracked := trackedTypeNames(res)
	engine := insights.NewEngine()
	results := engine.Run(&insights.Context{
		Result:       res,
		TrackedTypes: tracked,
		History:      history,
	})
	if len(results) == 0 {
		return
	}

	fmt.Println(output.Section("Insights"))
	fmt.Println()
	for _, ins := range results {
		fmt.Printf("  %s %s\n", priorityMarker(ins.Priority), output.StyleBold.Render(ins.Title))
		fmt.Printf("    %s\n", output.StyleMuted.Render(ins.Description))
	}
	fmt.Println()
}

// trackedTypeNames derives which known metric types produced a component,
// matching on display names.
func trackedTypeNames(res score.Result) []string {
	var tracked []string
	for _, c := range res.Components {
		if c.Name == score.ConsistencyName {
			continue
		}
		tracked = append(tracked, strings.ReplaceAll(strings.ToLower(c.Name), " ", "_"))
	}
	return tracked
}

func priorityMarker(p int) string {
	switch p {
	case insights.PriorityCritical:
		return output.StyleError.Render("!!")
	case insights.PriorityHigh:
		return output.StyleWarning.Render(" !")
	default:
		return output.StyleMuted.Render("  ")
	}
}
