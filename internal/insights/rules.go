package insights

import (
	"fmt"
	"strings"

	"github.com/seacliff-health/vitals/internal/metrics"
	"github.com/seacliff-health/vitals/internal/score"
)

// MissingCoreMetrics flags known metric types with no readings in the window.
// Blood pressure and blood sugar carry the largest weights, so their absence
// hides the biggest share of the picture.
func MissingCoreMetrics(ctx *Context) []Insight {
	tracked := make(map[string]bool, len(ctx.TrackedTypes))
	for _, t := range ctx.TrackedTypes {
		tracked[t] = true
	}

	var insights []Insight
	for _, t := range metrics.KnownTypes {
		if tracked[string(t)] {
			continue
		}
		weight := score.WeightFor(t)
		priority := PriorityMedium
		if weight >= 0.25 {
			priority = PriorityHigh
		}
		insights = append(insights, Insight{
			Category: "coverage",
			Priority: priority,
			Title:    fmt.Sprintf("Start tracking %s", strings.ToLower(metrics.DisplayName(t))),
			Description: fmt.Sprintf(
				"No %s readings in the current window. This metric carries %.0f%% of the "+
					"overall score weight, so tracking it gives a much fuller picture of your health.",
				strings.ToLower(metrics.DisplayName(t)), weight*100,
			),
			ImpactScore: weight * 100,
		})
	}
	return insights
}

// PoorComponents surfaces components whose status fell to poor.
func PoorComponents(ctx *Context) []Insight {
	var insights []Insight
	for _, c := range ctx.Result.Components {
		if c.Status != score.StatusPoor {
			continue
		}
		insights = append(insights, Insight{
			Category: "health",
			Priority: PriorityCritical,
			Title:    fmt.Sprintf("%s needs attention", c.Name),
			Description: fmt.Sprintf(
				"%s scored %d/100 (%s). %s",
				c.Name, c.Score, c.Status, strings.Join(c.Recommendations, " "),
			),
			ImpactScore: Impact(80-c.Score, c.Weight),
		})
	}
	return insights
}

// LowConsistency suggests a tracking routine when the consistency component
// is below fair.
func LowConsistency(ctx *Context) []Insight {
	for _, c := range ctx.Result.Components {
		if c.Name != score.ConsistencyName || c.Score >= 60 {
			continue
		}
		return []Insight{{
			Category: "habit",
			Priority: PriorityMedium,
			Title:    "Make tracking a daily habit",
			Description: fmt.Sprintf(
				"You logged readings on too few days recently (consistency %d/100). "+
					"Regular readings make every other score more trustworthy.",
				c.Score,
			),
			ImpactScore: Impact(80-c.Score, c.Weight),
		}}
	}
	return nil
}

// DecliningTrend warns when the overall score is trending down.
func DecliningTrend(ctx *Context) []Insight {
	if ctx.Result.Trend != score.TrendDeclining {
		return nil
	}
	return []Insight{{
		Category: "trend",
		Priority: PriorityHigh,
		Title:    "Your overall score is declining",
		Description: fmt.Sprintf(
			"The current score of %d is below your recent average. "+
				"Review the components marked fair or poor to see what changed.",
			ctx.Result.OverallScore,
		),
		ImpactScore: 50,
	}}
}
