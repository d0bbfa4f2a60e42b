package score

import (
	"math"
	"time"

	"github.com/seacliff-health/vitals/internal/metrics"
)

// Compute runs one scoring pass over a user's readings: filter to the
// lookback window, score the latest reading of each known type against its
// threshold ladder, add the tracking-consistency component, and aggregate
// into a weighted overall score with a letter grade.
//
// Compute is deterministic given identical readings and a fixed Options.Now.
// An empty window yields Components == nil and OverallScore 0, never an
// error.
func Compute(readings []metrics.Reading, rng TimeRange, opts Options) Result {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	filtered := FilterByRange(readings, rng, now)

	var components []Component
	for _, t := range metrics.KnownTypes {
		latest, found := latestOfType(filtered, t)
		if !found {
			continue
		}
		r, ok := scoreReading(latest)
		if !ok {
			// Unparsable value: the type is silently dropped.
			continue
		}
		components = append(components, Component{
			Name:            metrics.DisplayName(t),
			Score:           r.score,
			Weight:          WeightFor(t),
			Status:          r.status,
			Description:     r.description,
			Recommendations: append([]string(nil), r.recommendations...),
		})
	}

	if c, ok := consistencyComponent(filtered, now); ok {
		components = append(components, c)
	}

	overall := aggregate(components)

	return Result{
		OverallScore: overall,
		Grade:        GradeFor(overall),
		Components:   components,
		Trend:        TrendFor(overall, opts.History),
		LastUpdated:  now,
	}
}

// latestOfType returns the most recently recorded reading of the given type.
// On equal timestamps the earlier list position wins (stable selection).
func latestOfType(readings []metrics.Reading, t metrics.Type) (metrics.Reading, bool) {
	var latest metrics.Reading
	found := false
	for _, r := range readings {
		if r.Type != t {
			continue
		}
		if !found || r.RecordedAt.After(latest.RecordedAt) {
			latest = r
			found = true
		}
	}
	return latest, found
}

// aggregate combines components into the weighted overall score, or 0 when
// the total weight is zero.
func aggregate(components []Component) int {
	var weighted, total float64
	for _, c := range components {
		weighted += float64(c.Score) * c.Weight
		total += c.Weight
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(weighted / total))
}

// GradeFor maps an overall score to its letter grade. The curve is
// intentionally asymmetric (scores 70-79 all map to D); the thresholds are
// fixed product constants.
func GradeFor(overall int) Grade {
	switch {
	case overall >= 97:
		return GradeAPlus
	case overall >= 93:
		return GradeA
	case overall >= 90:
		return GradeBPlus
	case overall >= 87:
		return GradeB
	case overall >= 83:
		return GradeCPlus
	case overall >= 80:
		return GradeC
	case overall >= 70:
		return GradeD
	default:
		return GradeF
	}
}
