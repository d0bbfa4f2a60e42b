package score

import (
	"time"

	"github.com/seacliff-health/vitals/internal/metrics"
)

// FilterByRange returns the readings recorded at or after the cutoff for the
// given range: 7 days, 1 calendar month, or 3 calendar months before now.
// An empty result is valid and propagates to the "no data" state downstream.
func FilterByRange(readings []metrics.Reading, rng TimeRange, now time.Time) []metrics.Reading {
	var cutoff time.Time
	switch rng {
	case RangeMonth:
		cutoff = now.AddDate(0, -1, 0)
	case RangeThreeMonths:
		cutoff = now.AddDate(0, -3, 0)
	default: // RangeWeek
		cutoff = now.AddDate(0, 0, -7)
	}

	var filtered []metrics.Reading
	for _, r := range readings {
		if !r.RecordedAt.Before(cutoff) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
