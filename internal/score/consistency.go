package score

import (
	"math"
	"time"

	"github.com/seacliff-health/vitals/internal/metrics"
)

// Consistency recommendation lists.
var (
	consistencyRecsFair = []string{
		"Set daily reminders to log your readings",
		"Track at a consistent time each day",
	}
	consistencyRecsPoor = []string{
		"Establish a daily tracking routine",
		"Use notifications to remember logging",
		"Start with tracking just one metric",
	}
)

// consistencyComponent builds the synthetic tracking-consistency component
// from the pooled filtered readings. The rate is the fraction of calendar
// days in the window with at least one reading.
//
// The window denominator is min(30, days between now and the chronologically
// earliest reading), floored at 1 so a first-day tracker scores on the days
// actually available. ok is false for an empty list: no readings means no
// consistency component.
func consistencyComponent(readings []metrics.Reading, now time.Time) (Component, bool) {
	if len(readings) == 0 {
		return Component{}, false
	}

	days := make(map[string]struct{}, len(readings))
	earliest := readings[0].RecordedAt
	for _, r := range readings {
		days[r.RecordedAt.Format("2006-01-02")] = struct{}{}
		if r.RecordedAt.Before(earliest) {
			earliest = r.RecordedAt
		}
	}

	span := int(now.Sub(earliest).Hours() / 24)
	denominator := span
	if denominator > 30 {
		denominator = 30
	}
	if denominator < 1 {
		denominator = 1
	}

	rate := float64(len(days)) / float64(denominator) * 100
	if rate > 100 {
		rate = 100
	}

	c := Component{
		Name:   ConsistencyName,
		Score:  int(math.Round(rate)),
		Weight: consistencyWeight,
	}

	switch {
	case rate >= 80:
		c.Status = StatusExcellent
		c.Description = "Tracking nearly every day"
	case rate >= 60:
		c.Status = StatusGood
		c.Description = "Tracking most days"
	case rate >= 40:
		c.Status = StatusFair
		c.Description = "Tracking is irregular"
		c.Recommendations = append([]string(nil), consistencyRecsFair...)
	default:
		c.Status = StatusPoor
		c.Description = "Tracking is sparse"
		c.Recommendations = append([]string(nil), consistencyRecsPoor...)
	}

	return c, true
}
