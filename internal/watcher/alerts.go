package watcher

import (
	"fmt"
	"time"

	"github.com/seacliff-health/vitals/internal/score"
)

// Alert levels.
type Level string

const (
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

// Alert represents a notable event detected by the watcher.
type Alert struct {
	Level   Level
	Title   string
	Message string
	Time    time.Time
}

// Compare inspects two consecutive states and returns alerts for notable
// changes: an overall score drop past the threshold, a grade change, and
// components newly fallen to poor.
func Compare(prev, curr *State, dropThreshold int) []Alert {
	var alerts []Alert
	now := curr.Timestamp

	drop := prev.Result.OverallScore - curr.Result.OverallScore
	if dropThreshold > 0 && drop >= dropThreshold {
		level := LevelWarning
		if drop >= 2*dropThreshold {
			level = LevelCritical
		}
		alerts = append(alerts, Alert{
			Level:   level,
			Title:   "Health score dropped",
			Message: fmt.Sprintf("Overall score fell from %d to %d", prev.Result.OverallScore, curr.Result.OverallScore),
			Time:    now,
		})
	}

	if prev.Result.Grade != curr.Result.Grade {
		level := LevelInfo
		if curr.Result.OverallScore < prev.Result.OverallScore {
			level = LevelWarning
		}
		alerts = append(alerts, Alert{
			Level:   level,
			Title:   "Grade changed",
			Message: fmt.Sprintf("Grade moved from %s to %s", prev.Result.Grade, curr.Result.Grade),
			Time:    now,
		})
	}

	// Components newly at poor.
	prevPoor := make(map[string]bool)
	for _, c := range prev.Result.Components {
		if c.Status == score.StatusPoor {
			prevPoor[c.Name] = true
		}
	}
	for _, c := range curr.Result.Components {
		if c.Status == score.StatusPoor && !prevPoor[c.Name] {
			alerts = append(alerts, Alert{
				Level:   LevelCritical,
				Title:   fmt.Sprintf("%s fell to poor", c.Name),
				Message: fmt.Sprintf("%s scored %d/100: %s", c.Name, c.Score, c.Description),
				Time:    now,
			})
		}
	}

	if curr.ReadingCount > prev.ReadingCount {
		alerts = append(alerts, Alert{
			Level:   LevelInfo,
			Title:   "New readings logged",
			Message: fmt.Sprintf("%d new reading(s) since last check", curr.ReadingCount-prev.ReadingCount),
			Time:    now,
		})
	}

	return alerts
}
