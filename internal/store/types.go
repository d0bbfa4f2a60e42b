// Package store provides SQLite persistence for readings and score snapshots.
package store

import "time"

// ScoreSnapshot is a persisted record of one scoring pass. Only the
// aggregate outcome is stored; full component detail (descriptions,
// recommendations) is ephemeral and recomputed on demand.
type ScoreSnapshot struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	TakenAt      time.Time `json:"taken_at"`
	TimeRange    string    `json:"time_range"`
	OverallScore int       `json:"overall_score"`
	Grade        string    `json:"grade"`
	Trend        string    `json:"trend"`
	Version      string    `json:"version"`
}

// SnapshotComponent is a persisted sub-score row within a snapshot.
type SnapshotComponent struct {
	ID         int64   `json:"id"`
	SnapshotID int64   `json:"snapshot_id"`
	Name       string  `json:"name"`
	Score      int     `json:"score"`
	Weight     float64 `json:"weight"`
	Status     string  `json:"status"`
}

// SnapshotDiff is the comparison between two score snapshots.
type SnapshotDiff struct {
	Previous *ScoreSnapshot   `json:"previous"`
	Current  *ScoreSnapshot   `json:"current"`
	Deltas   []ComponentDelta `json:"deltas"`
}

// ComponentDelta is the change in one sub-score between snapshots.
type ComponentDelta struct {
	Name      string `json:"name"`
	Previous  int    `json:"previous"`
	Current   int    `json:"current"`
	Delta     int    `json:"delta"`
	Direction string `json:"direction"` // "improved", "regressed", "unchanged"
}
