package store

import (
	"database/sql"
	"time"

	"github.com/seacliff-health/vitals/internal/score"
)

// CreateScoreSnapshot persists the aggregate outcome of a scoring pass and
// its component sub-scores, returning the snapshot ID.
func (db *DB) CreateScoreSnapshot(userID string, rng score.TimeRange, res score.Result, version string) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO score_snapshots (user_id, taken_at, time_range, overall_score, grade, trend, version)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, res.LastUpdated.UTC().Format(time.RFC3339), string(rng),
		res.OverallScore, string(res.Grade), string(res.Trend), version,
	)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, c := range res.Components {
		if _, err := tx.Exec(
			"INSERT INTO score_components (snapshot_id, name, score, weight, status) VALUES (?, ?, ?, ?, ?)",
			id, c.Name, c.Score, c.Weight, string(c.Status),
		); err != nil {
			return 0, err
		}
	}

	return id, tx.Commit()
}

// GetSnapshot returns a snapshot by ID, or nil if absent.
func (db *DB) GetSnapshot(id int64) (*ScoreSnapshot, error) {
	row := db.conn.QueryRow(
		`SELECT id, user_id, taken_at, time_range, overall_score, grade, trend, version
		 FROM score_snapshots WHERE id = ?`, id)
	return scanSnapshot(row)
}

// GetSnapshotN returns a user's Nth most recent snapshot for a range
// (1 = latest, 2 = previous, ...), or nil if none exist.
func (db *DB) GetSnapshotN(userID string, rng score.TimeRange, n int) (*ScoreSnapshot, error) {
	row := db.conn.QueryRow(
		`SELECT id, user_id, taken_at, time_range, overall_score, grade, trend, version
		 FROM score_snapshots WHERE user_id = ? AND time_range = ?
		 ORDER BY id DESC LIMIT 1 OFFSET ?`,
		userID, string(rng), n-1,
	)
	return scanSnapshot(row)
}

func scanSnapshot(row *sql.Row) (*ScoreSnapshot, error) {
	var s ScoreSnapshot
	var takenAt string
	err := row.Scan(&s.ID, &s.UserID, &takenAt, &s.TimeRange, &s.OverallScore, &s.Grade, &s.Trend, &s.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// GetRecentSnapshots returns a user's n most recent snapshots for a range,
// newest first.
func (db *DB) GetRecentSnapshots(userID string, rng score.TimeRange, n int) ([]ScoreSnapshot, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, taken_at, time_range, overall_score, grade, trend, version
		 FROM score_snapshots WHERE user_id = ? AND time_range = ?
		 ORDER BY id DESC LIMIT ?`,
		userID, string(rng), n,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snapshots []ScoreSnapshot
	for rows.Next() {
		var s ScoreSnapshot
		var takenAt string
		if err := rows.Scan(&s.ID, &s.UserID, &takenAt, &s.TimeRange, &s.OverallScore, &s.Grade, &s.Trend, &s.Version); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// GetScoreHistory returns a user's overall scores for a range, oldest first,
// limited to the n most recent. This feeds the trend computation.
func (db *DB) GetScoreHistory(userID string, rng score.TimeRange, n int) ([]int, error) {
	rows, err := db.conn.Query(
		`SELECT overall_score FROM score_snapshots
		 WHERE user_id = ? AND time_range = ? ORDER BY id DESC LIMIT ?`,
		userID, string(rng), n,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scores []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse to chronological order.
	for i, j := 0, len(scores)-1; i < j; i, j = i+1, j-1 {
		scores[i], scores[j] = scores[j], scores[i]
	}
	return scores, nil
}

// GetSnapshotComponents returns the component sub-scores for a snapshot.
func (db *DB) GetSnapshotComponents(snapshotID int64) ([]SnapshotComponent, error) {
	rows, err := db.conn.Query(
		"SELECT id, snapshot_id, name, score, weight, status FROM score_components WHERE snapshot_id = ?",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var components []SnapshotComponent
	for rows.Next() {
		var c SnapshotComponent
		if err := rows.Scan(&c.ID, &c.SnapshotID, &c.Name, &c.Score, &c.Weight, &c.Status); err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, rows.Err()
}
