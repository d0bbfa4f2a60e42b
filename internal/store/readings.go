package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/seacliff-health/vitals/internal/metrics"
)

// InsertReading stores a reading. A missing ID is assigned a fresh UUID;
// the assigned ID is returned.
func (db *DB) InsertReading(r metrics.Reading) (string, error) {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := db.conn.Exec(
		"INSERT INTO readings (id, user_id, metric_type, value, recorded_at) VALUES (?, ?, ?, ?, ?)",
		id, r.UserID, string(r.Type), r.Value, r.RecordedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetReadings returns all readings for a user, most recent first.
func (db *DB) GetReadings(userID string) ([]metrics.Reading, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, metric_type, value, recorded_at
		 FROM readings WHERE user_id = ? ORDER BY recorded_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var readings []metrics.Reading
	for rows.Next() {
		var r metrics.Reading
		var typ, recordedAt string
		if err := rows.Scan(&r.ID, &r.UserID, &typ, &r.Value, &recordedAt); err != nil {
			return nil, err
		}
		r.Type = metrics.Type(typ)
		r.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

// GetReadingsByType returns a user's readings of one type, most recent first,
// limited to n (0 = no limit).
func (db *DB) GetReadingsByType(userID string, t metrics.Type, n int) ([]metrics.Reading, error) {
	q := `SELECT id, user_id, metric_type, value, recorded_at
	      FROM readings WHERE user_id = ? AND metric_type = ? ORDER BY recorded_at DESC`
	args := []any{userID, string(t)}
	if n > 0 {
		q += " LIMIT ?"
		args = append(args, n)
	}

	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var readings []metrics.Reading
	for rows.Next() {
		var r metrics.Reading
		var typ, recordedAt string
		if err := rows.Scan(&r.ID, &r.UserID, &typ, &r.Value, &recordedAt); err != nil {
			return nil, err
		}
		r.Type = metrics.Type(typ)
		r.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

// DeleteReading removes a reading by ID.
func (db *DB) DeleteReading(id string) error {
	_, err := db.conn.Exec("DELETE FROM readings WHERE id = ?", id)
	return err
}
