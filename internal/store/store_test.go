package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seacliff-health/vitals/internal/metrics"
	"github.com/seacliff-health/vitals/internal/score"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertAndGetReadings(t *testing.T) {
	db := testDB(t)
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	id, err := db.InsertReading(metrics.Reading{
		UserID:     "u1",
		Type:       metrics.TypeHeartRate,
		Value:      "72",
		RecordedAt: now,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id, "a missing ID should be assigned")

	_, err = db.InsertReading(metrics.Reading{
		ID:         "r2",
		UserID:     "u1",
		Type:       metrics.TypeSteps,
		Value:      "8500",
		RecordedAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	readings, err := db.GetReadings("u1")
	require.NoError(t, err)
	require.Len(t, readings, 2)

	// Most recent first.
	assert.Equal(t, "r2", readings[0].ID)
	assert.Equal(t, metrics.TypeSteps, readings[0].Type)
	assert.Equal(t, metrics.TypeHeartRate, readings[1].Type)
	assert.Equal(t, "72", readings[1].Value)
	assert.True(t, readings[1].RecordedAt.Equal(now))
}

func TestGetReadings_UserIsolation(t *testing.T) {
	db := testDB(t)
	now := time.Now().UTC().Truncate(time.Second)

	_, err := db.InsertReading(metrics.Reading{UserID: "alice", Type: metrics.TypeSteps, Value: "9000", RecordedAt: now})
	require.NoError(t, err)
	_, err = db.InsertReading(metrics.Reading{UserID: "bob", Type: metrics.TypeSteps, Value: "3000", RecordedAt: now})
	require.NoError(t, err)

	readings, err := db.GetReadings("alice")
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, "9000", readings[0].Value)
}

func TestGetReadingsByType(t *testing.T) {
	db := testDB(t)
	now := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 5; i++ {
		_, err := db.InsertReading(metrics.Reading{
			UserID:     "u1",
			Type:       metrics.TypeHeartRate,
			Value:      "72",
			RecordedAt: now.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}
	_, err := db.InsertReading(metrics.Reading{UserID: "u1", Type: metrics.TypeSteps, Value: "8500", RecordedAt: now})
	require.NoError(t, err)

	readings, err := db.GetReadingsByType("u1", metrics.TypeHeartRate, 3)
	require.NoError(t, err)
	assert.Len(t, readings, 3)
	for _, r := range readings {
		assert.Equal(t, metrics.TypeHeartRate, r.Type)
	}

	all, err := db.GetReadingsByType("u1", metrics.TypeHeartRate, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5, "limit 0 means no limit")
}

func TestDeleteReading(t *testing.T) {
	db := testDB(t)

	id, err := db.InsertReading(metrics.Reading{
		UserID:     "u1",
		Type:       metrics.TypeWeight,
		Value:      "180",
		RecordedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, db.DeleteReading(id))

	readings, err := db.GetReadings("u1")
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func snapshotResult(overall int, grade score.Grade, takenAt time.Time) score.Result {
	return score.Result{
		OverallScore: overall,
		Grade:        grade,
		Trend:        score.TrendStable,
		LastUpdated:  takenAt,
		Components: []score.Component{
			{Name: "Heart Rate", Score: overall, Weight: 0.2, Status: score.StatusGood},
			{Name: score.ConsistencyName, Score: 100, Weight: 0.2, Status: score.StatusExcellent},
		},
	}
}

func TestCreateAndGetSnapshot(t *testing.T) {
	db := testDB(t)
	takenAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	id, err := db.CreateScoreSnapshot("u1", score.RangeWeek, snapshotResult(86, score.GradeCPlus, takenAt), "1.0.0")
	require.NoError(t, err)

	s, err := db.GetSnapshot(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, 86, s.OverallScore)
	assert.Equal(t, "C+", s.Grade)
	assert.Equal(t, string(score.RangeWeek), s.TimeRange)
	assert.True(t, s.TakenAt.Equal(takenAt))

	components, err := db.GetSnapshotComponents(id)
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.Equal(t, "Heart Rate", components[0].Name)
	assert.Equal(t, 0.2, components[0].Weight)
}

func TestGetSnapshot_Missing(t *testing.T) {
	db := testDB(t)

	s, err := db.GetSnapshot(999)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestGetSnapshotN(t *testing.T) {
	db := testDB(t)
	takenAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	for i, overall := range []int{70, 75, 82} {
		_, err := db.CreateScoreSnapshot("u1", score.RangeWeek,
			snapshotResult(overall, score.GradeFor(overall), takenAt.Add(time.Duration(i)*time.Hour)), "1.0.0")
		require.NoError(t, err)
	}

	latest, err := db.GetSnapshotN("u1", score.RangeWeek, 1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 82, latest.OverallScore)

	previous, err := db.GetSnapshotN("u1", score.RangeWeek, 2)
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, 75, previous.OverallScore)

	missing, err := db.GetSnapshotN("u1", score.RangeWeek, 4)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetSnapshotN_RangeIsolation(t *testing.T) {
	db := testDB(t)
	takenAt := time.Now().UTC()

	_, err := db.CreateScoreSnapshot("u1", score.RangeWeek, snapshotResult(80, score.GradeC, takenAt), "1.0.0")
	require.NoError(t, err)

	s, err := db.GetSnapshotN("u1", score.RangeMonth, 1)
	require.NoError(t, err)
	assert.Nil(t, s, "snapshots are scoped per time range")
}

func TestGetScoreHistory_ChronologicalOrder(t *testing.T) {
	db := testDB(t)
	takenAt := time.Now().UTC()

	for i, overall := range []int{60, 65, 70, 75, 80} {
		_, err := db.CreateScoreSnapshot("u1", score.RangeWeek,
			snapshotResult(overall, score.GradeFor(overall), takenAt.Add(time.Duration(i)*time.Hour)), "1.0.0")
		require.NoError(t, err)
	}

	history, err := db.GetScoreHistory("u1", score.RangeWeek, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{70, 75, 80}, history, "most recent n, oldest first")
}

func TestGetRecentSnapshots(t *testing.T) {
	db := testDB(t)
	takenAt := time.Now().UTC()

	for i, overall := range []int{60, 70, 80} {
		_, err := db.CreateScoreSnapshot("u1", score.RangeWeek,
			snapshotResult(overall, score.GradeFor(overall), takenAt.Add(time.Duration(i)*time.Hour)), "1.0.0")
		require.NoError(t, err)
	}

	snapshots, err := db.GetRecentSnapshots("u1", score.RangeWeek, 2)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, 80, snapshots[0].OverallScore)
	assert.Equal(t, 70, snapshots[1].OverallScore)
}
