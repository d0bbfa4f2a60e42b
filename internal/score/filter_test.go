package score

import (
	"testing"
	"time"

	"github.com/seacliff-health/vitals/internal/metrics"
)

func TestFilterByRange(t *testing.T) {
	readings := []metrics.Reading{
		reading(metrics.TypeSteps, "8000", testNow.Add(-time.Hour)),
		reading(metrics.TypeSteps, "8000", testNow.AddDate(0, 0, -6)),
		reading(metrics.TypeSteps, "8000", testNow.AddDate(0, 0, -20)),
		reading(metrics.TypeSteps, "8000", testNow.AddDate(0, -2, 0)),
		reading(metrics.TypeSteps, "8000", testNow.AddDate(0, -6, 0)),
	}

	tests := []struct {
		rng  TimeRange
		want int
	}{
		{RangeWeek, 2},
		{RangeMonth, 3},
		{RangeThreeMonths, 4},
	}

	for _, tc := range tests {
		t.Run(string(tc.rng), func(t *testing.T) {
			got := FilterByRange(readings, tc.rng, testNow)
			if len(got) != tc.want {
				t.Errorf("FilterByRange(%s) kept %d readings, want %d", tc.rng, len(got), tc.want)
			}
		})
	}
}

func TestFilterByRange_CutoffInclusive(t *testing.T) {
	// A reading recorded exactly at the cutoff is kept.
	readings := []metrics.Reading{
		reading(metrics.TypeSteps, "8000", testNow.AddDate(0, 0, -7)),
	}

	got := FilterByRange(readings, RangeWeek, testNow)
	if len(got) != 1 {
		t.Errorf("expected the boundary reading to be kept, got %d readings", len(got))
	}
}

func TestFilterByRange_Empty(t *testing.T) {
	if got := FilterByRange(nil, RangeWeek, testNow); len(got) != 0 {
		t.Errorf("expected no readings, got %d", len(got))
	}
}
