package insights

import (
	"strings"
	"testing"

	"github.com/seacliff-health/vitals/internal/score"
)

func allTracked() []string {
	return []string{"blood_pressure", "blood_sugar", "heart_rate", "weight", "steps"}
}

func TestMissingCoreMetrics(t *testing.T) {
	ctx := &Context{
		TrackedTypes: []string{"heart_rate", "steps"},
	}

	insights := MissingCoreMetrics(ctx)
	if len(insights) != 3 {
		t.Fatalf("expected 3 insights for 3 untracked types, got %d", len(insights))
	}

	byTitle := make(map[string]Insight)
	for _, in := range insights {
		byTitle[in.Title] = in
	}

	bp, ok := byTitle["Start tracking blood pressure"]
	if !ok {
		t.Fatal("expected an insight for untracked blood pressure")
	}
	if bp.Priority != PriorityHigh {
		t.Errorf("heavily weighted metrics get high priority, got %d", bp.Priority)
	}
	if bp.ImpactScore != 25 {
		t.Errorf("expected impact 25 for blood pressure, got %v", bp.ImpactScore)
	}

	weight, ok := byTitle["Start tracking weight"]
	if !ok {
		t.Fatal("expected an insight for untracked weight")
	}
	if weight.Priority != PriorityMedium {
		t.Errorf("lightly weighted metrics get medium priority, got %d", weight.Priority)
	}
}

func TestMissingCoreMetrics_AllTracked(t *testing.T) {
	ctx := &Context{TrackedTypes: allTracked()}
	if got := MissingCoreMetrics(ctx); len(got) != 0 {
		t.Errorf("expected no insights when everything is tracked, got %d", len(got))
	}
}

func TestPoorComponents(t *testing.T) {
	ctx := &Context{
		Result: score.Result{
			Components: []score.Component{
				{Name: "Blood Pressure", Score: 40, Weight: 0.25, Status: score.StatusPoor,
					Recommendations: []string{"Consult your doctor."}},
				{Name: "Steps", Score: 85, Weight: 0.15, Status: score.StatusGood},
			},
		},
	}

	insights := PoorComponents(ctx)
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	in := insights[0]
	if in.Priority != PriorityCritical {
		t.Errorf("poor components are critical, got priority %d", in.Priority)
	}
	if in.Title != "Blood Pressure needs attention" {
		t.Errorf("unexpected title %q", in.Title)
	}
	if !strings.Contains(in.Description, "Consult your doctor.") {
		t.Errorf("description should carry the component recommendations, got %q", in.Description)
	}
	// (80 - 40) * 0.25 = 10
	if in.ImpactScore != 10 {
		t.Errorf("expected impact 10, got %v", in.ImpactScore)
	}
}

func TestLowConsistency(t *testing.T) {
	ctx := &Context{
		Result: score.Result{
			Components: []score.Component{
				{Name: score.ConsistencyName, Score: 33, Weight: 0.2, Status: score.StatusPoor},
			},
		},
	}

	insights := LowConsistency(ctx)
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	if insights[0].Category != "habit" {
		t.Errorf("expected habit category, got %q", insights[0].Category)
	}
}

func TestLowConsistency_GoodEnough(t *testing.T) {
	ctx := &Context{
		Result: score.Result{
			Components: []score.Component{
				{Name: score.ConsistencyName, Score: 60, Weight: 0.2, Status: score.StatusGood},
			},
		},
	}
	if got := LowConsistency(ctx); got != nil {
		t.Errorf("expected no insight at consistency 60, got %+v", got)
	}
}

func TestDecliningTrend(t *testing.T) {
	declining := &Context{Result: score.Result{OverallScore: 72, Trend: score.TrendDeclining}}
	if got := DecliningTrend(declining); len(got) != 1 {
		t.Fatalf("expected 1 insight for a declining trend, got %d", len(got))
	}

	stable := &Context{Result: score.Result{OverallScore: 72, Trend: score.TrendStable}}
	if got := DecliningTrend(stable); got != nil {
		t.Errorf("expected no insight for a stable trend, got %+v", got)
	}
}

func TestEngineRun_RankedByImpact(t *testing.T) {
	ctx := &Context{
		Result: score.Result{
			OverallScore: 55,
			Trend:        score.TrendDeclining,
			Components: []score.Component{
				{Name: "Blood Sugar", Score: 25, Weight: 0.25, Status: score.StatusPoor},
			},
		},
		TrackedTypes: []string{"blood_sugar"},
	}

	insights := NewEngine().Run(ctx)
	if len(insights) == 0 {
		t.Fatal("expected insights")
	}
	for i := 1; i < len(insights); i++ {
		if insights[i].ImpactScore > insights[i-1].ImpactScore {
			t.Errorf("insights out of order at %d: %v after %v",
				i, insights[i].ImpactScore, insights[i-1].ImpactScore)
		}
	}
	// The declining-trend warning (impact 50) outranks everything here.
	if insights[0].Category != "trend" {
		t.Errorf("expected the trend insight first, got %q (impact %v)",
			insights[0].Category, insights[0].ImpactScore)
	}
}

func TestImpact(t *testing.T) {
	if got := Impact(40, 0.25); got != 10 {
		t.Errorf("Impact(40, 0.25) = %v, want 10", got)
	}
	if got := Impact(-5, 0.25); got != 0 {
		t.Errorf("Impact(-5, 0.25) = %v, want 0", got)
	}
	if got := Impact(0, 0.25); got != 0 {
		t.Errorf("Impact(0, 0.25) = %v, want 0", got)
	}
}
