package output

import (
	"fmt"
	"strings"

	"github.com/seacliff-health/vitals/internal/score"
)

// ScoreBar renders a visual progress bar for a 0-100 score.
// Example: "████████░░ 80/100"
func ScoreBar(s int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := s * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case s >= 70:
		style = func(v string) string { return StyleSuccess.Render(v) }
	case s >= 40:
		style = func(v string) string { return StyleWarning.Render(v) }
	default:
		style = func(v string) string { return StyleError.Render(v) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d/100", s)))
}

// StatusText renders a component status in its color.
func StatusText(s score.Status) string {
	switch s {
	case score.StatusExcellent, score.StatusGood:
		return StyleSuccess.Render(string(s))
	case score.StatusFair:
		return StyleWarning.Render(string(s))
	default:
		return StyleError.Render(string(s))
	}
}

// GradeText renders a letter grade in its color.
func GradeText(g score.Grade) string {
	switch g {
	case score.GradeAPlus, score.GradeA, score.GradeBPlus, score.GradeB:
		return StyleSuccess.Render(string(g))
	case score.GradeCPlus, score.GradeC:
		return StyleWarning.Render(string(g))
	default:
		return StyleError.Render(string(g))
	}
}

// TrendText renders a trend direction with its arrow.
func TrendText(t score.Trend) string {
	switch t {
	case score.TrendImproving:
		return StyleSuccess.Render("▲ improving")
	case score.TrendDeclining:
		return StyleError.Render("▼ declining")
	default:
		return StyleMuted.Render("─ stable")
	}
}

// TrendArrow returns a styled delta indicator. Positive deltas show an up
// arrow, negative show down, zero shows a dash. Higher scores are always
// better here.
func TrendArrow(delta int) string {
	switch {
	case delta > 0:
		return StyleSuccess.Render(fmt.Sprintf("▲ +%d", delta))
	case delta < 0:
		return StyleError.Render(fmt.Sprintf("▼ %d", delta))
	default:
		return StyleMuted.Render("─")
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
