package score

import (
	"github.com/seacliff-health/vitals/internal/metrics"
)

// The threshold ladders below are clinical constants, not configuration.
// Boundaries are normative and must not drift.

// bpRecsFair and friends are the fixed recommendation lists attached by the
// ladders. Attached slices are cloned before leaving the package so callers
// cannot mutate the tables.
var (
	bpRecsFair = []string{
		"Reduce sodium intake",
		"Increase physical activity",
	}
	bpRecsPoor = []string{
		"Consult your doctor about blood pressure management",
		"Reduce sodium intake",
		"Monitor blood pressure daily",
	}

	sugarRecsGood = []string{
		"Limit refined carbohydrates",
		"Increase fiber intake",
	}
	sugarRecsFair = []string{
		"Consult your doctor about blood sugar management",
		"Follow a low-glycemic diet",
	}
	sugarRecsPoor = []string{
		"Seek medical attention for blood sugar control",
		"Monitor blood sugar closely",
		"Follow your prescribed treatment plan",
	}

	heartRecsFair = []string{
		"Discuss your resting heart rate with your doctor",
	}
	heartRecsPoor = []string{
		"Consult a doctor about your heart rate",
		"Avoid strenuous activity until evaluated",
	}

	stepsRecsFair = []string{
		"Add a short walk to your daily routine",
		"Take the stairs when possible",
	}
	stepsRecsPoor = []string{
		"Increase daily walking",
		"Set an achievable step goal",
		"Take movement breaks during the day",
	}
)

// rating is one rung of a threshold ladder.
type rating struct {
	score           int
	status          Status
	description     string
	recommendations []string
}

// scoreReading maps the latest reading of a type to its ladder rating.
// ok is false when the type is unknown or the value does not parse, in which
// case the type yields no component.
func scoreReading(r metrics.Reading) (rating, bool) {
	switch r.Type {
	case metrics.TypeBloodPressure:
		systolic, _, ok := metrics.ParseBloodPressure(r.Value)
		if !ok {
			return rating{}, false
		}
		return rateBloodPressure(systolic), true
	case metrics.TypeBloodSugar:
		v, ok := metrics.ParseNumeric(r.Value)
		if !ok {
			return rating{}, false
		}
		return rateBloodSugar(v), true
	case metrics.TypeHeartRate:
		v, ok := metrics.ParseNumeric(r.Value)
		if !ok {
			return rating{}, false
		}
		return rateHeartRate(v), true
	case metrics.TypeWeight:
		if _, ok := metrics.ParseNumeric(r.Value); !ok {
			return rating{}, false
		}
		return rateWeight(), true
	case metrics.TypeSteps:
		v, ok := metrics.ParseNumeric(r.Value)
		if !ok {
			return rating{}, false
		}
		return rateSteps(v), true
	}
	return rating{}, false
}

// rateBloodPressure scores on the systolic component only.
func rateBloodPressure(systolic float64) rating {
	switch {
	case systolic < 120:
		return rating{100, StatusExcellent, "Normal blood pressure", nil}
	case systolic < 130:
		return rating{85, StatusGood, "Elevated blood pressure", nil}
	case systolic < 140:
		return rating{70, StatusFair, "Stage 1 hypertension range", bpRecsFair}
	default:
		return rating{40, StatusPoor, "Stage 2 hypertension range", bpRecsPoor}
	}
}

func rateBloodSugar(v float64) rating {
	switch {
	case v < 100:
		return rating{100, StatusExcellent, "Normal fasting glucose", nil}
	case v < 126:
		return rating{75, StatusGood, "Prediabetic range", sugarRecsGood}
	case v < 200:
		return rating{50, StatusFair, "Diabetic range", sugarRecsFair}
	default:
		return rating{25, StatusPoor, "Very high blood sugar", sugarRecsPoor}
	}
}

func rateHeartRate(v float64) rating {
	switch {
	case v >= 60 && v <= 100:
		return rating{100, StatusExcellent, "Healthy resting heart rate", nil}
	case (v >= 50 && v < 60) || (v > 100 && v <= 110):
		return rating{80, StatusGood, "Slightly outside the optimal range", nil}
	case (v >= 40 && v < 50) || (v > 110 && v <= 120):
		return rating{60, StatusFair, "Outside the normal resting range", heartRecsFair}
	default:
		return rating{30, StatusPoor, "Abnormal resting heart rate", heartRecsPoor}
	}
}

// rateWeight is a placeholder: proper BMI scoring needs height data, which
// readings do not carry.
func rateWeight() rating {
	return rating{85, StatusGood, "Weight recorded; BMI scoring requires height data", nil}
}

func rateSteps(v float64) rating {
	switch {
	case v >= 10000:
		return rating{100, StatusExcellent, "Very active", nil}
	case v >= 7500:
		return rating{85, StatusGood, "Active", nil}
	case v >= 5000:
		return rating{70, StatusFair, "Moderately active", stepsRecsFair}
	default:
		return rating{50, StatusPoor, "Low activity level", stepsRecsPoor}
	}
}
