package metrics

import "testing"

func TestParseBloodPressure(t *testing.T) {
	tests := []struct {
		value    string
		systolic float64
		ok       bool
	}{
		{"118/76", 118, true},
		{"145/95", 145, true},
		{"120 / 80", 120, true},
		{"118", 0, false},
		{"n/a", 0, false},
		{"/80", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		systolic, _, ok := ParseBloodPressure(tc.value)
		if ok != tc.ok {
			t.Errorf("ParseBloodPressure(%q) ok = %v, want %v", tc.value, ok, tc.ok)
			continue
		}
		if ok && systolic != tc.systolic {
			t.Errorf("ParseBloodPressure(%q) systolic = %v, want %v", tc.value, systolic, tc.systolic)
		}
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		value string
		want  float64
		ok    bool
	}{
		{"72", 72, true},
		{"72 bpm", 72, true},
		{"8,500 steps", 8500, true},
		{"180.5 lbs", 180.5, true},
		{"n/a", 0, false},
		{"", 0, false},
		{"...", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseNumeric(tc.value)
		if ok != tc.ok {
			t.Errorf("ParseNumeric(%q) ok = %v, want %v", tc.value, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseNumeric(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{TypeBloodPressure, "Blood Pressure"},
		{TypeHeartRate, "Heart Rate"},
		{TypeSteps, "Steps"},
		{Type("body_fat_percent"), "Body Fat Percent"},
	}

	for _, tc := range tests {
		if got := DisplayName(tc.t); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.t, got, tc.want)
		}
	}
}
