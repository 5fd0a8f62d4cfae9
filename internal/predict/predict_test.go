package predict

import (
	"math"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
}

func TestPredict_InsufficientData(t *testing.T) {
	tests := [][]Session{
		nil,
		{{Date: day(10), Hours: 2}},
		{{Date: day(10), Hours: 2}, {Date: day(11), Hours: 3}},
	}
	for _, sessions := range tests {
		res := Predict(sessions, 10, day(12))
		if res.Status != StatusInsufficientData {
			t.Errorf("%d sessions: status = %s, want insufficient_data", len(sessions), res.Status)
		}
		if !res.PredictedDate.IsZero() {
			t.Errorf("%d sessions: unexpected predicted date %v", len(sessions), res.PredictedDate)
		}
	}
}

func TestPredict_ThresholdCountsRecordsNotDates(t *testing.T) {
	// Three records on a single date clear the record threshold; the
	// fit then degenerates to one point and reports stalled rather
	// than insufficient data.
	sessions := []Session{
		{Date: day(10), Hours: 1},
		{Date: day(10), Hours: 2},
		{Date: day(10), Hours: 3},
	}
	res := Predict(sessions, 10, day(12))
	if res.Status != StatusStalled {
		t.Errorf("status = %s, want stalled", res.Status)
	}
}

func TestPredict_Stalled_FlatProgress(t *testing.T) {
	sessions := []Session{
		{Date: day(10), Hours: 5},
		{Date: day(11), Hours: 0},
		{Date: day(12), Hours: 0},
	}
	res := Predict(sessions, 10, day(12))
	if res.Status != StatusStalled {
		t.Errorf("status = %s, want stalled", res.Status)
	}
	if res.Velocity > 0 {
		t.Errorf("velocity = %v, want <= 0", res.Velocity)
	}
}

func TestPredict_ReferenceScenario(t *testing.T) {
	// Y = [2.5, 5.5, 7.0] at X = [0, 1, 2]:
	// slope = 2.25, intercept = 2.75, target = 7 + 24 = 31,
	// daysNeeded = (31 - 2.75) / 2.25 = 12.55… → 12 days after Feb 10.
	sessions := []Session{
		{Date: day(10), Hours: 2.5},
		{Date: day(11), Hours: 3.0},
		{Date: day(12), Hours: 1.5},
	}
	res := Predict(sessions, 24.0, day(12))
	if res.Status != StatusSuccess {
		t.Fatalf("status = %s, want success", res.Status)
	}
	if math.Abs(res.Velocity-2.25) > 1e-9 {
		t.Errorf("velocity = %v, want 2.25", res.Velocity)
	}
	want := day(22)
	if !res.PredictedDate.Equal(want) {
		t.Errorf("predicted date = %v, want %v", res.PredictedDate, want)
	}
	if res.PredictedDate.Before(day(12)) {
		t.Error("predicted date must be on or after the last observation")
	}
}

func TestPredict_SameDateSessionsAggregated(t *testing.T) {
	// Two Feb 10 sessions merge into one observation: cumulative
	// Y = [3, 6, 9] at X = [0, 1, 2], slope 3, intercept 3.
	sessions := []Session{
		{Date: day(10), Hours: 1},
		{Date: day(10), Hours: 2},
		{Date: day(11), Hours: 3},
		{Date: day(12), Hours: 3},
	}
	res := Predict(sessions, 9, day(12))
	if res.Status != StatusSuccess {
		t.Fatalf("status = %s, want success", res.Status)
	}
	if math.Abs(res.Velocity-3) > 1e-9 {
		t.Errorf("velocity = %v, want 3", res.Velocity)
	}
	// target 18, daysNeeded = (18-3)/3 = 5 → Feb 15.
	if !res.PredictedDate.Equal(day(15)) {
		t.Errorf("predicted date = %v, want %v", res.PredictedDate, day(15))
	}
}

func TestPredict_NoRemainingWork(t *testing.T) {
	today := time.Date(2026, 2, 12, 15, 30, 0, 0, time.UTC)
	// Short-circuits regardless of history length.
	for _, sessions := range [][]Session{nil, {{Date: day(10), Hours: 2}}} {
		res := Predict(sessions, 0, today)
		if res.Status != StatusSuccess {
			t.Fatalf("status = %s, want success", res.Status)
		}
		if !res.PredictedDate.Equal(day(12)) {
			t.Errorf("predicted date = %v, want today (%v)", res.PredictedDate, day(12))
		}
	}
}

func TestPredict_TimestampsTruncatedToDate(t *testing.T) {
	// Session timestamps at different times of day on the same date
	// must land on the same observation.
	sessions := []Session{
		{Date: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC), Hours: 1},
		{Date: time.Date(2026, 2, 10, 21, 30, 0, 0, time.UTC), Hours: 2},
		{Date: time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC), Hours: 3},
		{Date: time.Date(2026, 2, 12, 7, 45, 0, 0, time.UTC), Hours: 3},
	}
	res := Predict(sessions, 9, day(12))
	if res.Status != StatusSuccess {
		t.Fatalf("status = %s, want success", res.Status)
	}
	if math.Abs(res.Velocity-3) > 1e-9 {
		t.Errorf("velocity = %v, want 3", res.Velocity)
	}
}

func TestFitLine(t *testing.T) {
	tests := []struct {
		name      string
		xs, ys    []float64
		slope     float64
		intercept float64
	}{
		{"perfect line", []float64{0, 1, 2}, []float64{1, 3, 5}, 2, 1},
		{"reference", []float64{0, 1, 2}, []float64{2.5, 5.5, 7.0}, 2.25, 2.75},
		{"flat", []float64{0, 1, 2}, []float64{4, 4, 4}, 0, 4},
		{"single point", []float64{0}, []float64{5}, 0, 5},
		{"empty", nil, nil, 0, 0},
	}
	for _, tt := range tests {
		slope, intercept := fitLine(tt.xs, tt.ys)
		if math.Abs(slope-tt.slope) > 1e-9 {
			t.Errorf("%s: slope = %v, want %v", tt.name, slope, tt.slope)
		}
		if math.Abs(intercept-tt.intercept) > 1e-9 {
			t.Errorf("%s: intercept = %v, want %v", tt.name, intercept, tt.intercept)
		}
	}
}

func TestDisplayVelocity(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.25, 2.3},
		{2.24, 2.2},
		{0.05, 0.1},
		{3, 3},
	}
	for _, tt := range tests {
		if got := DisplayVelocity(tt.in); got != tt.want {
			t.Errorf("DisplayVelocity(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
