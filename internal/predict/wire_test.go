package predict

import (
	"errors"
	"testing"
	"time"
)

func TestParseRequest_Valid(t *testing.T) {
	req := Request{
		Sessions: []WireSession{
			{Date: "2026-02-10", Hours: 2.5},
			{Date: "2026-02-11", Hours: 3.0},
		},
		RemainingHours: 24,
	}
	sessions, remaining, err := ParseRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 24 {
		t.Errorf("remaining = %v, want 24", remaining)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	want := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	if !sessions[0].Date.Equal(want) {
		t.Errorf("date = %v, want %v", sessions[0].Date, want)
	}
}

func TestParseRequest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"negative remaining", Request{RemainingHours: -1}},
		{"bad date", Request{Sessions: []WireSession{{Date: "10/02/2026", Hours: 1}}}},
		{"empty date", Request{Sessions: []WireSession{{Date: "", Hours: 1}}}},
		{"negative hours", Request{Sessions: []WireSession{{Date: "2026-02-10", Hours: -1}}}},
	}
	for _, tt := range tests {
		_, _, err := ParseRequest(tt.req)
		var inv *ErrInvalidRequest
		if !errors.As(err, &inv) {
			t.Errorf("%s: expected ErrInvalidRequest, got %v", tt.name, err)
		}
	}
}

func TestBuildResponse(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want Response
	}{
		{
			"success",
			Result{Status: StatusSuccess, PredictedDate: day(22), Velocity: 2.25},
			Response{Status: "success", PredictedDate: "2026-02-22", VelocityHoursPerDay: 2.3},
		},
		{
			"insufficient",
			Result{Status: StatusInsufficientData},
			Response{Status: "insufficient_data", Message: "Need at least 3 study sessions to predict."},
		},
		{
			"stalled",
			Result{Status: StatusStalled},
			Response{Status: "stalled", Message: "Velocity is zero or negative."},
		},
	}
	for _, tt := range tests {
		if got := BuildResponse(tt.res); got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
