package predict

import (
	"math"
	"time"
)

// Status classifies the outcome of a prediction.
type Status string

const (
	StatusSuccess          Status = "success"
	StatusInsufficientData Status = "insufficient_data"
	StatusStalled          Status = "stalled"
)

// MinSessions is the number of session records required before a model
// fit is attempted. The threshold counts records, not distinct dates.
const MinSessions = 3

// Result is the outcome of one prediction.
type Result struct {
	Status        Status
	PredictedDate time.Time // set only on success
	Velocity      float64   // fitted hours/day, full precision
}

// Predict forecasts the date the remaining workload will be finished,
// given chronological study-session history.
//
// With no remaining work the answer is today, regardless of history.
// Fewer than MinSessions records yields insufficient_data with no fit.
// Otherwise a simple linear regression over the cumulative-hours
// series gives the study velocity; a non-positive slope cannot be
// extrapolated and yields stalled. On success the fitted line is
// solved for the date the cumulative hours reach the current total
// plus remainingHours.
func Predict(sessions []Session, remainingHours float64, today time.Time) Result {
	if remainingHours == 0 {
		return Result{Status: StatusSuccess, PredictedDate: dateOnly(today)}
	}

	if len(sessions) < MinSessions {
		return Result{Status: StatusInsufficientData}
	}

	points, firstDate := cumulativeSeries(sessions)

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.x
		ys[i] = p.y
	}

	velocity, intercept := fitLine(xs, ys)
	if velocity <= 0 {
		return Result{Status: StatusStalled, Velocity: velocity}
	}

	target := ys[len(ys)-1] + remainingHours
	daysNeeded := (target - intercept) / velocity

	return Result{
		Status:        StatusSuccess,
		PredictedDate: firstDate.AddDate(0, 0, int(daysNeeded)),
		Velocity:      velocity,
	}
}

// DisplayVelocity rounds a fitted velocity to one decimal for display.
func DisplayVelocity(v float64) float64 {
	return math.Round(v*10) / 10
}
