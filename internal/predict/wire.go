package predict

import (
	"fmt"
	"time"
)

// Wire contract for the predictor when exposed as a service.

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// WireSession is one session entry on the wire.
type WireSession struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// Request is the prediction request body.
type Request struct {
	Sessions       []WireSession `json:"sessions"`
	RemainingHours float64       `json:"remaining_hours"`
}

// Response is the prediction response body.
type Response struct {
	Status              string  `json:"status"`
	PredictedDate       string  `json:"predicted_date,omitempty"`
	VelocityHoursPerDay float64 `json:"velocity_hours_per_day,omitempty"`
	Message             string  `json:"message,omitempty"`
}

// ErrInvalidRequest indicates a malformed prediction request.
type ErrInvalidRequest struct {
	Reason string
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid prediction request: %s", e.Reason)
}

// ParseRequest validates the wire request and converts it to the
// predictor's inputs.
func ParseRequest(req Request) ([]Session, float64, error) {
	if req.RemainingHours < 0 {
		return nil, 0, &ErrInvalidRequest{Reason: "remaining_hours must be non-negative"}
	}

	sessions := make([]Session, 0, len(req.Sessions))
	for i, ws := range req.Sessions {
		d, err := time.ParseInLocation(DateLayout, ws.Date, time.UTC)
		if err != nil {
			return nil, 0, &ErrInvalidRequest{
				Reason: fmt.Sprintf("session %d: bad date %q (want YYYY-MM-DD)", i, ws.Date),
			}
		}
		if ws.Hours < 0 {
			return nil, 0, &ErrInvalidRequest{
				Reason: fmt.Sprintf("session %d: hours must be non-negative", i),
			}
		}
		sessions = append(sessions, Session{Date: d, Hours: ws.Hours})
	}
	return sessions, req.RemainingHours, nil
}

// BuildResponse converts a prediction result to its wire form.
// Velocity is rounded to one decimal for display.
func BuildResponse(res Result) Response {
	switch res.Status {
	case StatusInsufficientData:
		return Response{
			Status:  string(res.Status),
			Message: "Need at least 3 study sessions to predict.",
		}
	case StatusStalled:
		return Response{
			Status:  string(res.Status),
			Message: "Velocity is zero or negative.",
		}
	default:
		return Response{
			Status:              string(res.Status),
			PredictedDate:       res.PredictedDate.Format(DateLayout),
			VelocityHoursPerDay: DisplayVelocity(res.Velocity),
		}
	}
}
