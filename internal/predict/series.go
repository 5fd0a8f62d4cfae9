package predict

import (
	"sort"
	"time"
)

// Session is one study-session observation: a calendar date and the
// hours studied. Multiple sessions on the same date are aggregated
// before fitting.
type Session struct {
	Date  time.Time
	Hours float64
}

// point is one fitted observation: whole days since the first session
// and cumulative hours up to and including that date.
type point struct {
	x float64
	y float64
}

// cumulativeSeries aggregates sessions into one (date, hours) pair per
// calendar date, orders them, and converts to the regression inputs:
// X = days elapsed since the first date, Y = cumulative hours.
func cumulativeSeries(sessions []Session) (points []point, firstDate time.Time) {
	byDate := make(map[time.Time]float64, len(sessions))
	for _, s := range sessions {
		d := dateOnly(s.Date)
		byDate[d] += s.Hours
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	firstDate = dates[0]
	points = make([]point, 0, len(dates))
	var cumulative float64
	for _, d := range dates {
		cumulative += byDate[d]
		points = append(points, point{
			x: float64(daysBetween(firstDate, d)),
			y: cumulative,
		})
	}
	return points, firstDate
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b, both date-only.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
