package attendance

import "time"

// DefaultOvertimeThreshold is the fallback daily regular-hours cap, used when
// a company has not configured its own threshold.
const DefaultOvertimeThreshold = 8.0

// Summary is the hour breakdown for one closed work session. Values are in
// fractional hours. The pay multiplier for the day is supplied separately by
// the calendar; this package never applies it.
type Summary struct {
	TotalHours    float64 `json:"total_hours"`
	BreakHours    float64 `json:"break_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// ComputeHours calculates the hour breakdown for one day's events. Worked
// time accumulates over IN segments only: each segment opens at CLOCK_IN or
// BREAK_END and closes at the next BREAK_START or CLOCK_OUT, so neither
// matched breaks nor the off-clock gap between two sessions on the same day
// count as work. Regular is capped at overtimeThreshold (per-company
// setting); the remainder is overtime. A day with no closed session yields a
// zero summary, as do malformed orderings that would produce negative
// durations.
func ComputeHours(events []Event, overtimeThreshold float64) Summary {
	if overtimeThreshold <= 0 {
		overtimeThreshold = DefaultOvertimeThreshold
	}

	var worked, breakTotal time.Duration
	var segmentStart, breakStart time.Time
	closed := false

	for _, ev := range events {
		switch ev.Type {
		case ClockIn:
			if segmentStart.IsZero() {
				segmentStart = ev.Timestamp
			}
		case BreakStart:
			if !segmentStart.IsZero() {
				worked += ev.Timestamp.Sub(segmentStart)
				segmentStart = time.Time{}
			}
			breakStart = ev.Timestamp
		case BreakEnd:
			if !breakStart.IsZero() {
				breakTotal += ev.Timestamp.Sub(breakStart)
				breakStart = time.Time{}
				segmentStart = ev.Timestamp
			}
		case ClockOut:
			if !segmentStart.IsZero() {
				worked += ev.Timestamp.Sub(segmentStart)
				segmentStart = time.Time{}
				closed = true
			}
		}
	}

	if !closed || worked < 0 || breakTotal < 0 {
		return Summary{}
	}

	totalHours := worked.Hours()
	regular := totalHours
	overtime := 0.0
	if totalHours > overtimeThreshold {
		regular = overtimeThreshold
		overtime = totalHours - overtimeThreshold
	}

	return Summary{
		TotalHours:    totalHours,
		BreakHours:    breakTotal.Hours(),
		RegularHours:  regular,
		OvertimeHours: overtime,
	}
}
