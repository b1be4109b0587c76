package attendance

import (
	"math"
	"testing"
	"time"
)

func ts(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name      string
		events    []Event
		threshold float64
		want      Summary
	}{
		{
			name: "standard day with half hour break",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(9, 0)},
				{Type: BreakStart, Timestamp: ts(12, 0)},
				{Type: BreakEnd, Timestamp: ts(12, 30)},
				{Type: ClockOut, Timestamp: ts(17, 0)},
			},
			threshold: 8.0,
			want:      Summary{TotalHours: 7.5, BreakHours: 0.5, RegularHours: 7.5, OvertimeHours: 0},
		},
		{
			name: "no breaks means raw delta",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(9, 0)},
				{Type: ClockOut, Timestamp: ts(15, 0)},
			},
			threshold: 8.0,
			want:      Summary{TotalHours: 6, BreakHours: 0, RegularHours: 6, OvertimeHours: 0},
		},
		{
			name: "overtime split at threshold",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(8, 0)},
				{Type: ClockOut, Timestamp: ts(18, 30)},
			},
			threshold: 8.0,
			want:      Summary{TotalHours: 10.5, BreakHours: 0, RegularHours: 8, OvertimeHours: 2.5},
		},
		{
			name: "tenant specific threshold",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(8, 0)},
				{Type: ClockOut, Timestamp: ts(15, 0)},
			},
			threshold: 6.0,
			want:      Summary{TotalHours: 7, BreakHours: 0, RegularHours: 6, OvertimeHours: 1},
		},
		{
			name: "multiple break pairs accumulate",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(8, 0)},
				{Type: BreakStart, Timestamp: ts(10, 0)},
				{Type: BreakEnd, Timestamp: ts(10, 15)},
				{Type: BreakStart, Timestamp: ts(13, 0)},
				{Type: BreakEnd, Timestamp: ts(13, 45)},
				{Type: ClockOut, Timestamp: ts(17, 0)},
			},
			threshold: 8.0,
			want:      Summary{TotalHours: 8, BreakHours: 1, RegularHours: 8, OvertimeHours: 0},
		},
		{
			name: "two sessions exclude the gap between them",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(8, 0)},
				{Type: ClockOut, Timestamp: ts(12, 0)},
				{Type: ClockIn, Timestamp: ts(13, 0)},
				{Type: ClockOut, Timestamp: ts(17, 0)},
			},
			threshold: 8.0,
			want:      Summary{TotalHours: 8, BreakHours: 0, RegularHours: 8, OvertimeHours: 0},
		},
		{
			name: "second session with break still excludes the gap",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(6, 0)},
				{Type: ClockOut, Timestamp: ts(10, 0)},
				{Type: ClockIn, Timestamp: ts(12, 0)},
				{Type: BreakStart, Timestamp: ts(14, 0)},
				{Type: BreakEnd, Timestamp: ts(14, 30)},
				{Type: ClockOut, Timestamp: ts(18, 0)},
			},
			threshold: 8.0,
			want:      Summary{TotalHours: 9.5, BreakHours: 0.5, RegularHours: 8, OvertimeHours: 1.5},
		},
		{
			name: "trailing open session counts closed sessions only",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(8, 0)},
				{Type: ClockOut, Timestamp: ts(12, 0)},
				{Type: ClockIn, Timestamp: ts(13, 0)},
			},
			threshold: 8.0,
			want:      Summary{TotalHours: 4, BreakHours: 0, RegularHours: 4, OvertimeHours: 0},
		},
		{
			name: "open session yields zero summary",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(9, 0)},
				{Type: BreakStart, Timestamp: ts(12, 0)},
			},
			threshold: 8.0,
			want:      Summary{},
		},
		{
			name:      "empty history yields zero summary",
			events:    nil,
			threshold: 8.0,
			want:      Summary{},
		},
		{
			name: "zero threshold falls back to default",
			events: []Event{
				{Type: ClockIn, Timestamp: ts(8, 0)},
				{Type: ClockOut, Timestamp: ts(17, 0)},
			},
			threshold: 0,
			want:      Summary{TotalHours: 9, BreakHours: 0, RegularHours: 8, OvertimeHours: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHours(tt.events, tt.threshold)
			if !almostEqual(got.TotalHours, tt.want.TotalHours) ||
				!almostEqual(got.BreakHours, tt.want.BreakHours) ||
				!almostEqual(got.RegularHours, tt.want.RegularHours) ||
				!almostEqual(got.OvertimeHours, tt.want.OvertimeHours) {
				t.Errorf("ComputeHours() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
