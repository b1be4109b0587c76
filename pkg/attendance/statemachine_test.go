package attendance

import (
	"errors"
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
}

func history(types ...EventType) []Event {
	events := make([]Event, len(types))
	for i, t := range types {
		events[i] = Event{Type: t, Timestamp: at(9+i, 0)}
	}
	return events
}

func TestNextEventType(t *testing.T) {
	tests := []struct {
		name    string
		events  []Event
		want    EventType
		wantErr bool
	}{
		{
			name:   "empty history starts with clock in",
			events: nil,
			want:   ClockIn,
		},
		{
			name:   "after clock in the canonical next is clock out",
			events: history(ClockIn),
			want:   ClockOut,
		},
		{
			name:   "open break must be closed",
			events: history(ClockIn, BreakStart),
			want:   BreakEnd,
		},
		{
			name:   "after break end the canonical next is clock out",
			events: history(ClockIn, BreakStart, BreakEnd),
			want:   ClockOut,
		},
		{
			name:   "closed session starts over",
			events: history(ClockIn, ClockOut),
			want:   ClockIn,
		},
		{
			name:    "double clock in flags inconsistency but still suggests",
			events:  history(ClockIn, ClockIn),
			want:    ClockOut,
			wantErr: true,
		},
		{
			name:    "break end without break start flags inconsistency",
			events:  history(ClockIn, BreakEnd),
			want:    ClockOut,
			wantErr: true,
		},
		{
			name:    "orphan break start flags inconsistency",
			events:  history(BreakStart),
			want:    BreakEnd,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextEventType(tt.events)
			if got != tt.want {
				t.Errorf("NextEventType() = %v, want %v", got, tt.want)
			}
			if tt.wantErr && !errors.Is(err, ErrStateInconsistency) {
				t.Errorf("NextEventType() err = %v, want ErrStateInconsistency", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("NextEventType() unexpected err = %v", err)
			}
		})
	}
}

func TestStateAfter(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   State
	}{
		{"no events", nil, StateOut},
		{"clocked in", history(ClockIn), StateIn},
		{"on break", history(ClockIn, BreakStart), StateOnBreak},
		{"back from break", history(ClockIn, BreakStart, BreakEnd), StateIn},
		{"clocked out", history(ClockIn, ClockOut), StateOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateAfter(tt.events); got != tt.want {
				t.Errorf("StateAfter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name     string
		proposed EventType
		events   []Event
		active   bool
		wantErr  error
	}{
		{
			name:     "clock in from empty history",
			proposed: ClockIn,
			active:   true,
		},
		{
			name:     "clock out while in",
			proposed: ClockOut,
			events:   history(ClockIn),
			active:   true,
		},
		{
			name:     "break start while in is an accepted optional action",
			proposed: BreakStart,
			events:   history(ClockIn),
			active:   true,
		},
		{
			name:     "second clock in rejected",
			proposed: ClockIn,
			events:   history(ClockIn),
			active:   true,
			wantErr:  ErrOutOfSequence,
		},
		{
			name:     "clock out during open break rejected",
			proposed: ClockOut,
			events:   history(ClockIn, BreakStart),
			active:   true,
			wantErr:  ErrOutOfSequence,
		},
		{
			name:     "break end closes the break",
			proposed: BreakEnd,
			events:   history(ClockIn, BreakStart),
			active:   true,
		},
		{
			name:     "break end without open break rejected",
			proposed: BreakEnd,
			events:   history(ClockIn),
			active:   true,
			wantErr:  ErrOutOfSequence,
		},
		{
			name:     "suspended tenant rejected before sequence check",
			proposed: ClockIn,
			active:   false,
			wantErr:  ErrTenantInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.proposed, tt.events, tt.active)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTransition() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSessionEvents(t *testing.T) {
	full := []Event{
		{Type: ClockIn, Timestamp: at(8, 0)},
		{Type: ClockOut, Timestamp: at(12, 0)},
		{Type: ClockIn, Timestamp: at(13, 0)},
		{Type: BreakStart, Timestamp: at(15, 0)},
	}

	session := SessionEvents(full)
	if len(session) != 2 {
		t.Fatalf("SessionEvents() returned %d events, want 2", len(session))
	}
	if session[0].Type != ClockIn || session[1].Type != BreakStart {
		t.Errorf("SessionEvents() = %v, want second clock-in onwards", session)
	}

	if got := SessionEvents(history(ClockIn, BreakStart)); len(got) != 2 {
		t.Errorf("SessionEvents() without clock out should keep all events, got %d", len(got))
	}

	if got := SessionEvents(history(ClockIn, ClockOut)); len(got) != 0 {
		t.Errorf("SessionEvents() after clock out should be empty, got %d", len(got))
	}
}
