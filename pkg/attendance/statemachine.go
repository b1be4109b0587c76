// Package attendance implements the clock event state machine shared by the
// kiosk and admin APIs. It is pure: no storage, no clock, no globals, so it
// can be exercised directly in tests and reused by any transport layer.
package attendance

import (
	"errors"
	"fmt"
	"time"
)

// EventType is one of the four clock event kinds an employee can record.
type EventType string

const (
	ClockIn    EventType = "CLOCK_IN"
	BreakStart EventType = "BREAK_START"
	BreakEnd   EventType = "BREAK_END"
	ClockOut   EventType = "CLOCK_OUT"
)

// Valid reports whether t is one of the four known event types.
func (t EventType) Valid() bool {
	switch t {
	case ClockIn, BreakStart, BreakEnd, ClockOut:
		return true
	}
	return false
}

// State is the derived presence state of an employee within one work session.
type State string

const (
	StateOut     State = "OUT"
	StateIn      State = "IN"
	StateOnBreak State = "ON_BREAK"
)

// Event is the minimal slice of an attendance log entry the state machine
// consumes. Callers map their storage model onto it.
type Event struct {
	Type      EventType
	Timestamp time.Time
}

// Rejection reason codes, returned to API clients verbatim.
const (
	ReasonOutOfSequence  = "OutOfSequence"
	ReasonTenantInactive = "TenantInactive"
)

// ErrOutOfSequence rejects a proposed event that is not a legal transition
// from the employee's current state.
var ErrOutOfSequence = &TransitionError{Reason: ReasonOutOfSequence, Message: "proposed event is not valid from the current state"}

// ErrTenantInactive rejects any event for a suspended company.
var ErrTenantInactive = &TransitionError{Reason: ReasonTenantInactive, Message: "company account is inactive"}

// ErrStateInconsistency flags a malformed event history (a consecutive pair
// that is not a legal transition). It is advisory: NextEventType still
// returns a best-effort suggestion computed from the latest event alone.
var ErrStateInconsistency = errors.New("attendance history is inconsistent")

// TransitionError is a value-returned rejection so handlers can map reasons
// to HTTP responses deterministically.
type TransitionError struct {
	Reason  string
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// stateAfterEvent is the transition table. The latest event is authoritative
// even when history is malformed; no repair is attempted.
func stateAfterEvent(t EventType) State {
	switch t {
	case ClockIn, BreakEnd:
		return StateIn
	case BreakStart:
		return StateOnBreak
	default:
		return StateOut
	}
}

// legalFrom lists the event types accepted from a given state. From IN both
// CLOCK_OUT and BREAK_START are legal; CLOCK_OUT is the canonical next while
// BREAK_START is an optional action the kiosk requests explicitly. ON_BREAK
// never transitions straight to OUT: the break must be closed first so total
// break time is always bounded by matched start/end pairs.
func legalFrom(s State) []EventType {
	switch s {
	case StateOut:
		return []EventType{ClockIn}
	case StateIn:
		return []EventType{ClockOut, BreakStart}
	case StateOnBreak:
		return []EventType{BreakEnd}
	}
	return nil
}

// StateAfter folds the session history into the employee's current state.
// An empty history means OUT.
func StateAfter(events []Event) State {
	if len(events) == 0 {
		return StateOut
	}
	return stateAfterEvent(events[len(events)-1].Type)
}

// NextEventType returns the single canonical next event for the session
// history. The returned error is either nil or ErrStateInconsistency; in the
// latter case the suggestion is still valid (computed from the latest event)
// and callers must log the condition rather than drop it.
func NextEventType(events []Event) (EventType, error) {
	if len(events) == 0 {
		return ClockIn, nil
	}

	var next EventType
	switch events[len(events)-1].Type {
	case ClockIn, BreakEnd:
		next = ClockOut
	case BreakStart:
		next = BreakEnd
	default:
		next = ClockIn
	}

	if !consistent(events) {
		return next, ErrStateInconsistency
	}
	return next, nil
}

// ValidateTransition decides whether proposed may be recorded given the
// session history. Pure: persistence of an accepted event is the caller's
// job. companyActive is the tenant status resolved by the caller.
func ValidateTransition(proposed EventType, events []Event, companyActive bool) error {
	if !companyActive {
		return ErrTenantInactive
	}
	state := StateAfter(events)
	for _, t := range legalFrom(state) {
		if t == proposed {
			return nil
		}
	}
	return ErrOutOfSequence
}

// SessionEvents trims a day's ordered history to the current open session:
// everything after the most recent CLOCK_OUT, or the whole slice if the
// employee has not clocked out yet.
func SessionEvents(events []Event) []Event {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == ClockOut {
			return events[i+1:]
		}
	}
	return events
}

// consistent checks that every consecutive pair in the history is a legal
// transition, starting from OUT.
func consistent(events []Event) bool {
	state := StateOut
	for _, ev := range events {
		ok := false
		for _, t := range legalFrom(state) {
			if t == ev.Type {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
		state = stateAfterEvent(ev.Type)
	}
	return true
}
