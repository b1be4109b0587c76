package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Day classifications for a tenant calendar date.
const (
	DayTypeWorkingDay = "WORKING_DAY"
	DayTypeHoliday    = "HOLIDAY"
	DayTypeWeekend    = "WEEKEND"
)

// CalendarEntry classifies one calendar date for one company. At most one
// entry exists per (company_id, date); dates without an entry resolve to a
// synthesized default (weekend on Saturday/Sunday, working day otherwise).
type CalendarEntry struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID     primitive.ObjectID `json:"company_id" bson:"company_id"`
	Date          string             `json:"date" bson:"date"`
	DayType       string             `json:"day_type" bson:"day_type"`
	PayMultiplier float64            `json:"pay_multiplier" bson:"pay_multiplier"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt     time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// CalendarBulkSetPayload writes one classification over a set of dates.
// Dates may be listed explicitly or generated from an RRULE expanded between
// StartDate and EndDate. PayMultiplier is validated by the calendar domain
// layer (must be > 0) so the rejection reason is the documented one.
type CalendarBulkSetPayload struct {
	Dates          []string `json:"dates,omitempty" validate:"omitempty,dive,datetime=2006-01-02"`
	RecurrenceRule string   `json:"recurrence_rule,omitempty"`
	StartDate      string   `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string   `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DayType        string   `json:"day_type" validate:"required,oneof=WORKING_DAY HOLIDAY WEEKEND"`
	PayMultiplier  float64  `json:"pay_multiplier"`
	Description    string   `json:"description,omitempty" validate:"omitempty,max=255"`
}

// EmployeeCalendarDay is the combined per-day view for one employee: day
// classification plus attendance presence plus approved leave.
type EmployeeCalendarDay struct {
	Date          string  `json:"date"`
	DayType       string  `json:"day_type"`
	PayMultiplier float64 `json:"pay_multiplier"`
	Description   string  `json:"description,omitempty"`
	Status        string  `json:"status"`
	CheckInTime   string  `json:"check_in_time,omitempty"`
	CheckOutTime  string  `json:"check_out_time,omitempty"`
	LeaveReason   string  `json:"leave_reason,omitempty"`
}

// EmployeeCalendarDay statuses.
const (
	DayStatusPresent = "PRESENT"
	DayStatusAbsent  = "ABSENT"
	DayStatusLeave   = "LEAVE"
	DayStatusHoliday = "HOLIDAY"
	DayStatusWeekend = "WEEKEND"
	DayStatusFuture  = "FUTURE"
)
