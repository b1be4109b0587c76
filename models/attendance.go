package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceEvent is one entry in the per-company append-only clock event
// log. Events are created once and never updated or deleted; corrections are
// handled outside this service.
type AttendanceEvent struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID         primitive.ObjectID `json:"company_id" bson:"company_id"`
	EmployeeID        primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	EventType         string             `json:"event_type" bson:"event_type"`
	Timestamp         time.Time          `json:"timestamp" bson:"timestamp"`
	DeviceID          string             `json:"device_id,omitempty" bson:"device_id,omitempty"`
	PhotoVerified     bool               `json:"photo_verified" bson:"photo_verified"`
	BiometricVerified bool               `json:"biometric_verified" bson:"biometric_verified"`
	ConfidenceScore   *float64           `json:"confidence_score,omitempty" bson:"confidence_score,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at,omitempty"`
}

type AttendanceLogPayload struct {
	EmployeeID        string   `json:"employee_id" validate:"required"`
	EventType         string   `json:"event_type" validate:"required,oneof=CLOCK_IN BREAK_START BREAK_END CLOCK_OUT"`
	DeviceID          string   `json:"device_id,omitempty" validate:"omitempty,max=100"`
	PhotoBase64       string   `json:"photo_base64,omitempty"`
	ConfidenceScore   *float64 `json:"confidence_score,omitempty" validate:"omitempty,min=0,max=1"`
	BiometricVerified bool     `json:"biometric_verified,omitempty"`
}

// AttendanceEventWithEmployee is the admin log view, joined with employee
// details via aggregation.
type AttendanceEventWithEmployee struct {
	ID                primitive.ObjectID `json:"id" bson:"_id"`
	EmployeeID        primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	EventType         string             `json:"event_type" bson:"event_type"`
	Timestamp         time.Time          `json:"timestamp" bson:"timestamp"`
	DeviceID          string             `json:"device_id,omitempty" bson:"device_id,omitempty"`
	PhotoVerified     bool               `json:"photo_verified" bson:"photo_verified"`
	BiometricVerified bool               `json:"biometric_verified" bson:"biometric_verified"`
	ConfidenceScore   *float64           `json:"confidence_score,omitempty" bson:"confidence_score,omitempty"`
	EmployeeCode      string             `json:"employee_code" bson:"employee_code"`
	EmployeeName      string             `json:"employee_name" bson:"employee_name"`
	Department        string             `json:"department,omitempty" bson:"department,omitempty"`
}

// DailyHours is one row of the hour report: the computed breakdown for one
// employee on one date, with the calendar multiplier attached. Payroll (out
// of scope) applies the multiplier; this service only supplies it.
type DailyHours struct {
	Date          string  `json:"date"`
	TotalHours    float64 `json:"total_hours"`
	BreakHours    float64 `json:"break_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	DayType       string  `json:"day_type"`
	PayMultiplier float64 `json:"pay_multiplier"`
}

// TodayStats feeds the admin dashboard cards.
type TodayStats struct {
	TotalEmployees  int64 `json:"total_employees"`
	ClockedIn       int64 `json:"clocked_in"`
	ClockedOut      int64 `json:"clocked_out"`
	PendingRequests int64 `json:"pending_requests"`
}
