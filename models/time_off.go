package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Time-off request statuses.
const (
	TimeOffPending  = "pending"
	TimeOffApproved = "approved"
	TimeOffRejected = "rejected"
)

type TimeOffRequest struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID primitive.ObjectID `json:"company_id" bson:"company_id"`
	EmployeeID primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	StartDate string             `json:"start_date" bson:"start_date"`
	EndDate   string             `json:"end_date" bson:"end_date"`
	Reason    string             `json:"reason" bson:"reason"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type TimeOffCreatePayload struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02,gtefield=StartDate"`
	Reason     string `json:"reason" validate:"required,min=5,max=500"`
}

type TimeOffStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
