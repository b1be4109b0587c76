package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a kiosk-facing worker record, scoped to one company.
// FingerprintTemplateHash holds only a cryptographic template hash; the
// service never receives or stores raw biometric images.
type Employee struct {
	ID                      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID               primitive.ObjectID `json:"company_id" bson:"company_id"`
	EmployeeCode            string             `json:"employee_code" bson:"employee_code"`
	FirstName               string             `json:"first_name" bson:"first_name"`
	LastName                string             `json:"last_name" bson:"last_name"`
	Department              string             `json:"department,omitempty" bson:"department,omitempty"`
	Email                   string             `json:"email,omitempty" bson:"email,omitempty"`
	PinHash                 string             `json:"-" bson:"pin_hash,omitempty"`
	FingerprintTemplateHash string             `json:"-" bson:"fingerprint_template_hash,omitempty"`
	IsActive                bool               `json:"is_active" bson:"is_active"`
	CreatedAt               time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt               time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type EmployeeCreatePayload struct {
	EmployeeCode string `json:"employee_code" validate:"required,min=1,max=50"`
	FirstName    string `json:"first_name" validate:"required,min=1,max=100"`
	LastName     string `json:"last_name" validate:"required,min=1,max=100"`
	Department   string `json:"department" validate:"omitempty,max=100"`
	Email        string `json:"email" validate:"omitempty,email"`
}

type EmployeeUpdatePayload struct {
	FirstName  string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName   string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Department string `json:"department,omitempty" validate:"omitempty,max=100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

type EmployeePinPayload struct {
	Pin string `json:"pin" validate:"required,numeric,min=4,max=8"`
}

type BiometricEnrollPayload struct {
	TemplateHash string `json:"template_hash" validate:"required,min=16"`
}
