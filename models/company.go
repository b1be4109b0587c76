package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription plans a tenant can be on. Billing itself happens outside this
// service; the plan is informational for the super-admin console.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Company is a tenant. All other collections are scoped by CompanyID.
type Company struct {
	ID                     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name                   string             `json:"name" bson:"name"`
	Subdomain              string             `json:"subdomain" bson:"subdomain"`
	BillingAddress         string             `json:"billing_address,omitempty" bson:"billing_address,omitempty"`
	IsActive               bool               `json:"is_active" bson:"is_active"`
	SubscriptionPlan       string             `json:"subscription_plan" bson:"subscription_plan"`
	OvertimeThresholdHours float64            `json:"overtime_threshold_hours" bson:"overtime_threshold_hours"`
	CreatedAt              time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt              time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type CompanySignupPayload struct {
	CompanyName   string `json:"company_name" validate:"required,min=2,max=100"`
	Subdomain     string `json:"subdomain" validate:"required,min=2,max=63,lowercase,alphanum"`
	AdminName     string `json:"admin_name" validate:"required,min=3,max=100"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8,max=50,hasuppercase"`
}

type CompanyStatusPayload struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type CompanyPlanPayload struct {
	Plan string `json:"plan" validate:"required,oneof=free pro enterprise"`
}

type CompanySettingsPayload struct {
	OvertimeThresholdHours float64 `json:"overtime_threshold_hours" validate:"required,gt=0,lte=24"`
	BillingAddress         string  `json:"billing_address,omitempty" validate:"omitempty,max=255"`
}
