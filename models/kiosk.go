package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KioskDevice is a registered clock-in terminal. DeviceID is the stable
// identifier kiosks send with every attendance event; the registration code
// is shown once as a QR so the physical device can pair itself.
type KioskDevice struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID        primitive.ObjectID `json:"company_id" bson:"company_id"`
	DeviceID         string             `json:"device_id" bson:"device_id"`
	Name             string             `json:"name" bson:"name"`
	RegistrationCode string             `json:"-" bson:"registration_code"`
	IsActive         bool               `json:"is_active" bson:"is_active"`
	LastSeenAt       *time.Time         `json:"last_seen_at,omitempty" bson:"last_seen_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at,omitempty"`
}

type KioskRegisterPayload struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
