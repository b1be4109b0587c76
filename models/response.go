package models

// Success Response Models

// LoginSuccessResponse represents a successful login response
type LoginSuccessResponse struct {
	Message   string `json:"message" example:"Login successful"`
	Token     string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UserID    string `json:"user_id" example:"507f1f77bcf86cd799439011"`
	CompanyID string `json:"company_id" example:"507f1f77bcf86cd799439012"`
	Role      string `json:"role" example:"company_admin"`
}

// SignupSuccessResponse represents a successful tenant signup response
type SignupSuccessResponse struct {
	Message   string `json:"message" example:"Company registered"`
	CompanyID string `json:"company_id" example:"507f1f77bcf86cd799439012"`
	UserID    string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

// AttendanceAcceptedResponse represents an accepted clock event
type AttendanceAcceptedResponse struct {
	Message           string          `json:"message" example:"Event recorded"`
	Event             AttendanceEvent `json:"event"`
	NextEventType     string          `json:"next_event_type" example:"CLOCK_OUT"`
	StateInconsistent bool            `json:"state_inconsistent" example:"false"`
}

// NextEventResponse represents the kiosk next-action query result
type NextEventResponse struct {
	NextEventType     string `json:"next_event_type" example:"CLOCK_IN"`
	State             string `json:"state" example:"OUT"`
	BreakAvailable    bool   `json:"break_available" example:"false"`
	StateInconsistent bool   `json:"state_inconsistent" example:"false"`
}

// KioskRegisteredResponse represents a newly paired kiosk device
type KioskRegisteredResponse struct {
	Message     string `json:"message" example:"Kiosk device registered"`
	DeviceID    string `json:"device_id" example:"3e8e7a2e-55c8-4f9e-9a3b-8f1d2c4b5a6d"`
	PairingQR   string `json:"pairing_qr" example:"data:image/png;base64,..."`
}

// Error Response Models

// ErrorResponse represents a basic error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

// RejectionResponse represents a domain rejection with a stable reason code
type RejectionResponse struct {
	Error  string `json:"error" example:"This action is not available right now, try refreshing"`
	Reason string `json:"reason" example:"OutOfSequence"`
}
