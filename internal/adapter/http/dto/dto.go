package dto

// DateOfBirth is the calendar date supplied on registration and
// verification requests.
type DateOfBirth struct {
	Year  int `json:"year" binding:"required,min=1900,max=2100"`
	Month int `json:"month" binding:"required,min=1,max=12"`
	Day   int `json:"day" binding:"required,min=1,max=31"`
}

// IdentityRequest carries the claimed holder identity.
type IdentityRequest struct {
	FirstName   string      `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string      `json:"last_name" binding:"required,min=1,max=100"`
	Email       *string     `json:"email,omitempty" binding:"omitempty,email"`
	NationalID  string      `json:"national_id" binding:"required,national_id"`
	DateOfBirth DateOfBirth `json:"date_of_birth" binding:"required"`
}

// RegisterBindingRequest is the request body for SIM registration.
type RegisterBindingRequest struct {
	PhoneNumber string          `json:"phone_number" binding:"required,phone"`
	Identity    IdentityRequest `json:"identity" binding:"required"`
}

// VerifyRequest is the request body for identity verification and swap.
type VerifyRequest struct {
	PhoneNumber string          `json:"phone_number" binding:"required,phone"`
	Identity    IdentityRequest `json:"identity" binding:"required"`
}

// BindingResponse is the response body for a stored binding.
type BindingResponse struct {
	PhoneNumber    string      `json:"phone_number"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	NationalID     string      `json:"national_id"`
	BindingID      string      `json:"binding_id"`
	ActivationDate DateOfBirth `json:"activation_date"`
	CreatedAt      string      `json:"created_at,omitempty"`
}

// SwapResponse is the response body for a successful SIM swap.
type SwapResponse struct {
	PhoneNumber  string `json:"phone_number"`
	NewBindingID string `json:"new_binding_id"`
}

// RegistrationCountResponse is the response for the cap check.
type RegistrationCountResponse struct {
	NationalID string `json:"national_id"`
	Count      int    `json:"count"`
	Max        int    `json:"max"`
	CapReached bool   `json:"cap_reached"`
}

// FraudReportsResponse wraps the aggregated fraud reports of an identity.
type FraudReportsResponse struct {
	NationalID string        `json:"national_id"`
	Reports    []FraudReport `json:"reports"`
}

// FraudReport is the caller-facing shape of one report.
type FraudReport struct {
	PhoneNumber   string      `json:"phone_number"`
	Transaction   Transaction `json:"transaction"`
	Reason        string      `json:"reason"`
	ReportedAt    string      `json:"reported_at"`
	ReporterPhone string      `json:"reporter_phone"`
}

// Transaction is the transaction payload embedded in a report.
type Transaction struct {
	Type             string  `json:"type"`
	Amount           int64   `json:"amount"`
	Timestamp        string  `json:"timestamp"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	RecipientAccount string  `json:"recipient_account"`
	DeviceID         string  `json:"device_id"`
	IPAddress        *string `json:"ip_address,omitempty"`
}
