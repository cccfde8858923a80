package domain

import "time"

// TransactionType represents the kind of money movement a fraud report
// refers to.
type TransactionType string

const (
	TransactionTypeSend     TransactionType = "SEND"
	TransactionTypeReceive  TransactionType = "RECEIVE"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypePay      TransactionType = "PAY"
)

// Coords is the location a transaction was made from.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Transaction is the payload of a fraud report. This service never creates
// transactions; they arrive embedded in reports and are read-only here.
type Transaction struct {
	Type             TransactionType `json:"type"`
	Amount           int64           `json:"amount"`
	Timestamp        time.Time       `json:"timestamp"`
	Location         Coords          `json:"location"`
	RecipientAccount string          `json:"recipient_account"`
	DeviceID         string          `json:"device_id"`
	IPAddress        *string         `json:"ip_address,omitempty"`
	Reported         bool            `json:"reported,omitempty"`
}

// FraudReport is a report filed against activity on one phone number.
// The collection is append-only from this service's perspective.
type FraudReport struct {
	PhoneNumber   string      `json:"phone_number"`
	Transaction   Transaction `json:"transaction"`
	Reason        string      `json:"reason"`
	ReportedAt    time.Time   `json:"reported_at"`
	ReporterPhone string      `json:"reporter_phone"`
}
