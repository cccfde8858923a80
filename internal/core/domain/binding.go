package domain

import (
	"time"

	"github.com/google/uuid"
)

// BindingID identifies one activation of a phone number. The id token is
// rotated on every successful swap; the activation date is set once at
// creation and left untouched by swaps.
type BindingID struct {
	ID             string `json:"id"`
	ActivationDate Date   `json:"activation_date"`
}

// Binding associates a phone number with its verified identity and the
// current activation token. The phone number is the sole external key;
// several bindings may share a national id, up to the registration cap.
type Binding struct {
	PhoneNumber string    `json:"phone_number"`
	Identity    Identity  `json:"identity"`
	BindingID   BindingID `json:"binding_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBindingToken generates a fresh opaque activation token. UUIDv4 gives
// 122 random bits, enough to make collisions across swaps negligible.
func NewBindingToken() string {
	return uuid.NewString()
}

// Today returns the current calendar date, used as the activation date of
// newly created bindings.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}
