package ports

import (
	"context"
	"time"

	"sim-registry/internal/core/domain"
)

// --- Redis-backed stores ---

// VerifyAttemptStore counts verification attempts per phone number so the
// HTTP layer can throttle identity guessing against verify/swap.
type VerifyAttemptStore interface {
	// Allow records one attempt and reports whether it is within the limit.
	Allow(ctx context.Context, phoneNumber string, limit int64, window time.Duration) (*AttemptResult, error)
}

// AttemptResult holds the outcome of an attempt-limit check.
type AttemptResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// FraudReportCache is a short-TTL cache of aggregated fraud reports,
// keyed by national id. The advisory fraud gate is re-checked while the
// caller fills in a registration form, so repeated fan-outs within the
// TTL are served from here.
type FraudReportCache interface {
	Get(ctx context.Context, nationalID string) ([]domain.FraudReport, bool, error)
	Set(ctx context.Context, nationalID string, reports []domain.FraudReport, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// RegistrationService creates new bindings and exposes the advisory
// registration-cap count. It enforces phone-number uniqueness only;
// the cap and the fraud gate are the caller's checks.
type RegistrationService interface {
	CreateBinding(ctx context.Context, req CreateBindingRequest) (*domain.Binding, error)
	CountRegistrations(ctx context.Context, nationalID string) (int, error)
}

// CreateBindingRequest holds validated input for registration.
type CreateBindingRequest struct {
	PhoneNumber string
	Identity    domain.Identity
}

// VerificationService re-authenticates a claimed identity against the
// binding stored for a phone number.
type VerificationService interface {
	// Verify returns the stored binding on a successful identity match.
	Verify(ctx context.Context, phoneNumber string, claimed domain.Identity) (*domain.Binding, error)
}

// SwapService rotates the binding id token of an existing binding after
// identity re-verification.
type SwapService interface {
	Swap(ctx context.Context, phoneNumber string, claimed domain.Identity) (*SwapResult, error)
}

// SwapResult holds the outcome of a successful swap.
type SwapResult struct {
	PhoneNumber  string
	NewBindingID string
}

// FraudService aggregates fraud reports across every binding owned by one
// national identity.
type FraudService interface {
	// ReportsForIdentity merges the reports of all bindings under the
	// national id. A failed lookup for one phone number contributes
	// nothing instead of failing the aggregate.
	ReportsForIdentity(ctx context.Context, nationalID string) ([]domain.FraudReport, error)
}
