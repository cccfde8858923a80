package ports

import (
	"context"

	"sim-registry/internal/core/domain"
)

// BindingRepository defines persistence operations for SIM bindings.
// Lookup methods return (nil, nil) when no binding exists at the key.
type BindingRepository interface {
	GetByPhone(ctx context.Context, phoneNumber string) (*domain.Binding, error)
	Create(ctx context.Context, binding *domain.Binding) error
	// UpdateBindingID rotates only the binding id token of an existing
	// binding. It fails with a not-found error when no binding exists at
	// the key; callers check existence first, the store enforces it anyway.
	UpdateBindingID(ctx context.Context, phoneNumber string, newID string) error
	// ListByNationalID returns every binding whose identity carries the
	// given national id, in no particular order.
	ListByNationalID(ctx context.Context, nationalID string) ([]domain.Binding, error)
}

// FraudReportRepository reads fraud reports. The collection is append-only
// and owned by another system; this service never writes to it.
type FraudReportRepository interface {
	ListByPhone(ctx context.Context, phoneNumber string) ([]domain.FraudReport, error)
}
