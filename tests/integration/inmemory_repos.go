package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sim-registry/internal/core/domain"
)

// --- In-Memory Binding Repo ---

type inMemoryBindingRepo struct {
	mu       sync.RWMutex
	bindings map[string]*domain.Binding // keyed by phone number
}

func newInMemoryBindingRepo() *inMemoryBindingRepo {
	return &inMemoryBindingRepo{bindings: make(map[string]*domain.Binding)}
}

func (r *inMemoryBindingRepo) GetByPhone(ctx context.Context, phoneNumber string) (*domain.Binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[phoneNumber]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBindingRepo) Create(ctx context.Context, binding *domain.Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bindings[binding.PhoneNumber]; ok {
		return fmt.Errorf("duplicate key: %s", binding.PhoneNumber)
	}
	cp := *binding
	r.bindings[binding.PhoneNumber] = &cp
	return nil
}

func (r *inMemoryBindingRepo) UpdateBindingID(ctx context.Context, phoneNumber string, newID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bindings[phoneNumber]
	if !ok {
		return fmt.Errorf("binding not found: %s", phoneNumber)
	}
	b.BindingID.ID = newID
	b.UpdatedAt = time.Now()
	return nil
}

func (r *inMemoryBindingRepo) ListByNationalID(ctx context.Context, nationalID string) ([]domain.Binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Binding
	for _, b := range r.bindings {
		if b.Identity.NationalID == nationalID {
			out = append(out, *b)
		}
	}
	return out, nil
}

// --- In-Memory Fraud Report Repo ---

type inMemoryFraudReportRepo struct {
	mu      sync.RWMutex
	reports map[string][]domain.FraudReport // keyed by phone number
	failing map[string]bool                 // per-phone injected failures
}

func newInMemoryFraudReportRepo() *inMemoryFraudReportRepo {
	return &inMemoryFraudReportRepo{
		reports: make(map[string][]domain.FraudReport),
		failing: make(map[string]bool),
	}
}

func (r *inMemoryFraudReportRepo) ListByPhone(ctx context.Context, phoneNumber string) ([]domain.FraudReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.failing[phoneNumber] {
		return nil, fmt.Errorf("lookup failed: %s", phoneNumber)
	}
	return append([]domain.FraudReport(nil), r.reports[phoneNumber]...), nil
}

func (r *inMemoryFraudReportRepo) seed(phoneNumber string, reports ...domain.FraudReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[phoneNumber] = append(r.reports[phoneNumber], reports...)
}

func (r *inMemoryFraudReportRepo) failPhone(phoneNumber string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failing[phoneNumber] = true
}
