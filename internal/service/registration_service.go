package service

import (
	"context"
	"fmt"
	"time"

	"sim-registry/internal/core/domain"
	"sim-registry/internal/core/ports"
	"sim-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

type registrationService struct {
	bindingRepo ports.BindingRepository
	log         zerolog.Logger
}

// NewRegistrationService creates the binding registration service.
func NewRegistrationService(bindingRepo ports.BindingRepository, log zerolog.Logger) ports.RegistrationService {
	return &registrationService{
		bindingRepo: bindingRepo,
		log:         log,
	}
}

// CreateBinding registers a phone number to an identity. It enforces only
// the phone-number uniqueness invariant; the registration cap and the
// fraud gate are advisory checks the caller runs beforehand.
func (s *registrationService) CreateBinding(ctx context.Context, req ports.CreateBindingRequest) (*domain.Binding, error) {
	existing, err := s.bindingRepo.GetByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("check existing binding: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyRegistered(existing.Identity.DisplayName())
	}

	now := time.Now()
	binding := &domain.Binding{
		PhoneNumber: req.PhoneNumber,
		Identity:    req.Identity,
		BindingID: domain.BindingID{
			ID:             domain.NewBindingToken(),
			ActivationDate: domain.Today(),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.bindingRepo.Create(ctx, binding); err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("create binding: %w", err))
	}

	s.log.Info().
		Str("phone_number", binding.PhoneNumber).
		Str("national_id", binding.Identity.NationalID).
		Msg("binding created")

	return binding, nil
}

// CountRegistrations returns how many bindings exist under a national id.
// The count is advisory: a concurrent registration can race past a check
// built on it.
func (s *registrationService) CountRegistrations(ctx context.Context, nationalID string) (int, error) {
	bindings, err := s.bindingRepo.ListByNationalID(ctx, nationalID)
	if err != nil {
		return 0, apperror.ErrStorage(fmt.Errorf("count registrations: %w", err))
	}
	return len(bindings), nil
}
