package service

import (
	"context"
	"fmt"

	"sim-registry/internal/core/domain"
	"sim-registry/internal/core/ports"
	"sim-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

type verificationService struct {
	bindingRepo ports.BindingRepository
	log         zerolog.Logger
}

// NewVerificationService creates the identity verification service.
func NewVerificationService(bindingRepo ports.BindingRepository, log zerolog.Logger) ports.VerificationService {
	return &verificationService{
		bindingRepo: bindingRepo,
		log:         log,
	}
}

// Verify checks a claimed identity against the binding stored for the
// phone number and returns the full binding on a match, so callers (the
// swap flow) know the current binding id.
func (s *verificationService) Verify(ctx context.Context, phoneNumber string, claimed domain.Identity) (*domain.Binding, error) {
	binding, err := s.bindingRepo.GetByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get binding: %w", err))
	}
	if binding == nil {
		return nil, apperror.ErrNotRegistered()
	}

	if !binding.Identity.Matches(claimed) {
		s.log.Warn().
			Str("phone_number", phoneNumber).
			Msg("identity mismatch on verification")
		return nil, apperror.ErrIdentityMismatch()
	}

	return binding, nil
}
