package service

import (
	"context"

	"sim-registry/internal/core/domain"
	"sim-registry/internal/core/ports"
	"sim-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

type swapService struct {
	bindingRepo ports.BindingRepository
	verifySvc   ports.VerificationService
	log         zerolog.Logger
}

// NewSwapService creates the SIM swap service.
func NewSwapService(bindingRepo ports.BindingRepository, verifySvc ports.VerificationService, log zerolog.Logger) ports.SwapService {
	return &swapService{
		bindingRepo: bindingRepo,
		verifySvc:   verifySvc,
		log:         log,
	}
}

// Swap re-verifies the claimed identity and rotates the binding id token.
// The identity and activation date are left untouched. Verify and update
// are two separate round trips, not a compare-and-swap; concurrent swaps
// on the same phone number can interleave.
func (s *swapService) Swap(ctx context.Context, phoneNumber string, claimed domain.Identity) (*ports.SwapResult, error) {
	binding, err := s.verifySvc.Verify(ctx, phoneNumber, claimed)
	if err != nil {
		return nil, err
	}

	newID := domain.NewBindingToken()
	if err := s.bindingRepo.UpdateBindingID(ctx, phoneNumber, newID); err != nil {
		s.log.Error().Err(err).
			Str("phone_number", phoneNumber).
			Msg("binding id rotation failed after successful verification")
		return nil, apperror.ErrSwapFailed(err)
	}

	s.log.Info().
		Str("phone_number", phoneNumber).
		Str("old_binding_id", binding.BindingID.ID).
		Str("new_binding_id", newID).
		Msg("sim swap completed")

	return &ports.SwapResult{
		PhoneNumber:  phoneNumber,
		NewBindingID: newID,
	}, nil
}
