package handler

import (
	"fmt"
	"time"

	"sim-registry/internal/adapter/http/dto"
	"sim-registry/internal/core/domain"
	"sim-registry/internal/core/ports"
	"sim-registry/pkg/apperror"
	"sim-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistrationPolicy holds the advisory limits the handler enforces
// before a binding is created. The store itself only guarantees
// phone-number uniqueness; these checks are best-effort and can race
// with concurrent registrations.
type RegistrationPolicy struct {
	MaxPerNationalID int
	MinAgeYears      int
}

// BindingHandler handles registration, verification and swap endpoints.
type BindingHandler struct {
	regSvc    ports.RegistrationService
	verifySvc ports.VerificationService
	swapSvc   ports.SwapService
	fraudSvc  ports.FraudService
	policy    RegistrationPolicy
}

// NewBindingHandler creates a new BindingHandler.
func NewBindingHandler(
	regSvc ports.RegistrationService,
	verifySvc ports.VerificationService,
	swapSvc ports.SwapService,
	fraudSvc ports.FraudService,
	policy RegistrationPolicy,
) *BindingHandler {
	return &BindingHandler{
		regSvc:    regSvc,
		verifySvc: verifySvc,
		swapSvc:   swapSvc,
		fraudSvc:  fraudSvc,
		policy:    policy,
	}
}

// Register handles POST /api/v1/bindings.
func (h *BindingHandler) Register(c *gin.Context) {
	var req dto.RegisterBindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if !req.Identity.DateOfBirth.ValidDate() {
		response.Error(c, apperror.Validation("date of birth is not a valid calendar date"))
		return
	}
	if !req.Identity.DateOfBirth.AtLeastYearsOld(h.policy.MinAgeYears, time.Now()) {
		response.Error(c, apperror.Validation(fmt.Sprintf("holder must be at least %d years old", h.policy.MinAgeYears)))
		return
	}

	phone := dto.NormalizePhone(req.PhoneNumber)
	ctx := c.Request.Context()

	// Advisory registration cap. Not transactional: a concurrent
	// registration can pass the same check.
	count, err := h.regSvc.CountRegistrations(ctx, req.Identity.NationalID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if count >= h.policy.MaxPerNationalID {
		response.Error(c, apperror.ErrRegistrationCapReached(h.policy.MaxPerNationalID))
		return
	}

	// Advisory fraud gate over every binding of the identity.
	reports, err := h.fraudSvc.ReportsForIdentity(ctx, req.Identity.NationalID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(reports) > 0 {
		response.Error(c, apperror.ErrFraudAssociated())
		return
	}

	binding, err := h.regSvc.CreateBinding(ctx, ports.CreateBindingRequest{
		PhoneNumber: phone,
		Identity:    toIdentity(req.Identity),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toBindingResponse(binding))
}

// Verify handles POST /api/v1/bindings/verify.
func (h *BindingHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	binding, err := h.verifySvc.Verify(c.Request.Context(), dto.NormalizePhone(req.PhoneNumber), toIdentity(req.Identity))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toBindingResponse(binding))
}

// Swap handles POST /api/v1/bindings/swap.
func (h *BindingHandler) Swap(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.swapSvc.Swap(c.Request.Context(), dto.NormalizePhone(req.PhoneNumber), toIdentity(req.Identity))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SwapResponse{
		PhoneNumber:  result.PhoneNumber,
		NewBindingID: result.NewBindingID,
	})
}

func toIdentity(req dto.IdentityRequest) domain.Identity {
	return domain.Identity{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		NationalID: req.NationalID,
		DateOfBirth: domain.Date{
			Year:  req.DateOfBirth.Year,
			Month: req.DateOfBirth.Month,
			Day:   req.DateOfBirth.Day,
		},
	}
}

func toBindingResponse(b *domain.Binding) dto.BindingResponse {
	resp := dto.BindingResponse{
		PhoneNumber: b.PhoneNumber,
		FirstName:   b.Identity.FirstName,
		LastName:    b.Identity.LastName,
		NationalID:  b.Identity.NationalID,
		BindingID:   b.BindingID.ID,
		ActivationDate: dto.DateOfBirth{
			Year:  b.BindingID.ActivationDate.Year,
			Month: b.BindingID.ActivationDate.Month,
			Day:   b.BindingID.ActivationDate.Day,
		},
	}
	if !b.CreatedAt.IsZero() {
		resp.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
