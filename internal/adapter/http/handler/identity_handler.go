package handler

import (
	"time"

	"sim-registry/internal/adapter/http/dto"
	"sim-registry/internal/core/domain"
	"sim-registry/internal/core/ports"
	"sim-registry/pkg/apperror"
	"sim-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// IdentityHandler serves read-side lookups keyed by national id.
type IdentityHandler struct {
	regSvc   ports.RegistrationService
	fraudSvc ports.FraudService
	maxPerID int
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(regSvc ports.RegistrationService, fraudSvc ports.FraudService, maxPerID int) *IdentityHandler {
	return &IdentityHandler{
		regSvc:   regSvc,
		fraudSvc: fraudSvc,
		maxPerID: maxPerID,
	}
}

// Registrations handles GET /api/v1/identities/:nationalId/registrations.
func (h *IdentityHandler) Registrations(c *gin.Context) {
	nationalID := c.Param("nationalId")
	if !dto.ValidNationalID(nationalID) {
		response.Error(c, apperror.Validation("invalid national id"))
		return
	}

	count, err := h.regSvc.CountRegistrations(c.Request.Context(), nationalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RegistrationCountResponse{
		NationalID: nationalID,
		Count:      count,
		Max:        h.maxPerID,
		CapReached: count >= h.maxPerID,
	})
}

// FraudReports handles GET /api/v1/identities/:nationalId/fraud-reports.
func (h *IdentityHandler) FraudReports(c *gin.Context) {
	nationalID := c.Param("nationalId")
	if !dto.ValidNationalID(nationalID) {
		response.Error(c, apperror.Validation("invalid national id"))
		return
	}

	reports, err := h.fraudSvc.ReportsForIdentity(c.Request.Context(), nationalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.FraudReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, toFraudReport(r))
	}

	response.OK(c, dto.FraudReportsResponse{
		NationalID: nationalID,
		Reports:    out,
	})
}

func toFraudReport(r domain.FraudReport) dto.FraudReport {
	return dto.FraudReport{
		PhoneNumber: r.PhoneNumber,
		Transaction: dto.Transaction{
			Type:             string(r.Transaction.Type),
			Amount:           r.Transaction.Amount,
			Timestamp:        r.Transaction.Timestamp.Format(time.RFC3339),
			Latitude:         r.Transaction.Location.Latitude,
			Longitude:        r.Transaction.Location.Longitude,
			RecipientAccount: r.Transaction.RecipientAccount,
			DeviceID:         r.Transaction.DeviceID,
			IPAddress:        r.Transaction.IPAddress,
		},
		Reason:        r.Reason,
		ReportedAt:    r.ReportedAt.Format(time.RFC3339),
		ReporterPhone: r.ReporterPhone,
	}
}
