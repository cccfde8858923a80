package postgres

import (
	"context"
	"fmt"

	"sim-registry/internal/core/domain"
)

// FraudReportRepo implements ports.FraudReportRepository over the
// fraud_reports table. The table is written by the reporting system;
// this service only reads it.
type FraudReportRepo struct {
	pool Pool
}

// NewFraudReportRepo creates a new FraudReportRepo.
func NewFraudReportRepo(pool Pool) *FraudReportRepo {
	return &FraudReportRepo{pool: pool}
}

// ListByPhone returns every fraud report filed against a phone number.
func (r *FraudReportRepo) ListByPhone(ctx context.Context, phoneNumber string) ([]domain.FraudReport, error) {
	query := `SELECT phone_number, tx_type, tx_amount, tx_timestamp, tx_latitude, tx_longitude,
		tx_recipient_account, tx_device_id, tx_ip_address, tx_reported,
		reason, reported_at, reporter_phone
		FROM fraud_reports WHERE phone_number = $1`

	rows, err := r.pool.Query(ctx, query, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("list fraud reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.FraudReport
	for rows.Next() {
		var rep domain.FraudReport
		err := rows.Scan(
			&rep.PhoneNumber, &rep.Transaction.Type, &rep.Transaction.Amount, &rep.Transaction.Timestamp,
			&rep.Transaction.Location.Latitude, &rep.Transaction.Location.Longitude,
			&rep.Transaction.RecipientAccount, &rep.Transaction.DeviceID, &rep.Transaction.IPAddress,
			&rep.Transaction.Reported, &rep.Reason, &rep.ReportedAt, &rep.ReporterPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("scan fraud report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fraud reports: %w", err)
	}
	return reports, nil
}
