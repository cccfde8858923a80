package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"sim-registry/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportCols() []string {
	return []string{
		"phone_number", "tx_type", "tx_amount", "tx_timestamp", "tx_latitude", "tx_longitude",
		"tx_recipient_account", "tx_device_id", "tx_ip_address", "tx_reported",
		"reason", "reported_at", "reporter_phone",
	}
}

func TestFraudReportRepo_ListByPhone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudReportRepo(mock)
	txTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	reportedAt := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	ip := "203.0.113.9"

	rows := pgxmock.NewRows(reportCols()).
		AddRow("+10000000001", "SEND", int64(5000), txTime, 10.5, 106.7,
			"ACC-77", "dev-1", &ip, true,
			"unauthorized transfer", reportedAt, "+19999999999").
		AddRow("+10000000001", "WITHDRAW", int64(200000), txTime, 10.5, 106.7,
			"ACC-12", "dev-2", nil, false,
			"stolen device", reportedAt, "+18888888888")

	mock.ExpectQuery("SELECT .+ FROM fraud_reports WHERE phone_number").
		WithArgs("+10000000001").
		WillReturnRows(rows)

	reports, err := repo.ListByPhone(context.Background(), "+10000000001")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, domain.TransactionTypeSend, reports[0].Transaction.Type)
	assert.Equal(t, int64(5000), reports[0].Transaction.Amount)
	assert.Equal(t, "unauthorized transfer", reports[0].Reason)
	require.NotNil(t, reports[0].Transaction.IPAddress)
	assert.Equal(t, ip, *reports[0].Transaction.IPAddress)

	assert.Equal(t, domain.TransactionTypeWithdraw, reports[1].Transaction.Type)
	assert.Nil(t, reports[1].Transaction.IPAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudReportRepo_ListByPhone_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudReportRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM fraud_reports WHERE phone_number").
		WithArgs("+10000000009").
		WillReturnRows(pgxmock.NewRows(reportCols()))

	reports, err := repo.ListByPhone(context.Background(), "+10000000009")
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudReportRepo_ListByPhone_QueryFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudReportRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM fraud_reports WHERE phone_number").
		WithArgs("+10000000001").
		WillReturnError(errors.New("connection reset"))

	_, err = repo.ListByPhone(context.Background(), "+10000000001")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
