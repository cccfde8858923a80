package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"sim-registry/internal/core/domain"
	"sim-registry/internal/core/ports/mocks"
	"sim-registry/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fraudTestDeps struct {
	bindingRepo *mocks.MockBindingRepository
	reportRepo  *mocks.MockFraudReportRepository
	cache       *mocks.MockFraudReportCache
	ctrl        *gomock.Controller
}

func setupFraudService(t *testing.T, withCache bool, cfg FraudServiceConfig) (*fraudService, *fraudTestDeps) {
	ctrl := gomock.NewController(t)
	d := &fraudTestDeps{
		bindingRepo: mocks.NewMockBindingRepository(ctrl),
		reportRepo:  mocks.NewMockFraudReportRepository(ctrl),
		ctrl:        ctrl,
	}
	var svc *fraudService
	if withCache {
		d.cache = mocks.NewMockFraudReportCache(ctrl)
		svc = NewFraudService(d.bindingRepo, d.reportRepo, d.cache, cfg, zerolog.Nop()).(*fraudService)
	} else {
		svc = NewFraudService(d.bindingRepo, d.reportRepo, nil, cfg, zerolog.Nop()).(*fraudService)
	}
	return svc, d
}

func reportFor(phone, reason string) domain.FraudReport {
	return domain.FraudReport{
		PhoneNumber: phone,
		Transaction: domain.Transaction{
			Type:             domain.TransactionTypeSend,
			Amount:           5000,
			Timestamp:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			RecipientAccount: "ACC-77",
			DeviceID:         "dev-1",
		},
		Reason:        reason,
		ReportedAt:    time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		ReporterPhone: "+19999999999",
	}
}

func TestFraudService_ReportsForIdentity_NoBindings(t *testing.T) {
	svc, d := setupFraudService(t, false, FraudServiceConfig{})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.bindingRepo.EXPECT().ListByNationalID(ctx, "N0").Return(nil, nil)
	// No report lookups at all when the identity owns no bindings.

	reports, err := svc.ReportsForIdentity(ctx, "N0")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestFraudService_ReportsForIdentity_MergesAllBindings(t *testing.T) {
	svc, d := setupFraudService(t, false, FraudServiceConfig{MaxConcurrentLookups: 8})
	defer d.ctrl.Finish()
	ctx := context.Background()

	bindings := []domain.Binding{
		{PhoneNumber: "+1111"},
		{PhoneNumber: "+2222"},
		{PhoneNumber: "+3333"},
	}
	d.bindingRepo.EXPECT().ListByNationalID(ctx, "N9").Return(bindings, nil)
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+1111").Return([]domain.FraudReport{reportFor("+1111", "stolen device")}, nil)
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+2222").Return(nil, nil)
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+3333").Return([]domain.FraudReport{
		reportFor("+3333", "unauthorized withdrawal"),
		reportFor("+3333", "phishing transfer"),
	}, nil)

	reports, err := svc.ReportsForIdentity(ctx, "N9")
	require.NoError(t, err)
	require.Len(t, reports, 3)

	byPhone := make(map[string]int)
	for _, r := range reports {
		byPhone[r.PhoneNumber]++
	}
	assert.Equal(t, 1, byPhone["+1111"])
	assert.Equal(t, 2, byPhone["+3333"])
}

func TestFraudService_ReportsForIdentity_PartialFailureTolerated(t *testing.T) {
	svc, d := setupFraudService(t, false, FraudServiceConfig{MaxConcurrentLookups: 8})
	defer d.ctrl.Finish()
	ctx := context.Background()

	bindings := []domain.Binding{
		{PhoneNumber: "+1111"},
		{PhoneNumber: "+2222"},
		{PhoneNumber: "+3333"},
	}
	d.bindingRepo.EXPECT().ListByNationalID(ctx, "N9").Return(bindings, nil)
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+1111").Return([]domain.FraudReport{reportFor("+1111", "stolen device")}, nil)
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+2222").Return(nil, errors.New("timeout"))
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+3333").Return([]domain.FraudReport{reportFor("+3333", "phishing transfer")}, nil)

	reports, err := svc.ReportsForIdentity(ctx, "N9")
	require.NoError(t, err, "one failed lookup must not fail the aggregate")
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.NotEqual(t, "+2222", r.PhoneNumber)
	}
}

func TestFraudService_ReportsForIdentity_DuplicatesKept(t *testing.T) {
	svc, d := setupFraudService(t, false, FraudServiceConfig{})
	defer d.ctrl.Finish()
	ctx := context.Background()

	same := reportFor("+1111", "stolen device")
	d.bindingRepo.EXPECT().ListByNationalID(ctx, "N9").Return([]domain.Binding{
		{PhoneNumber: "+1111"},
		{PhoneNumber: "+2222"},
	}, nil)
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+1111").Return([]domain.FraudReport{same}, nil)
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+2222").Return([]domain.FraudReport{same}, nil)

	reports, err := svc.ReportsForIdentity(ctx, "N9")
	require.NoError(t, err)
	assert.Len(t, reports, 2, "identical reports from different bindings are not deduplicated")
}

func TestFraudService_ReportsForIdentity_LookupDeadline(t *testing.T) {
	svc, d := setupFraudService(t, true, FraudServiceConfig{
		LookupTimeout:  50 * time.Millisecond,
		ReportCacheTTL: 30 * time.Second,
	})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().Get(ctx, "N9").Return(nil, false, nil)
	d.bindingRepo.EXPECT().ListByNationalID(ctx, "N9").Return([]domain.Binding{
		{PhoneNumber: "+1111"},
		{PhoneNumber: "+2222"},
	}, nil)
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+1111").
		Return([]domain.FraudReport{reportFor("+1111", "stolen device")}, nil)
	// This lookup never answers on its own; only the fan-out deadline
	// releases it.
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+2222").DoAndReturn(
		func(lookupCtx context.Context, phone string) ([]domain.FraudReport, error) {
			<-lookupCtx.Done()
			return nil, lookupCtx.Err()
		})
	// No cache.Set expectation: results truncated by the deadline must
	// not be cached.

	start := time.Now()
	reports, err := svc.ReportsForIdentity(ctx, "N9")
	require.NoError(t, err, "a lookup stuck past the deadline must not fail the aggregate")
	assert.Less(t, time.Since(start), 2*time.Second, "the deadline must release the stuck lookup")
	require.Len(t, reports, 1)
	assert.Equal(t, "+1111", reports[0].PhoneNumber)
}

func TestFraudService_ReportsForIdentity_CallerCancellation(t *testing.T) {
	svc, d := setupFraudService(t, false, FraudServiceConfig{LookupTimeout: 5 * time.Second})
	defer d.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d.bindingRepo.EXPECT().ListByNationalID(gomock.Any(), "N9").
		Return([]domain.Binding{{PhoneNumber: "+1111"}}, nil)

	var observed atomic.Value
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+1111").DoAndReturn(
		func(lookupCtx context.Context, phone string) ([]domain.FraudReport, error) {
			observed.Store(lookupCtx.Err())
			return nil, lookupCtx.Err()
		})

	reports, err := svc.ReportsForIdentity(ctx, "N9")
	require.NoError(t, err)
	assert.Empty(t, reports)

	lookupErr, _ := observed.Load().(error)
	assert.ErrorIs(t, lookupErr, context.Canceled, "cancellation must reach the in-flight lookup")
}

func TestFraudService_ReportsForIdentity_BoundedConcurrency(t *testing.T) {
	svc, d := setupFraudService(t, false, FraudServiceConfig{MaxConcurrentLookups: 2})
	defer d.ctrl.Finish()
	ctx := context.Background()

	var bindings []domain.Binding
	for i := 0; i < 6; i++ {
		bindings = append(bindings, domain.Binding{PhoneNumber: fmt.Sprintf("+100%d", i)})
	}
	d.bindingRepo.EXPECT().ListByNationalID(ctx, "N9").Return(bindings, nil)

	var inFlight, peak atomic.Int32
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), gomock.Any()).Times(6).DoAndReturn(
		func(context.Context, string) ([]domain.FraudReport, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return nil, nil
		})

	reports, err := svc.ReportsForIdentity(ctx, "N9")
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.LessOrEqual(t, peak.Load(), int32(2), "no more lookups in flight than the configured bound")
}

func TestFraudService_ReportsForIdentity_BindingListFailure(t *testing.T) {
	svc, d := setupFraudService(t, false, FraudServiceConfig{})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.bindingRepo.EXPECT().ListByNationalID(ctx, "N9").Return(nil, errors.New("connection reset"))

	_, err := svc.ReportsForIdentity(ctx, "N9")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestFraudService_ReportsForIdentity_CacheHit(t *testing.T) {
	svc, d := setupFraudService(t, true, FraudServiceConfig{ReportCacheTTL: 30 * time.Second})
	defer d.ctrl.Finish()
	ctx := context.Background()

	cached := []domain.FraudReport{reportFor("+1111", "stolen device")}
	d.cache.EXPECT().Get(ctx, "N9").Return(cached, true, nil)
	// Cache hit short-circuits both store queries.

	reports, err := svc.ReportsForIdentity(ctx, "N9")
	require.NoError(t, err)
	assert.Equal(t, cached, reports)
}

func TestFraudService_ReportsForIdentity_CacheMissPopulates(t *testing.T) {
	svc, d := setupFraudService(t, true, FraudServiceConfig{ReportCacheTTL: 30 * time.Second})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().Get(ctx, "N9").Return(nil, false, nil)
	d.bindingRepo.EXPECT().ListByNationalID(ctx, "N9").Return([]domain.Binding{{PhoneNumber: "+1111"}}, nil)
	found := []domain.FraudReport{reportFor("+1111", "stolen device")}
	d.reportRepo.EXPECT().ListByPhone(gomock.Any(), "+1111").Return(found, nil)
	d.cache.EXPECT().Set(gomock.Any(), "N9", found, 30*time.Second).Return(nil)

	reports, err := svc.ReportsForIdentity(ctx, "N9")
	require.NoError(t, err)
	assert.Equal(t, found, reports)
}

func TestFraudService_ReportsForIdentity_CacheFailureFallsThrough(t *testing.T) {
	svc, d := setupFraudService(t, true, FraudServiceConfig{ReportCacheTTL: 30 * time.Second})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.cache.EXPECT().Get(ctx, "N9").Return(nil, false, errors.New("redis down"))
	d.bindingRepo.EXPECT().ListByNationalID(ctx, "N9").Return(nil, nil)

	reports, err := svc.ReportsForIdentity(ctx, "N9")
	require.NoError(t, err)
	assert.Empty(t, reports)
}
