package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sim-registry/internal/core/domain"
	"sim-registry/internal/core/ports"
	"sim-registry/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FraudServiceConfig tunes the report fan-out.
type FraudServiceConfig struct {
	// MaxConcurrentLookups bounds the number of report lookups in flight
	// at once. Zero means unbounded.
	MaxConcurrentLookups int
	// LookupTimeout is the overall deadline across the whole fan-out.
	// Zero means no deadline beyond the caller's context.
	LookupTimeout time.Duration
	// ReportCacheTTL is how long aggregated results stay cached.
	ReportCacheTTL time.Duration
}

type fraudService struct {
	bindingRepo ports.BindingRepository
	reportRepo  ports.FraudReportRepository
	cache       ports.FraudReportCache // nil = caching disabled
	cfg         FraudServiceConfig
	log         zerolog.Logger
}

// NewFraudService creates the fraud report aggregation service.
func NewFraudService(
	bindingRepo ports.BindingRepository,
	reportRepo ports.FraudReportRepository,
	cache ports.FraudReportCache,
	cfg FraudServiceConfig,
	log zerolog.Logger,
) ports.FraudService {
	return &fraudService{
		bindingRepo: bindingRepo,
		reportRepo:  reportRepo,
		cache:       cache,
		cfg:         cfg,
		log:         log,
	}
}

// ReportsForIdentity merges the fraud reports of every binding owned by
// the national id. Lookups run concurrently; a failed lookup contributes
// an empty result for its phone number instead of failing the aggregate.
// Duplicates across bindings are kept as returned, never deduplicated.
func (s *fraudService) ReportsForIdentity(ctx context.Context, nationalID string) ([]domain.FraudReport, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, nationalID)
		if err != nil {
			s.log.Warn().Err(err).Str("national_id", nationalID).Msg("fraud report cache read failed, falling through")
		} else if ok {
			return cached, nil
		}
	}

	bindings, err := s.bindingRepo.ListByNationalID(ctx, nationalID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("list bindings: %w", err))
	}
	if len(bindings) == 0 {
		return []domain.FraudReport{}, nil
	}

	if s.cfg.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.LookupTimeout)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.cfg.MaxConcurrentLookups > 0 {
		g.SetLimit(s.cfg.MaxConcurrentLookups)
	}

	var mu sync.Mutex
	reports := make([]domain.FraudReport, 0)

	for _, b := range bindings {
		phone := b.PhoneNumber
		g.Go(func() error {
			found, err := s.reportRepo.ListByPhone(gctx, phone)
			if err != nil {
				// Availability over completeness: one failed sub-lookup
				// degrades to "no reports for that phone number".
				s.log.Warn().Err(err).
					Str("phone_number", phone).
					Str("national_id", nationalID).
					Msg("fraud report lookup failed, treating as empty")
				return nil
			}
			mu.Lock()
			reports = append(reports, found...)
			mu.Unlock()
			return nil
		})
	}

	// Lookups never return errors, so Wait only reflects ctx here.
	_ = g.Wait()

	if s.cache != nil && s.cfg.ReportCacheTTL > 0 && ctx.Err() == nil {
		if err := s.cache.Set(ctx, nationalID, reports, s.cfg.ReportCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("national_id", nationalID).Msg("fraud report cache write failed")
		}
	}

	return reports, nil
}
