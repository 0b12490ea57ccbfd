package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/convertly/convertly-api/internal/constants"
	"github.com/convertly/convertly-api/internal/interfaces"
	"github.com/convertly/convertly-api/internal/logger"
	"github.com/convertly/convertly-api/internal/rates"
)

// ExchangeRateServiceConfig wires the rate sources. Only BaseCurrency is
// required; a nil Provider, Repository or Publisher disables that step.
type ExchangeRateServiceConfig struct {
	BaseCurrency string
	Provider     interfaces.RateProvider
	Repository   interfaces.RateRepository
	Publisher    interfaces.RateEventPublisher
	Seed         *rates.Table
	Metrics      interfaces.ServiceMetrics
}

// ExchangeRateService builds new rate tables and publishes them to the
// shared store. It is the only writer of the store.
type ExchangeRateService struct {
	store      *rates.Store
	base       string
	provider   interfaces.RateProvider
	repository interfaces.RateRepository
	publisher  interfaces.RateEventPublisher
	seed       *rates.Table
	metrics    interfaces.ServiceMetrics
	logger     *zap.Logger
	now        func() time.Time

	group   singleflight.Group
	version atomic.Uint64
}

// NewExchangeRateService creates the service. The version counter continues
// from any table already in store.
func NewExchangeRateService(store *rates.Store, cfg ExchangeRateServiceConfig) *ExchangeRateService {
	base := rates.NormalizeCode(cfg.BaseCurrency)
	if base == "" {
		base = constants.INRCurrency
	}
	seed := cfg.Seed
	if seed == nil {
		seed = rates.DefaultTable()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	s := &ExchangeRateService{
		store:      store,
		base:       base,
		provider:   cfg.Provider,
		repository: cfg.Repository,
		publisher:  cfg.Publisher,
		seed:       seed,
		metrics:    metrics,
		logger:     logger.Log,
		now:        time.Now,
	}
	s.version.Store(store.Load().Version())
	return s
}

// Current returns the installed table, or nil before the first refresh.
func (s *ExchangeRateService) Current() *rates.Table {
	return s.store.Load()
}

// Refresh builds a new table, trying the provider, then the persisted table,
// then the current or seed table. It always leaves a table installed and
// returns it. The error is non-nil when the provider could not be used, even
// though a fallback table was installed. Concurrent calls share one refresh.
func (s *ExchangeRateService) Refresh(ctx context.Context) (*rates.Table, error) {
	type outcome struct {
		table *rates.Table
		err   error
	}
	v, _, _ := s.group.Do("refresh", func() (interface{}, error) {
		t, err := s.refresh(ctx)
		return outcome{table: t, err: err}, nil
	})
	out := v.(outcome)
	return out.table, out.err
}

func (s *ExchangeRateService) refresh(ctx context.Context) (*rates.Table, error) {
	start := s.now()
	previous := s.store.Load()

	table, providerErr := s.fetchFromProvider(ctx)
	if providerErr == nil {
		installed := s.install(table)
		s.metrics.RecordRefresh(constants.RateSourceProvider, true, s.now().Sub(start))
		s.persist(ctx, installed)
		if !installed.SameRates(previous) {
			s.publish(ctx, installed)
		}
		s.logger.Info("Exchange rates refreshed",
			zap.String("source", installed.Source()),
			zap.String("base", installed.Base()),
			zap.Int("currencies", installed.Len()),
			zap.Uint64("version", installed.Version()))
		return installed, nil
	}

	s.logger.Warn("Exchange rate provider unavailable, falling back", zap.Error(providerErr))
	err := fmt.Errorf("failed to fetch rates from provider: %w", providerErr)

	// A table that came from the provider or the store is at least as fresh
	// as anything persisted, so the store is only consulted at startup or
	// while running on the seed.
	if previous == nil || previous.Source() == constants.RateSourceSeed {
		if stored, loadErr := s.loadFromRepository(ctx); loadErr == nil {
			installed := s.install(stored)
			s.metrics.RecordRefresh(constants.RateSourceStore, false, s.now().Sub(start))
			s.logger.Info("Installed persisted exchange rates",
				zap.Int("currencies", installed.Len()),
				zap.Uint64("version", installed.Version()))
			return installed, err
		} else if !errors.Is(loadErr, errNoRepository) {
			s.logger.Warn("Failed to load persisted exchange rates", zap.Error(loadErr))
		}
	}

	if previous != nil {
		s.metrics.RecordRefresh(constants.RateSourceCurrent, false, s.now().Sub(start))
		s.logger.Info("Keeping current exchange rates",
			zap.String("source", previous.Source()),
			zap.Uint64("version", previous.Version()))
		return previous, err
	}

	installed := s.install(s.seed.WithSource(constants.RateSourceSeed))
	s.metrics.RecordRefresh(constants.RateSourceSeed, false, s.now().Sub(start))
	s.logger.Warn("Installed seed exchange rates", zap.Int("currencies", installed.Len()))
	return installed, err
}

var (
	errNoProvider   = errors.New("no rate provider configured")
	errNoRepository = errors.New("no rate repository configured")
)

func (s *ExchangeRateService) fetchFromProvider(ctx context.Context) (*rates.Table, error) {
	if s.provider == nil {
		return nil, errNoProvider
	}
	resp, err := s.provider.GetLatestRates(ctx, s.base)
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(resp.Rates)+1)
	for code, rate := range resp.Rates {
		values[code] = rate
	}
	base := rates.NormalizeCode(resp.Base)
	if base == "" {
		base = s.base
	}
	if _, ok := values[base]; !ok {
		values[base] = 1
	}

	fetchedAt := resp.UpdatedAt()
	if fetchedAt.IsZero() {
		fetchedAt = s.now().UTC()
	}
	return rates.NewTable(base, values, nil, constants.RateSourceProvider, fetchedAt)
}

func (s *ExchangeRateService) loadFromRepository(ctx context.Context) (*rates.Table, error) {
	if s.repository == nil {
		return nil, errNoRepository
	}
	return s.repository.LoadTable(ctx, s.base)
}

func (s *ExchangeRateService) install(t *rates.Table) *rates.Table {
	versioned := t.WithVersion(s.version.Add(1))
	s.store.Replace(versioned)
	s.metrics.SetRateTable(versioned.Version(), versioned.Len())
	return versioned
}

func (s *ExchangeRateService) persist(ctx context.Context, t *rates.Table) {
	if s.repository == nil {
		return
	}
	if err := s.repository.SaveTable(ctx, t); err != nil {
		s.logger.Warn("Failed to persist exchange rates", zap.Error(err))
	}
}

func (s *ExchangeRateService) publish(ctx context.Context, t *rates.Table) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRatesUpdated(ctx, t); err != nil {
		s.logger.Warn("Failed to publish rate update event", zap.Error(err))
	}
}
