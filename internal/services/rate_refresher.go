package services

import (
	"context"
	"sync"
	"time"

	"github.com/juju/clock"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/interfaces"
	"github.com/convertly/convertly-api/internal/logger"
)

const (
	DefaultRefreshInterval = time.Hour
	defaultRefreshTimeout  = 30 * time.Second
)

// RateRefresher refreshes exchange rates once on Start and then on a fixed
// interval until Stop.
type RateRefresher struct {
	service  interfaces.ExchangeRateService
	clock    clock.Clock
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewRateRefresher creates a refresher. A nil clock uses the wall clock and a
// non-positive interval uses DefaultRefreshInterval.
func NewRateRefresher(service interfaces.ExchangeRateService, clk clock.Clock, interval time.Duration) *RateRefresher {
	if clk == nil {
		clk = clock.WallClock
	}
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RateRefresher{
		service:  service,
		clock:    clk,
		interval: interval,
		timeout:  defaultRefreshTimeout,
		logger:   logger.Log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the refresh loop. Calls after the first are no-ops.
func (r *RateRefresher) Start() {
	r.startOnce.Do(func() {
		r.logger.Info("Starting rate refresher", zap.Duration("interval", r.interval))
		r.wg.Add(1)
		go r.run()
	})
}

// Stop cancels any in-flight refresh and waits for the loop to exit. It is
// safe to call more than once, and before Start.
func (r *RateRefresher) Stop() {
	r.stopOnce.Do(func() {
		r.logger.Info("Stopping rate refresher")
		r.cancel()
	})
	r.wg.Wait()
}

func (r *RateRefresher) run() {
	defer r.wg.Done()

	r.refreshOnce()
	for {
		select {
		case <-r.clock.After(r.interval):
			r.refreshOnce()
		case <-r.ctx.Done():
			return
		}
	}
}

func (r *RateRefresher) refreshOnce() {
	if r.ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
	defer cancel()

	table, err := r.service.Refresh(ctx)
	if err != nil {
		r.logger.Warn("Scheduled rate refresh fell back",
			zap.String("source", table.Source()),
			zap.Error(err))
		return
	}
	r.logger.Debug("Scheduled rate refresh complete", zap.Uint64("version", table.Version()))
}
