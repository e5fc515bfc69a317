// Package worker runs the scheduled-delivery poller: a recurring task that
// drains due pending notifications through the dispatch service.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=poller.go -destination=../mocks/worker/mock.go -package=mocks

type dispatchService interface {
	ProcessDue(ctx context.Context, strategy retry.Strategy) (int, error)
}

// Poller periodically processes due notifications.
type Poller struct {
	service  dispatchService
	interval time.Duration
	mu       sync.Mutex // single-flight guard between ticks
}

// NewPoller creates a poller that runs one pass every interval.
func NewPoller(service dispatchService, interval time.Duration) *Poller {
	return &Poller{service: service, interval: interval}
}

// Run blocks until ctx is cancelled, firing one pass per tick.
func (p *Poller) Run(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", p.interval).Msg("scheduler started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			p.RunOnce(ctx, strategy)
		}
	}
}

// RunOnce executes a single delivery pass.
//
// Ticks are single-flight: if the previous pass is still running the tick
// is skipped, so two passes can never race on the same due record. A pass
// that fails (store unavailable) is logged and retried on the next tick.
func (p *Poller) RunOnce(ctx context.Context, strategy retry.Strategy) {
	if !p.mu.TryLock() {
		zlog.Logger.Warn().Msg("previous pass still running, skipping tick")
		return
	}
	defer p.mu.Unlock()

	processed, err := p.service.ProcessDue(ctx, strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("scheduler pass failed")
		return
	}

	if processed > 0 {
		zlog.Logger.Info().Int("processed", processed).Msg("processed due notifications")
	}
}
