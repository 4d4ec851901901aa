package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"shipping-bridge.backend/internal/domain/repositories"
	"shipping-bridge.backend/pkg/logger"
)

// StateSweepJob removes expired pending OAuth states on a fixed interval.
type StateSweepJob struct {
	store    repositories.StateStore
	interval time.Duration
	ttl      time.Duration
	stop     chan struct{}
}

func NewStateSweepJob(store repositories.StateStore, interval, ttl time.Duration) *StateSweepJob {
	return &StateSweepJob{
		store:    store,
		interval: interval,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
}

func (j *StateSweepJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting OAuth state sweep job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "OAuth state sweep job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "OAuth state sweep job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *StateSweepJob) Stop() {
	close(j.stop)
}

func (j *StateSweepJob) sweep(ctx context.Context) {
	removed, err := j.store.SweepExpired(ctx, time.Now().Add(-j.ttl))
	if err != nil {
		logger.Error(ctx, "Error sweeping expired OAuth states", zap.Error(err))
		return
	}
	if removed > 0 {
		logger.Info(ctx, "Swept expired OAuth states", zap.Int("removed", removed))
	}
}
