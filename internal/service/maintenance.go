package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

type processFn func(ctx context.Context) error

// Maintenance runs the periodic background processes of the bot. Delivery
// timers are not handled here, they live in the timer registry.
type Maintenance struct {
	cleanup         processFn
	cleanupInterval time.Duration

	log *slog.Logger
}

func NewMaintenance(cleanup processFn, cleanupInterval time.Duration, log *slog.Logger) *Maintenance {
	return &Maintenance{
		cleanup:         cleanup,
		cleanupInterval: cleanupInterval,

		log: log.With("component", "maintenance"),
	}
}

// Start blocks until ctx is done.
func (s *Maintenance) Start(ctx context.Context) {
	wg := &sync.WaitGroup{}
	wg.Go(func() {
		s.run(ctx, s.cleanupInterval, "cleanup_records", s.cleanup)
	})
	wg.Wait()
}

func (s *Maintenance) run(ctx context.Context, interval time.Duration, process string, fn processFn) {
	log := s.log.With("process", process)
	log.InfoContext(ctx, "starting maintenance loop", "interval", interval)
	defer log.InfoContext(ctx, "maintenance loop stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			err := withRecovery(ctx, fn, log)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					log.InfoContext(ctx, "maintenance run interrupted", "error", err)
					continue
				}
				log.ErrorContext(ctx, "maintenance run failed", "error", err)
			}
		}
	}
}

func withRecovery(ctx context.Context, fn processFn, log *slog.Logger) error {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "recovered from panic", "error", r)
		}
	}()
	return fn(ctx)
}
