// Package sweeper actively removes expired reset tokens. Lookups already
// reject expired tokens, so the sweep only keeps the table from growing.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/glowbook/salon-directory/internal/metrics"
	"github.com/robfig/cron/v3"
)

const sweepSchedule = "@every 5m"

// TokenPurger is the slice of the user repository the sweeper needs.
type TokenPurger interface {
	DeleteExpiredResetTokens(ctx context.Context) (int64, error)
}

type Sweeper struct {
	store  TokenPurger
	logger *slog.Logger
	cron   *cron.Cron
}

func New(store TokenPurger, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:  store,
		logger: logger.With("component", "sweeper"),
		cron:   cron.New(),
	}
}

// Start schedules the sweep. It returns immediately; the cron runner owns
// the goroutine.
func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(sweepSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.Sweep(ctx); err != nil {
			s.logger.Error("sweep expired reset tokens", "error", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule and returns a context that is done once any
// in-flight sweep has finished.
func (s *Sweeper) Stop() context.Context {
	return s.cron.Stop()
}

// Sweep deletes every token whose expiry has passed and reports the count.
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteExpiredResetTokens(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.ResetTokensSweptTotal.Add(float64(n))
		s.logger.Info("swept expired reset tokens", "count", n)
	}
	return n, nil
}
