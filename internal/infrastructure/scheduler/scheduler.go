// Package scheduler wires up the cron job that periodically deactivates
// expired job postings.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/joblens/joblens-backend/internal/usecase/sweep"
)

// Scheduler wraps robfig/cron around the expiration sweep.
type Scheduler struct {
	cron   *cron.Cron
	sweep  *sweep.SweepUseCase
	logger *zap.Logger
	spec   string // cron spec, e.g. "@hourly"
}

func New(sweepUseCase *sweep.SweepUseCase, logger *zap.Logger, spec string) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		sweep:  sweepUseCase,
		logger: logger,
		spec:   spec,
	}
}

// Start registers the sweep and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if _, err := s.sweep.DeactivateExpired(ctx); err != nil {
			s.logger.Error("scheduled sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("sweep scheduler started", zap.String("spec", s.spec))
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("sweep scheduler stopped")
}
