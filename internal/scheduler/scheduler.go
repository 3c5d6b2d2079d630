package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type dailyNotifier interface {
	SendDailySummaries(ctx context.Context) error
}

// Scheduler periodically drives the daily-summary dispatch. Idempotence
// lives in the service (the notification claim), so the tick interval
// only controls how promptly a summary goes out.
type Scheduler struct {
	scheduleService dailyNotifier
	interval        time.Duration
	logger          logger.Logger
}

func New(
	scheduleService dailyNotifier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		scheduleService: scheduleService,
		interval:        interval,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.scheduleService.SendDailySummaries(ctx); err != nil {
		s.logger.Error("failed to send daily summaries",
			logger.String("error", err.Error()),
		)
	}
}
