package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule flushes the outbox every 30 seconds.
const DefaultSchedule = "@every 30s"

// Scheduler runs Worker.Flush on a cron schedule.
type Scheduler struct {
	worker   *Worker
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// NewScheduler creates a scheduler. An empty schedule uses DefaultSchedule.
func NewScheduler(worker *Worker, schedule string) *Scheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Scheduler{
		worker:   worker,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   slog.Default().With("component", "notify.scheduler"),
	}
}

// Start schedules the flush and returns. The scheduler stops when ctx is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() { s.runFlush(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule outbox flush: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("outbox scheduler started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *Scheduler) runFlush(ctx context.Context) {
	result, err := s.worker.Flush(ctx)
	if err != nil {
		s.logger.Error("scheduled outbox flush failed", "error", err)
		return
	}
	if result.Sent+result.Retried+result.Failed > 0 {
		s.logger.Info("scheduled outbox flush completed",
			"sent", result.Sent,
			"retried", result.Retried,
			"failed", result.Failed,
		)
	}
}

// Stop stops the scheduler and waits for a running flush to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		<-s.cron.Stop().Done()
		s.running = false
		s.logger.Info("outbox scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the next scheduled flush, or nil if none is scheduled.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
