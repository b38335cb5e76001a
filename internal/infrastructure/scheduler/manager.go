// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/deskline-inc/deskline/internal/shared/biztime"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

// BatchJob processes one batch per call and returns the number of items
// it handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// DefaultResetTokenPurgeSpec runs the reset token purge every 15 minutes.
const DefaultResetTokenPurgeSpec = "@every 15m"

// SchedulerManager owns one cron instance for all maintenance jobs.
type SchedulerManager struct {
	cron   *cron.Cron
	logger logger.Interface

	started   bool
	startedMu sync.Mutex
}

func NewSchedulerManager(log logger.Interface) *SchedulerManager {
	return &SchedulerManager{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(
				cron.Recover(cronLogger{log: log}),
				cron.SkipIfStillRunning(cronLogger{log: log}),
			),
		),
		logger: log,
	}
}

// RegisterResetTokenPurge schedules removal of expired password reset
// tokens. An empty spec uses DefaultResetTokenPurgeSpec.
func (m *SchedulerManager) RegisterResetTokenPurge(spec string, job BatchJob) error {
	if spec == "" {
		spec = DefaultResetTokenPurgeSpec
	}
	_, err := m.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		m.runBatch(ctx, "reset-token-purge", job)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for reset token purge: %w", spec, err)
	}
	m.logger.Infow("registered reset token purge job", "schedule", spec)
	return nil
}

func (m *SchedulerManager) runBatch(ctx context.Context, name string, job BatchJob) {
	startTime := biztime.NowUTC()

	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("scheduled job failed",
			"job", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}
	if count > 0 {
		m.logger.Infow("scheduled job processed items",
			"job", name,
			"count", count,
			"duration", time.Since(startTime),
		)
		return
	}
	m.logger.Debugw("scheduled job found nothing to do", "job", name)
}

// Start begins running jobs in the background. Calling it twice is a no-op.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if m.started {
		return
	}
	m.cron.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.cron.Entries()))
}

// Stop waits for running jobs to finish or ctx to expire.
func (m *SchedulerManager) Stop(ctx context.Context) {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if !m.started {
		return
	}
	m.started = false

	select {
	case <-m.cron.Stop().Done():
		m.logger.Infow("scheduler stopped")
	case <-ctx.Done():
		m.logger.Warnw("scheduler stop timed out", "error", ctx.Err())
	}
}

// cronLogger adapts logger.Interface to cron.Logger.
type cronLogger struct {
	log logger.Interface
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
