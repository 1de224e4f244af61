// Package scheduler runs periodic maintenance jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// DefaultSessionCleanupInterval is used when no interval is configured.
const DefaultSessionCleanupInterval = time.Hour

// SessionPurger removes expired login sessions and reports how many went.
type SessionPurger interface {
	Execute(ctx context.Context) (int64, error)
}

// SchedulerManager owns the single gocron scheduler of the process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler bound to the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterSessionCleanupJob purges expired admin sessions every interval,
// starting immediately.
func (m *SchedulerManager) RegisterSessionCleanupJob(purger SessionPurger, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSessionCleanupInterval
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			m.purgeSessions(ctx, purger)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("session", "cleanup"),
		gocron.WithName("session-cleanup"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered session cleanup job", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) purgeSessions(ctx context.Context, purger SessionPurger) {
	startTime := biztime.NowUTC()

	removed, err := purger.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to purge expired sessions",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Debugw("session cleanup finished",
		"removed", removed,
		"duration", time.Since(startTime),
	)
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop shuts the scheduler down and waits for running jobs.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
