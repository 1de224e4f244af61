package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) Execute(context.Context) (int64, error) {
	p.calls.Add(1)
	return 2, p.err
}

func TestSchedulerManager_SessionCleanupRunsImmediately(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	purger := &countingPurger{}
	require.NoError(t, m.RegisterSessionCleanupJob(purger, time.Hour))

	jobs := m.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "session-cleanup", jobs[0].Name())

	m.Start()
	assert.True(t, m.IsStarted())

	assert.Eventually(t, func() bool { return purger.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
}

func TestSchedulerManager_PurgeErrorIsLogged(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	purger := &countingPurger{err: errors.New("db down")}
	m.purgeSessions(context.Background(), purger)

	assert.Equal(t, int32(1), purger.calls.Load())
}

func TestSchedulerManager_StopBeforeStart(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	assert.NoError(t, m.Stop())
}
