package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescan/qrmenu/internal/shared/logger"
)

type countingJob struct {
	calls atomic.Int32
	err   error
}

func (j *countingJob) Execute(ctx context.Context) (int, error) {
	j.calls.Add(1)
	return 3, j.err
}

func TestSchedulerManager_RunsCleanupImmediately(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	job := &countingJob{}
	require.NoError(t, m.RegisterOfferCleanupJob(job, time.Hour))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "offer-cleanup", m.Jobs()[0].Name())

	m.Start()
	assert.True(t, m.IsStarted())

	assert.Eventually(t, func() bool { return job.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	assert.NoError(t, m.Stop())
}

func TestSchedulerManager_FailedRunIsLogged(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	job := &countingJob{err: errors.New("db down")}
	m.runOfferCleanup(context.Background(), job)
	assert.Equal(t, int32(1), job.calls.Load())
}
