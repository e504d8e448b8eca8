package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/quantdash/pkg/logger"
)

type fakeJob struct {
	name     string
	schedule string
	err      error
	runs     int
}

func (j *fakeJob) Name() string     { return j.name }
func (j *fakeJob) Schedule() string { return j.schedule }
func (j *fakeJob) Run(ctx context.Context) error {
	j.runs++
	return j.err
}

func newTestScheduler() *Scheduler {
	s := New(logger.NewWithWriter("error", io.Discard))
	s.retryDelay = 0
	return s
}

func TestScheduler_AddJob(t *testing.T) {
	s := newTestScheduler()

	job := &fakeJob{name: "warm", schedule: "0 0 17 * * *"}
	require.NoError(t, s.AddJob(job))

	assert.Equal(t, []string{"warm"}, s.GetAllJobs())
}

func TestScheduler_AddJobDuplicate(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.AddJob(&fakeJob{name: "warm", schedule: "0 0 17 * * *"}))
	assert.Error(t, s.AddJob(&fakeJob{name: "warm", schedule: "0 0 18 * * *"}))
}

func TestScheduler_AddJobBadSchedule(t *testing.T) {
	s := newTestScheduler()
	assert.Error(t, s.AddJob(&fakeJob{name: "warm", schedule: "not a cron expr"}))
}

func TestScheduler_RunJobUnknown(t *testing.T) {
	s := newTestScheduler()
	assert.Error(t, s.RunJob("missing"))
}

func TestScheduler_RunJobRecordsHistory(t *testing.T) {
	s := newTestScheduler()

	job := &fakeJob{name: "warm", schedule: "0 0 17 * * *"}
	require.NoError(t, s.AddJob(job))

	s.runJob(job)

	history := s.History("warm")
	require.Len(t, history, 1)
	assert.True(t, history[0].Success)
	assert.Equal(t, "warm", history[0].JobName)
	assert.Equal(t, 1, job.runs)
}

func TestScheduler_RunJobRetriesThenFails(t *testing.T) {
	s := newTestScheduler()

	job := &fakeJob{name: "warm", schedule: "0 0 17 * * *", err: errors.New("store down")}
	require.NoError(t, s.AddJob(job))

	s.runJob(job)

	// Initial attempt plus maxRetries.
	assert.Equal(t, s.maxRetries+1, job.runs)

	history := s.History("warm")
	require.Len(t, history, 1)
	assert.False(t, history[0].Success)
	assert.Equal(t, "store down", history[0].Error)
}

func TestJobHistory_Cap(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: "warm", Success: true})
	}
	assert.Len(t, h.Results, 100)
}

func TestJobHistory_SuccessRate(t *testing.T) {
	h := &JobHistory{}
	assert.Equal(t, 0.0, h.SuccessRate())

	h.AddResult(JobResult{Success: true})
	h.AddResult(JobResult{Success: true})
	h.AddResult(JobResult{Success: false})
	h.AddResult(JobResult{Success: false})
	assert.Equal(t, 0.5, h.SuccessRate())
}
