package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/salary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSalaryService struct {
	salary.SalaryService
	calls []struct{ year, month int }
	err   error
}

func (f *fakeSalaryService) CompileAll(ctx context.Context, year, month int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.calls = append(f.calls, struct{ year, month int }{year, month})
	return 1, nil
}

func newSalaryJobsAt(svc *fakeSalaryService, now *time.Time) *SalaryJobs {
	jobs := NewSalaryJobs(svc)
	jobs.now = func() time.Time { return *now }
	return jobs
}

func TestRegenerateCurrentPeriod_SkipsBeforeTwoUTC(t *testing.T) {
	svc := &fakeSalaryService{}
	now := time.Date(2026, 4, 10, 1, 0, 0, 0, time.UTC)
	jobs := newSalaryJobsAt(svc, &now)

	require.NoError(t, jobs.RegenerateCurrentPeriod(context.Background()))

	assert.Empty(t, svc.calls)
}

func TestRegenerateCurrentPeriod_CatchesUpAfterMissedTick(t *testing.T) {
	svc := &fakeSalaryService{}
	// The process was down through the 02:00 hour; the first tick back
	// up lands at 05:00 and must still regenerate.
	now := time.Date(2026, 4, 10, 5, 0, 0, 0, time.UTC)
	jobs := newSalaryJobsAt(svc, &now)

	require.NoError(t, jobs.RegenerateCurrentPeriod(context.Background()))

	require.Len(t, svc.calls, 1)
	assert.Equal(t, 2026, svc.calls[0].year)
	assert.Equal(t, 4, svc.calls[0].month)
}

func TestRegenerateCurrentPeriod_RunsOncePerDay(t *testing.T) {
	svc := &fakeSalaryService{}
	now := time.Date(2026, 4, 10, 2, 0, 0, 0, time.UTC)
	jobs := newSalaryJobsAt(svc, &now)

	require.NoError(t, jobs.RegenerateCurrentPeriod(context.Background()))

	for hour := 3; hour <= 23; hour++ {
		now = time.Date(2026, 4, 10, hour, 0, 0, 0, time.UTC)
		require.NoError(t, jobs.RegenerateCurrentPeriod(context.Background()))
	}
	assert.Len(t, svc.calls, 1)

	now = time.Date(2026, 4, 11, 2, 0, 0, 0, time.UTC)
	require.NoError(t, jobs.RegenerateCurrentPeriod(context.Background()))
	assert.Len(t, svc.calls, 2)
}

func TestRegenerateCurrentPeriod_RetriesAfterFailure(t *testing.T) {
	svc := &fakeSalaryService{err: errors.New("db down")}
	now := time.Date(2026, 4, 10, 2, 0, 0, 0, time.UTC)
	jobs := newSalaryJobsAt(svc, &now)

	require.Error(t, jobs.RegenerateCurrentPeriod(context.Background()))

	// The failed run must not count as done for the day.
	svc.err = nil
	now = time.Date(2026, 4, 10, 3, 0, 0, 0, time.UTC)
	require.NoError(t, jobs.RegenerateCurrentPeriod(context.Background()))
	assert.Len(t, svc.calls, 1)
}
