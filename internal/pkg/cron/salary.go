package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/salary"
)

// SalaryJobs regenerates the current period's salary records nightly so
// cached payouts track late overtime approvals and leave conversions.
type SalaryJobs struct {
	salaryService salary.SalaryService
	now           func() time.Time

	// UTC date of the last successful regeneration. Only touched from
	// the job's own goroutine.
	lastRun time.Time
}

func NewSalaryJobs(salaryService salary.SalaryService) *SalaryJobs {
	return &SalaryJobs{
		salaryService: salaryService,
		now:           time.Now,
	}
}

func (j *SalaryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("regenerate_current_salaries", 1*time.Hour, j.RegenerateCurrentPeriod)
}

// RegenerateCurrentPeriod recompiles every active employee's salary for
// the current month. Runs once per UTC day on the first tick at or after
// 02:00; a tick lost to downtime during that hour is made up on the next
// one instead of skipping the day.
func (j *SalaryJobs) RegenerateCurrentPeriod(ctx context.Context) error {
	nowUTC := j.now().UTC()
	if nowUTC.Hour() < 2 {
		return nil
	}
	today := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)
	if !j.lastRun.Before(today) {
		return nil
	}

	year, month := nowUTC.Year(), int(nowUTC.Month())
	slog.Info("Cron: Starting salary regeneration", "year", year, "month", month)

	compiled, err := j.salaryService.CompileAll(ctx, year, month)
	if err != nil {
		// lastRun stays put so the next tick retries.
		return err
	}
	j.lastRun = today

	slog.Info("Cron: Salary regeneration finished", "compiled", compiled)
	return nil
}
