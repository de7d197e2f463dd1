package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/region"
	"github.com/staffhub/staffhub-backend-go/internal/domain/schedule"
)

// AttendanceJobs sweeps missed check-ins into absence records.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	regionRepo     region.RegionRepository
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	regionRepo region.RegionRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		regionRepo:     regionRepo,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
	scheduler.AddJob("recompute_employee_totals", 24*time.Hour, j.RecomputeEmployeeTotals)
}

// MarkAbsentEmployees creates an absence record for every active employee
// who had a workday yesterday but never checked in. Yesterday is computed
// in each employee's region timezone. The job is idempotent: an existing
// record for the date, absent or otherwise, is left alone.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	markedCount := 0

	for _, emp := range employees {
		if emp.ExpectedAttendTime == nil {
			// No schedule configured, nothing to expect.
			continue
		}

		reg, err := j.regionRepo.GetByEmployeeID(ctx, emp.ID)
		if err != nil {
			slog.Error("Cron: Failed to get region", "employee_id", emp.ID, "error", err)
			continue
		}

		loc, err := time.LoadLocation(reg.Timezone)
		if err != nil {
			loc = time.UTC
		}

		nowLocal := j.now().In(loc)
		yesterdayLocal := nowLocal.AddDate(0, 0, -1)
		date := time.Date(yesterdayLocal.Year(), yesterdayLocal.Month(), yesterdayLocal.Day(), 0, 0, 0, 0, loc)

		if !schedule.IsWorkday(emp.ScheduleOverrides, date) {
			continue
		}

		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
		if err != nil {
			slog.Error("Cron: Failed to look up attendance", "employee_id", emp.ID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		attType := attendance.TypePhysical
		if schedule.Resolve(emp.ScheduleOverrides, date) == schedule.DayOnline {
			attType = attendance.TypeOnline
		}

		if _, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			Type:       attType,
			Status:     attendance.StatusAbsent,
		}); err != nil {
			slog.Error("Cron: Failed to create absence record",
				"employee_id", emp.ID,
				"date", date.Format("2006-01-02"),
				"error", err)
			continue
		}

		if err := j.employeeRepo.AddAbsenceDays(ctx, emp.ID, 1); err != nil {
			slog.Error("Cron: Failed to accumulate absence days", "employee_id", emp.ID, "error", err)
		}

		markedCount++
	}

	if markedCount > 0 {
		slog.Info("Cron: Marked absent employees", "count", markedCount)
	}
	return nil
}

// RecomputeEmployeeTotals re-derives every active employee's cached
// lateness/overtime/absence totals from attendance rows. Idempotent: the
// totals are overwritten, not accumulated, so drift introduced by manual
// corrections or deleted records is repaired on the next run.
func (j *AttendanceJobs) RecomputeEmployeeTotals(ctx context.Context) error {
	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	for _, emp := range employees {
		totals, err := j.attendanceRepo.TotalsByEmployee(ctx, emp.ID)
		if err != nil {
			slog.Error("Cron: Failed to aggregate attendance totals", "employee_id", emp.ID, "error", err)
			continue
		}

		if err := j.employeeRepo.SetRunningTotals(ctx, emp.ID, totals.LatenessHours, totals.OvertimeHours, totals.AbsenceDays); err != nil {
			slog.Error("Cron: Failed to set running totals", "employee_id", emp.ID, "error", err)
		}
	}

	return nil
}
