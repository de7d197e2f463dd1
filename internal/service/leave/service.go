package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	tx database.TxManager
	leave.CasualLeaveRepository
	leave.LeavePolicyRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	salary.SalaryRepository
	now func() time.Time
}

func NewLeaveService(
	tx database.TxManager,
	leaveRepo leave.CasualLeaveRepository,
	policyRepo leave.LeavePolicyRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryRepository,
	now func() time.Time,
) leave.LeaveService {
	if now == nil {
		now = time.Now
	}
	return &LeaveServiceImpl{
		tx:                    tx,
		CasualLeaveRepository: leaveRepo,
		LeavePolicyRepository: policyRepo,
		AttendanceRepository:  attendanceRepo,
		EmployeeRepository:    employeeRepo,
		SalaryRepository:      salaryRepo,
		now:                   now,
	}
}

// Create implements leave.LeaveService. Both cap violations reject before
// any state is written.
func (l *LeaveServiceImpl) Create(ctx context.Context, actor user.Actor, req leave.CreateRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	if end.Before(start) {
		return leave.Response{}, leave.ErrInvalidDateRange
	}

	duration := leave.DurationDays(start, end)

	policy, err := l.LeavePolicyRepository.GetOrCreate(ctx, actor.EmployeeID)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to get leave policy: %w", err)
	}

	if duration > policy.MaxDaysPerRequest {
		return leave.Response{}, leave.ErrExceedsMaxDays
	}

	overlapping, err := l.CasualLeaveRepository.HasLeaveCovering(ctx, actor.EmployeeID, start, end)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to check overlapping leaves: %w", err)
	}
	if overlapping {
		return leave.Response{}, leave.ErrOverlappingLeave
	}

	// The quota year is the year the leave begins: a range spanning a
	// year boundary counts wholly against the start year.
	used, err := l.CasualLeaveRepository.ApprovedDaysInYear(ctx, actor.EmployeeID, start.Year())
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to sum approved leave days: %w", err)
	}
	if used+duration > policy.YearlyQuota {
		return leave.Response{}, leave.ErrQuotaExceeded
	}

	created, err := l.CasualLeaveRepository.Create(ctx, leave.CasualLeave{
		EmployeeID: actor.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Duration:   duration,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveToResponse(created), nil
}

// Approve implements leave.LeaveService. The yearly quota is re-checked
// against the approved total at approval time: two pending requests that
// each fit on their own must not both be approvable past the quota.
func (l *LeaveServiceImpl) Approve(ctx context.Context, actor user.Actor, id string) (leave.Response, error) {
	cl, err := l.CasualLeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}
	if cl.Status != leave.StatusPending {
		return leave.Response{}, leave.ErrAlreadyProcessed
	}

	policy, err := l.LeavePolicyRepository.GetOrCreate(ctx, cl.EmployeeID)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to get leave policy: %w", err)
	}

	now := l.now().UTC()
	cl.Status = leave.StatusApproved
	cl.ReviewedBy = &actor.UserID
	cl.ReviewedAt = &now

	err = l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		used, err := l.CasualLeaveRepository.ApprovedDaysInYear(ctx, cl.EmployeeID, cl.StartDate.Year())
		if err != nil {
			return fmt.Errorf("failed to sum approved leave days: %w", err)
		}
		if used+cl.Duration > policy.YearlyQuota {
			return leave.ErrQuotaExceeded
		}

		if err := l.CasualLeaveRepository.Update(ctx, cl); err != nil {
			return fmt.Errorf("failed to approve leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.Response{}, err
	}

	return mapLeaveToResponse(cl), nil
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, actor user.Actor, req leave.RejectRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	cl, err := l.CasualLeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.Response{}, err
	}
	if cl.Status != leave.StatusPending {
		return leave.Response{}, leave.ErrAlreadyProcessed
	}

	now := l.now().UTC()
	cl.Status = leave.StatusRejected
	cl.RejectionReason = &req.RejectionReason
	cl.ReviewedBy = &actor.UserID
	cl.ReviewedAt = &now

	if err := l.CasualLeaveRepository.Update(ctx, cl); err != nil {
		return leave.Response{}, fmt.Errorf("failed to reject leave request: %w", err)
	}

	return mapLeaveToResponse(cl), nil
}

// ConvertAbsence implements leave.LeaveService. It repairs the cached
// salary record for the period, when one exists, with the exact arithmetic
// the monthly compiler uses for that line item.
func (l *LeaveServiceImpl) ConvertAbsence(ctx context.Context, actor user.Actor, attendanceID string) (leave.Response, error) {
	att, err := l.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return leave.Response{}, err
	}
	if att.Status != attendance.StatusAbsent {
		return leave.Response{}, leave.ErrNotAbsent
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, att.EmployeeID)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	covered, err := l.CasualLeaveRepository.HasLeaveCovering(ctx, att.EmployeeID, att.Date, att.Date)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to check covering leaves: %w", err)
	}
	if covered {
		return leave.Response{}, leave.ErrLeaveCoversDate
	}

	policy, err := l.LeavePolicyRepository.GetOrCreate(ctx, att.EmployeeID)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to get leave policy: %w", err)
	}

	used, err := l.CasualLeaveRepository.ApprovedDaysInYear(ctx, att.EmployeeID, att.Date.Year())
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to sum approved leave days: %w", err)
	}
	if used+1 > policy.YearlyQuota {
		return leave.Response{}, leave.ErrNoQuotaRemaining
	}

	now := l.now().UTC()
	var created leave.CasualLeave
	err = l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = l.CasualLeaveRepository.Create(ctx, leave.CasualLeave{
			EmployeeID: att.EmployeeID,
			StartDate:  att.Date,
			EndDate:    att.Date,
			Duration:   1,
			Status:     leave.StatusApproved,
			ReviewedBy: &actor.UserID,
			ReviewedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("failed to create converted leave: %w", err)
		}

		att.Status = attendance.StatusPresent
		if err := l.AttendanceRepository.Update(ctx, att); err != nil {
			return fmt.Errorf("failed to flip attendance status: %w", err)
		}

		if err := l.EmployeeRepository.AddAbsenceDays(ctx, att.EmployeeID, -1); err != nil {
			return fmt.Errorf("failed to decrement absence total: %w", err)
		}

		return l.patchSalaryRecord(ctx, emp, att.Date)
	})
	if err != nil {
		return leave.Response{}, err
	}

	return mapLeaveToResponse(created), nil
}

// patchSalaryRecord retroactively removes one absent day from a cached
// salary record, when the period has already been compiled.
func (l *LeaveServiceImpl) patchSalaryRecord(ctx context.Context, emp employee.Employee, date time.Time) error {
	rec, err := l.SalaryRepository.GetByPeriod(ctx, emp.ID, date.Year(), int(date.Month()))
	if err != nil {
		return fmt.Errorf("failed to get salary record for period: %w", err)
	}
	if rec == nil {
		return nil
	}

	rec.Details = salary.RemoveAbsence(rec.Details, rec.BaseSalary, salary.ComputeInput{
		AbsencePenalty:       emp.AbsencePenalty,
		ShorttimeHourPenalty: emp.ShorttimeHourPenalty,
		OvertimeHourSalary:   emp.OvertimeHourSalary,
	})
	rec.FinalSalary = rec.Details.FinalSalary

	if err := l.SalaryRepository.Update(ctx, *rec); err != nil {
		return fmt.Errorf("failed to patch salary record: %w", err)
	}
	return nil
}

// Quota implements leave.LeaveService.
func (l *LeaveServiceImpl) Quota(ctx context.Context, employeeID string, year int) (leave.QuotaResponse, error) {
	policy, err := l.LeavePolicyRepository.GetOrCreate(ctx, employeeID)
	if err != nil {
		return leave.QuotaResponse{}, fmt.Errorf("failed to get leave policy: %w", err)
	}

	used, err := l.CasualLeaveRepository.ApprovedDaysInYear(ctx, employeeID, year)
	if err != nil {
		return leave.QuotaResponse{}, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	remaining := policy.YearlyQuota - used
	if remaining < 0 {
		remaining = 0
	}

	return leave.QuotaResponse{
		EmployeeID:        employeeID,
		Year:              year,
		YearlyQuota:       policy.YearlyQuota,
		UsedDays:          used,
		RemainingDays:     remaining,
		MaxDaysPerRequest: policy.MaxDaysPerRequest,
	}, nil
}

// Get implements leave.LeaveService.
func (l *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.Response, error) {
	cl, err := l.CasualLeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}
	return mapLeaveToResponse(cl), nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) (leave.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	leaves, total, err := l.CasualLeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.Response, 0, len(leaves))
	for _, cl := range leaves {
		responses = append(responses, mapLeaveToResponse(cl))
	}

	return leave.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Leaves:     responses,
	}, nil
}

func mapLeaveToResponse(cl leave.CasualLeave) leave.Response {
	var employeeName string
	if cl.EmployeeName != nil {
		employeeName = *cl.EmployeeName
	}

	return leave.Response{
		ID:              cl.ID,
		EmployeeID:      cl.EmployeeID,
		EmployeeName:    employeeName,
		StartDate:       cl.StartDate.Format("2006-01-02"),
		EndDate:         cl.EndDate.Format("2006-01-02"),
		Duration:        cl.Duration,
		Status:          string(cl.Status),
		Reason:          cl.Reason,
		RejectionReason: cl.RejectionReason,
		ReviewedBy:      cl.ReviewedBy,
	}
}
