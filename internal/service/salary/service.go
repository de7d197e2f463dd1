package salary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

type SalaryServiceImpl struct {
	salary.SalaryRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewSalaryService(
	salaryRepo salary.SalaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		SalaryRepository:     salaryRepo,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// Compile implements salary.SalaryService. The period's record is fully
// replaced, never merged with prior values.
func (s *SalaryServiceImpl) Compile(ctx context.Context, req salary.CompileRequest) (salary.Response, error) {
	if err := req.Validate(); err != nil {
		return salary.Response{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return salary.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.BasicSalary == nil {
		return salary.Response{}, employee.ErrBasicSalaryNotSet
	}

	atts, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, emp.ID, req.Year, time.Month(req.Month))
	if err != nil {
		return salary.Response{}, fmt.Errorf("failed to load month attendance: %w", err)
	}

	breakdown := salary.Compute(aggregateMonth(atts, emp))

	rec, err := s.SalaryRepository.Replace(ctx, salary.SalaryRecord{
		EmployeeID:  emp.ID,
		Year:        req.Year,
		Month:       req.Month,
		BaseSalary:  *emp.BasicSalary,
		FinalSalary: breakdown.FinalSalary,
		Details:     breakdown,
	})
	if err != nil {
		return salary.Response{}, fmt.Errorf("failed to replace salary record: %w", err)
	}

	return mapRecordToResponse(rec), nil
}

// CompileAll implements salary.SalaryService. Employees without a
// configured basic salary are skipped, and one employee's failure does not
// abort the batch.
func (s *SalaryServiceImpl) CompileAll(ctx context.Context, year, month int) (int, error) {
	employees, err := s.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get active employees: %w", err)
	}

	compiled := 0
	for _, emp := range employees {
		if emp.BasicSalary == nil {
			continue
		}

		_, err := s.Compile(ctx, salary.CompileRequest{
			EmployeeID: emp.ID,
			Year:       year,
			Month:      month,
		})
		if err != nil {
			slog.Error("Failed to compile salary",
				"employee_id", emp.ID,
				"year", year,
				"month", month,
				"error", err)
			continue
		}
		compiled++
	}

	return compiled, nil
}

// Get implements salary.SalaryService.
func (s *SalaryServiceImpl) Get(ctx context.Context, id string) (salary.Response, error) {
	rec, err := s.SalaryRepository.GetByID(ctx, id)
	if err != nil {
		return salary.Response{}, err
	}
	return mapRecordToResponse(rec), nil
}

// GetMy implements salary.SalaryService.
func (s *SalaryServiceImpl) GetMy(ctx context.Context, actor user.Actor, year, month int) (salary.Response, error) {
	rec, err := s.SalaryRepository.GetByPeriod(ctx, actor.EmployeeID, year, month)
	if err != nil {
		return salary.Response{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	if rec == nil {
		return salary.Response{}, salary.ErrSalaryRecordNotFound
	}
	return mapRecordToResponse(*rec), nil
}

// List implements salary.SalaryService.
func (s *SalaryServiceImpl) List(ctx context.Context, filter salary.Filter) (salary.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.SalaryRepository.List(ctx, filter)
	if err != nil {
		return salary.ListResponse{}, fmt.Errorf("failed to list salary records: %w", err)
	}

	responses := make([]salary.Response, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return salary.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

// aggregateMonth folds a month of attendance records into compiler input.
// Overtime counts only when approved and positive.
func aggregateMonth(atts []attendance.Attendance, emp employee.Employee) salary.ComputeInput {
	in := salary.ComputeInput{
		BaseSalary:           *emp.BasicSalary,
		LatenessHours:        decimal.Zero,
		OvertimeHours:        decimal.Zero,
		AbsencePenalty:       emp.AbsencePenalty,
		ShorttimeHourPenalty: emp.ShorttimeHourPenalty,
		OvertimeHourSalary:   emp.OvertimeHourSalary,
	}

	for _, att := range atts {
		switch att.Status {
		case attendance.StatusAbsent:
			in.AbsentDays++
		case attendance.StatusLate:
			in.LateDays++
			in.LatenessHours = in.LatenessHours.Add(att.LatenessHours)
		}

		if att.OvertimeApproved && att.OvertimeHours.IsPositive() {
			in.OvertimeHours = in.OvertimeHours.Add(att.OvertimeHours)
		}
	}

	return in
}

func mapRecordToResponse(rec salary.SalaryRecord) salary.Response {
	var employeeName string
	if rec.EmployeeName != nil {
		employeeName = *rec.EmployeeName
	}

	return salary.Response{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: employeeName,
		Year:         rec.Year,
		Month:        rec.Month,
		BaseSalary:   rec.BaseSalary.StringFixed(2),
		FinalSalary:  rec.FinalSalary.StringFixed(2),
		Details: salary.BreakdownDetail{
			AbsentDays:         rec.Details.AbsentDays,
			LateDays:           rec.Details.LateDays,
			LatenessHours:      rec.Details.LatenessHours.StringFixed(2),
			OvertimeHours:      rec.Details.OvertimeHours.StringFixed(2),
			AbsentPenaltyTotal: rec.Details.AbsentPenaltyTotal.StringFixed(2),
			LatePenaltyTotal:   rec.Details.LatePenaltyTotal.StringFixed(2),
			OvertimeBonusTotal: rec.Details.OvertimeBonusTotal.StringFixed(2),
			TotalDeductions:    rec.Details.TotalDeductions.StringFixed(2),
		},
	}
}
