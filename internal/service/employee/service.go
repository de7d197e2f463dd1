package employee

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/region"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	region.RegionRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	regionRepo region.RegionRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		RegionRepository:   regionRepo,
	}
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	// The region must exist before anyone is assigned to it.
	if _, err := e.RegionRepository.GetByID(ctx, req.RegionID); err != nil {
		return employee.Response{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	emp := employee.Employee{
		RegionID:         req.RegionID,
		FullName:         req.FullName,
		Email:            req.Email,
		Position:         req.Position,
		IsCoordinator:    req.IsCoordinator,
		HireDate:         hireDate,
		EmploymentStatus: employee.EmploymentStatusActive,

		ExpectedAttendTime: req.ExpectedAttendTime,
		ExpectedLeaveTime:  req.ExpectedLeaveTime,
	}

	if req.OvertimeThresholdMinutes != nil {
		emp.OvertimeThresholdMinutes = *req.OvertimeThresholdMinutes
	}
	if req.ScheduleOverrides != nil {
		emp.ScheduleOverrides = *req.ScheduleOverrides
	}

	if err := applyCompensation(&emp, req.BasicSalary, req.OvertimeHourSalary, req.ShorttimeHourPenalty, req.AbsencePenalty); err != nil {
		return employee.Response{}, err
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.Response{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Response, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) (employee.ListResponse, error) {
	employees, err := e.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return employee.ListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.Response, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListResponse{
		TotalCount: int64(len(responses)),
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Response{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.RegionID != nil {
		if _, err := e.RegionRepository.GetByID(ctx, *req.RegionID); err != nil {
			return employee.Response{}, err
		}
		emp.RegionID = *req.RegionID
	}
	if req.IsCoordinator != nil {
		emp.IsCoordinator = *req.IsCoordinator
	}
	if req.ExpectedAttendTime != nil {
		emp.ExpectedAttendTime = req.ExpectedAttendTime
	}
	if req.ExpectedLeaveTime != nil {
		emp.ExpectedLeaveTime = req.ExpectedLeaveTime
	}
	if req.OvertimeThresholdMinutes != nil {
		emp.OvertimeThresholdMinutes = *req.OvertimeThresholdMinutes
	}
	if req.ScheduleOverrides != nil {
		emp.ScheduleOverrides = *req.ScheduleOverrides
	}
	if req.EmploymentStatus != nil {
		emp.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
	}

	if err := applyCompensation(&emp, req.BasicSalary, req.OvertimeHourSalary, req.ShorttimeHourPenalty, req.AbsencePenalty); err != nil {
		return employee.Response{}, err
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.Response{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := e.EmployeeRepository.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// applyCompensation parses the optional monetary strings onto the entity.
func applyCompensation(emp *employee.Employee, basic, overtimeRate, shorttimeRate, absencePenalty *string) error {
	if basic != nil {
		value, err := decimal.NewFromString(*basic)
		if err != nil {
			return fmt.Errorf("invalid basic_salary: %w", err)
		}
		emp.BasicSalary = &value
	}
	if overtimeRate != nil {
		value, err := decimal.NewFromString(*overtimeRate)
		if err != nil {
			return fmt.Errorf("invalid overtime_hour_salary: %w", err)
		}
		emp.OvertimeHourSalary = value
	}
	if shorttimeRate != nil {
		value, err := decimal.NewFromString(*shorttimeRate)
		if err != nil {
			return fmt.Errorf("invalid shorttime_hour_penalty: %w", err)
		}
		emp.ShorttimeHourPenalty = value
	}
	if absencePenalty != nil {
		value, err := decimal.NewFromString(*absencePenalty)
		if err != nil {
			return fmt.Errorf("invalid absence_penalty: %w", err)
		}
		emp.AbsencePenalty = value
	}
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.Response {
	var basicSalary *string
	if emp.BasicSalary != nil {
		formatted := emp.BasicSalary.StringFixed(2)
		basicSalary = &formatted
	}

	return employee.Response{
		ID:            emp.ID,
		FullName:      emp.FullName,
		Email:         emp.Email,
		RegionID:      emp.RegionID,
		Position:      emp.Position,
		IsCoordinator: emp.IsCoordinator,

		BasicSalary:          basicSalary,
		OvertimeHourSalary:   emp.OvertimeHourSalary.StringFixed(2),
		ShorttimeHourPenalty: emp.ShorttimeHourPenalty.StringFixed(2),
		AbsencePenalty:       emp.AbsencePenalty.StringFixed(2),

		ExpectedAttendTime: emp.ExpectedAttendTime,
		ExpectedLeaveTime:  emp.ExpectedLeaveTime,

		OvertimeThresholdMinutes: emp.OvertimeThresholdMinutes,
		ScheduleOverrides:        emp.ScheduleOverrides,

		TotalLatenessHours: emp.TotalLatenessHours.StringFixed(2),
		TotalOvertimeHours: emp.TotalOvertimeHours.StringFixed(2),
		TotalAbsenceDays:   emp.TotalAbsenceDays,

		EmploymentStatus: string(emp.EmploymentStatus),
		HireDate:         emp.HireDate.Format("2006-01-02"),
	}
}
