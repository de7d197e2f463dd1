package overtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/overtime"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type OvertimeServiceImpl struct {
	tx database.TxManager
	overtime.OvertimeRequestRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewOvertimeService(
	tx database.TxManager,
	overtimeRepo overtime.OvertimeRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	now func() time.Time,
) overtime.OvertimeService {
	if now == nil {
		now = time.Now
	}
	return &OvertimeServiceImpl{
		tx:                        tx,
		OvertimeRequestRepository: overtimeRepo,
		AttendanceRepository:      attendanceRepo,
		EmployeeRepository:        employeeRepo,
		now:                       now,
	}
}

// CheckEligibility implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) CheckEligibility(ctx context.Context, actor user.Actor, attendanceID string) (overtime.EligibilityResponse, error) {
	att, err := o.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return overtime.EligibilityResponse{}, err
	}

	emp, err := o.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return overtime.EligibilityResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := overtime.CanRequest(att, actor.EmployeeID, o.now(), emp.OvertimeThreshold()); err != nil {
		return overtime.EligibilityResponse{Eligible: false, Reason: err.Error()}, nil
	}

	existing, err := o.OvertimeRequestRepository.GetByAttendanceID(ctx, attendanceID)
	if err != nil {
		return overtime.EligibilityResponse{}, fmt.Errorf("failed to check existing request: %w", err)
	}
	if existing != nil {
		return overtime.EligibilityResponse{Eligible: false, Reason: overtime.ErrAlreadyRequested.Error()}, nil
	}

	return overtime.EligibilityResponse{Eligible: true}, nil
}

// Create implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) Create(ctx context.Context, actor user.Actor, req overtime.CreateRequest) (overtime.Response, error) {
	if err := req.Validate(); err != nil {
		return overtime.Response{}, err
	}

	att, err := o.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return overtime.Response{}, overtime.ErrAttendanceMissing
		}
		return overtime.Response{}, err
	}

	emp, err := o.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return overtime.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := overtime.CanRequest(att, actor.EmployeeID, o.now(), emp.OvertimeThreshold()); err != nil {
		return overtime.Response{}, err
	}

	existing, err := o.OvertimeRequestRepository.GetByAttendanceID(ctx, req.AttendanceID)
	if err != nil {
		return overtime.Response{}, fmt.Errorf("failed to check existing request: %w", err)
	}
	if existing != nil {
		return overtime.Response{}, overtime.ErrAlreadyRequested
	}

	created, err := o.OvertimeRequestRepository.Create(ctx, overtime.OvertimeRequest{
		AttendanceID:   req.AttendanceID,
		EmployeeID:     actor.EmployeeID,
		RequestedHours: req.RequestedHours,
		Status:         overtime.StatusPending,
	})
	if err != nil {
		return overtime.Response{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return mapRequestToResponse(created), nil
}

// Approve implements overtime.OvertimeService. The approved hours are
// written onto the linked attendance record and accumulated into the
// employee's running total in the same transaction.
func (o *OvertimeServiceImpl) Approve(ctx context.Context, actor user.Actor, req overtime.ReviewRequest) (overtime.Response, error) {
	if err := req.Validate(); err != nil {
		return overtime.Response{}, err
	}

	request, err := o.OvertimeRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.Response{}, err
	}
	if request.Status != overtime.StatusPending {
		return overtime.Response{}, overtime.ErrAlreadyProcessed
	}

	att, err := o.AttendanceRepository.GetByID(ctx, request.AttendanceID)
	if err != nil {
		return overtime.Response{}, err
	}

	now := o.now().UTC()
	request.Status = overtime.StatusApproved
	request.ReviewedBy = &actor.UserID
	request.ReviewedAt = &now
	request.HRComment = req.HRComment

	att.OvertimeHours = request.RequestedHours
	att.OvertimeApproved = true

	err = o.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := o.OvertimeRequestRepository.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update overtime request: %w", err)
		}
		if err := o.AttendanceRepository.Update(ctx, att); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		if err := o.EmployeeRepository.AddOvertimeHours(ctx, request.EmployeeID, request.RequestedHours); err != nil {
			return fmt.Errorf("failed to accumulate overtime hours: %w", err)
		}
		return nil
	})
	if err != nil {
		return overtime.Response{}, err
	}

	return mapRequestToResponse(request), nil
}

// Reject implements overtime.OvertimeService. A rejected request can never
// leave stale overtime on the attendance record, so the linked record's
// overtime fields are forced back to zero.
func (o *OvertimeServiceImpl) Reject(ctx context.Context, actor user.Actor, req overtime.ReviewRequest) (overtime.Response, error) {
	if err := req.Validate(); err != nil {
		return overtime.Response{}, err
	}

	request, err := o.OvertimeRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.Response{}, err
	}
	if request.Status != overtime.StatusPending {
		return overtime.Response{}, overtime.ErrAlreadyProcessed
	}

	att, err := o.AttendanceRepository.GetByID(ctx, request.AttendanceID)
	if err != nil {
		return overtime.Response{}, err
	}

	now := o.now().UTC()
	request.Status = overtime.StatusRejected
	request.ReviewedBy = &actor.UserID
	request.ReviewedAt = &now
	request.HRComment = req.HRComment

	att.OvertimeHours = decimal.Zero
	att.OvertimeApproved = false

	err = o.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := o.OvertimeRequestRepository.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update overtime request: %w", err)
		}
		if err := o.AttendanceRepository.Update(ctx, att); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return overtime.Response{}, err
	}

	return mapRequestToResponse(request), nil
}

// Get implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) Get(ctx context.Context, id string) (overtime.Response, error) {
	request, err := o.OvertimeRequestRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.Response{}, err
	}
	return mapRequestToResponse(request), nil
}

// List implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) List(ctx context.Context, filter overtime.Filter) (overtime.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	requests, total, err := o.OvertimeRequestRepository.List(ctx, filter)
	if err != nil {
		return overtime.ListResponse{}, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	responses := make([]overtime.Response, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}

	return overtime.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}

func mapRequestToResponse(request overtime.OvertimeRequest) overtime.Response {
	var employeeName string
	if request.EmployeeName != nil {
		employeeName = *request.EmployeeName
	}

	var attendanceDate *string
	if request.AttendanceDate != nil {
		formatted := request.AttendanceDate.Format("2006-01-02")
		attendanceDate = &formatted
	}

	var reviewedAt *string
	if request.ReviewedAt != nil {
		formatted := request.ReviewedAt.Format("2006-01-02 15:04:05")
		reviewedAt = &formatted
	}

	return overtime.Response{
		ID:             request.ID,
		AttendanceID:   request.AttendanceID,
		EmployeeID:     request.EmployeeID,
		EmployeeName:   employeeName,
		AttendanceDate: attendanceDate,
		RequestedHours: request.RequestedHours.StringFixed(2),
		Status:         string(request.Status),
		ReviewedBy:     request.ReviewedBy,
		ReviewedAt:     reviewedAt,
		HRComment:      request.HRComment,
	}
}
