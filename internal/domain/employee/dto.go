package employee

import (
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	RegionID string  `json:"region_id"`
	Position *string `json:"position"`
	HireDate string  `json:"hire_date"`

	IsCoordinator bool `json:"is_coordinator"`

	BasicSalary          *string `json:"basic_salary"`
	OvertimeHourSalary   *string `json:"overtime_hour_salary"`
	ShorttimeHourPenalty *string `json:"shorttime_hour_penalty"`
	AbsencePenalty       *string `json:"absence_penalty"`

	ExpectedAttendTime *string `json:"expected_attend_time"`
	ExpectedLeaveTime  *string `json:"expected_leave_time"`

	OvertimeThresholdMinutes *int `json:"overtime_threshold_minutes"`

	ScheduleOverrides *ScheduleOverrides `json:"schedule_overrides"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.RegionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "region_id",
			Message: "region_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if r.ExpectedAttendTime != nil && !validator.IsValidClockTime(*r.ExpectedAttendTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_attend_time",
			Message: "expected_attend_time must be HH:MM",
		})
	}

	if r.ExpectedLeaveTime != nil && !validator.IsValidClockTime(*r.ExpectedLeaveTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_leave_time",
			Message: "expected_leave_time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequest is a partial update; nil fields are left untouched.
type UpdateRequest struct {
	ID string `json:"-"`

	FullName      *string `json:"full_name"`
	Position      *string `json:"position"`
	RegionID      *string `json:"region_id"`
	IsCoordinator *bool   `json:"is_coordinator"`

	BasicSalary          *string `json:"basic_salary"`
	OvertimeHourSalary   *string `json:"overtime_hour_salary"`
	ShorttimeHourPenalty *string `json:"shorttime_hour_penalty"`
	AbsencePenalty       *string `json:"absence_penalty"`

	ExpectedAttendTime *string `json:"expected_attend_time"`
	ExpectedLeaveTime  *string `json:"expected_leave_time"`

	OvertimeThresholdMinutes *int `json:"overtime_threshold_minutes"`

	ScheduleOverrides *ScheduleOverrides `json:"schedule_overrides"`

	EmploymentStatus *string `json:"employment_status"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.ExpectedAttendTime != nil && !validator.IsValidClockTime(*r.ExpectedAttendTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_attend_time",
			Message: "expected_attend_time must be HH:MM",
		})
	}

	if r.ExpectedLeaveTime != nil && !validator.IsValidClockTime(*r.ExpectedLeaveTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_leave_time",
			Message: "expected_leave_time must be HH:MM",
		})
	}

	if r.EmploymentStatus != nil {
		switch EmploymentStatus(*r.EmploymentStatus) {
		case EmploymentStatusActive, EmploymentStatusResigned, EmploymentStatusTerminated:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "employment_status",
				Message: "employment_status must be one of active, resigned, terminated",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	RegionID      string  `json:"region_id"`
	Position      *string `json:"position,omitempty"`
	IsCoordinator bool    `json:"is_coordinator"`

	BasicSalary          *string `json:"basic_salary,omitempty"`
	OvertimeHourSalary   string  `json:"overtime_hour_salary"`
	ShorttimeHourPenalty string  `json:"shorttime_hour_penalty"`
	AbsencePenalty       string  `json:"absence_penalty"`

	ExpectedAttendTime *string `json:"expected_attend_time,omitempty"`
	ExpectedLeaveTime  *string `json:"expected_leave_time,omitempty"`

	OvertimeThresholdMinutes int `json:"overtime_threshold_minutes"`

	ScheduleOverrides ScheduleOverrides `json:"schedule_overrides"`

	TotalLatenessHours string `json:"total_lateness_hours"`
	TotalOvertimeHours string `json:"total_overtime_hours"`
	TotalAbsenceDays   int    `json:"total_absence_days"`

	EmploymentStatus string `json:"employment_status"`
	HireDate         string `json:"hire_date"`
}

type ListResponse struct {
	TotalCount int64      `json:"total_count"`
	Employees  []Response `json:"employees"`
}
