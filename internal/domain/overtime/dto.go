package overtime

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	AttendanceID   string          `json:"attendance_id"`
	RequestedHours decimal.Decimal `json:"requested_hours"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if !r.RequestedHours.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_hours",
			Message: "requested_hours must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewRequest struct {
	ID        string  `json:"-"`
	HRComment *string `json:"hr_comment"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}

type Response struct {
	ID             string  `json:"id"`
	AttendanceID   string  `json:"attendance_id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	AttendanceDate *string `json:"attendance_date,omitempty"`
	RequestedHours string  `json:"requested_hours"`
	Status         string  `json:"status"`
	ReviewedBy     *string `json:"reviewed_by,omitempty"`
	ReviewedAt     *string `json:"reviewed_at,omitempty"`
	HRComment      *string `json:"hr_comment,omitempty"`
}

type ListResponse struct {
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Requests   []Response `json:"requests"`
}

// EligibilityResponse is the on-demand eligibility answer.
type EligibilityResponse struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}
