package salary

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type CompileRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *CompileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Year < 2000 || r.Year > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID string
	Year       int
	Month      int
	Page       int
	Limit      int
}

type Response struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	BaseSalary   string          `json:"base_salary"`
	FinalSalary  string          `json:"final_salary"`
	Details      BreakdownDetail `json:"details"`
}

// BreakdownDetail is the wire form of Breakdown with fixed 2-decimal
// monetary strings.
type BreakdownDetail struct {
	AbsentDays         int    `json:"absent_days"`
	LateDays           int    `json:"late_days"`
	LatenessHours      string `json:"lateness_hours"`
	OvertimeHours      string `json:"overtime_hours"`
	AbsentPenaltyTotal string `json:"absent_penalty_total"`
	LatePenaltyTotal   string `json:"late_penalty_total"`
	OvertimeBonusTotal string `json:"overtime_bonus_total"`
	TotalDeductions    string `json:"total_deductions"`
}

type ListResponse struct {
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Records    []Response `json:"records"`
}
