package attendance

import (
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckInRequest carries the employee-reported coordinates. Coordinates
// are optional at the transport level; whether they are required depends
// on how the day resolves (physical vs online).
type CheckInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CheckOutRequest) Validate() error {
	in := CheckInRequest{Latitude: r.Latitude, Longitude: r.Longitude}
	return in.Validate()
}

// CorrectRequest is the HR/admin path for fixing a record.
type CorrectRequest struct {
	ID           string  `json:"-"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Status       *string `json:"status"`
}

func (r *CorrectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != nil {
		switch Status(*r.Status) {
		case StatusPresent, StatusLate, StatusAbsent:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of present, late, absent",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID string
	Status     string
	DateFrom   string
	DateTo     string
	Page       int
	Limit      int
}

type Response struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name,omitempty"`
	Date              string   `json:"date"`
	Type              string   `json:"type"`
	Status            string   `json:"status"`
	CheckInTime       *string  `json:"check_in_time"`
	CheckOutTime      *string  `json:"check_out_time"`
	CheckInLatitude   *float64 `json:"check_in_latitude,omitempty"`
	CheckInLongitude  *float64 `json:"check_in_longitude,omitempty"`
	CheckOutLatitude  *float64 `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64 `json:"check_out_longitude,omitempty"`
	LocationValidIn   *bool    `json:"location_valid_in,omitempty"`
	LocationValidOut  *bool    `json:"location_valid_out,omitempty"`
	LatenessHours     string   `json:"lateness_hours"`
	OvertimeHours     string   `json:"overtime_hours"`
	OvertimeApproved  bool     `json:"overtime_approved"`

	// Set on check-out when the employee may request overtime once the
	// threshold elapses.
	OvertimeEligible *bool `json:"overtime_eligible,omitempty"`
}

type ListResponse struct {
	TotalCount  int64      `json:"total_count"`
	Page        int        `json:"page"`
	Limit       int        `json:"limit"`
	TotalPages  int        `json:"total_pages"`
	Attendances []Response `json:"attendances"`
}
