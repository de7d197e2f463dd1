package response

import (
	"errors"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/candidate"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/domain/overtime"
	"github.com/staffhub/staffhub-backend-go/internal/domain/region"
	"github.com/staffhub/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/geo"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, err.Error(), nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrUnknownRole):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrPermissionRequired),
		errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrStaffAccessRequired),
		errors.Is(err, user.ErrEmployeeLinkRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrHolidayToday),
		errors.Is(err, attendance.ErrTooEarlyToCheckIn),
		errors.Is(err, attendance.ErrWorkdayOver),
		errors.Is(err, attendance.ErrOutsideAllowedRadius),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, geo.ErrNoOfficeLocation),
		errors.Is(err, geo.ErrLocationRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrBasicSalaryNotSet),
		errors.Is(err, employee.ErrScheduleNotConfigured):
		BadRequest(w, err.Error(), nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrNotRecordOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, overtime.ErrNotToday),
		errors.Is(err, overtime.ErrNotCheckedOut),
		errors.Is(err, overtime.ErrThresholdNotElapsed),
		errors.Is(err, overtime.ErrInvalidHours):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrRequestNotFound),
		errors.Is(err, overtime.ErrAttendanceMissing):
		NotFound(w, err.Error())
	case errors.Is(err, overtime.ErrAlreadyRequested),
		errors.Is(err, overtime.ErrAlreadyProcessed):
		Conflict(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound),
		errors.Is(err, leave.ErrPolicyNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrExceedsMaxDays),
		errors.Is(err, leave.ErrQuotaExceeded),
		errors.Is(err, leave.ErrRejectionReason),
		errors.Is(err, leave.ErrNotAbsent),
		errors.Is(err, leave.ErrNoQuotaRemaining):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrOverlappingLeave),
		errors.Is(err, leave.ErrAlreadyProcessed),
		errors.Is(err, leave.ErrLeaveCoversDate):
		Conflict(w, err.Error())

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryRecordNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Region domain errors
	case errors.Is(err, region.ErrRegionNotFound):
		NotFound(w, err.Error())

	// Candidate domain errors
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, candidate.ErrUnreadableCV):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, candidate.ErrAlreadyDecided):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
