package leave

import "errors"

var (
	ErrLeaveNotFound     = errors.New("leave request not found")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrExceedsMaxDays    = errors.New("leave duration exceeds the maximum days per request")
	ErrQuotaExceeded     = errors.New("leave duration exceeds the remaining yearly quota")
	ErrOverlappingLeave  = errors.New("an existing leave already covers part of this date range")
	ErrAlreadyProcessed  = errors.New("leave request has already been approved or rejected")
	ErrRejectionReason   = errors.New("a rejection reason is required")
	ErrNotAbsent         = errors.New("only an absent attendance record can be converted to leave")
	ErrLeaveCoversDate   = errors.New("a leave already covers this date")
	ErrPolicyNotFound    = errors.New("leave policy not found")
	ErrNoQuotaRemaining  = errors.New("no leave quota remaining for this year")
)
