package overtime

import "errors"

var (
	// Eligibility errors
	ErrNotRecordOwner      = errors.New("overtime can only be requested on your own attendance record")
	ErrNotToday            = errors.New("overtime can only be requested for today's attendance")
	ErrNotCheckedOut       = errors.New("you must check out before requesting overtime")
	ErrThresholdNotElapsed = errors.New("overtime threshold has not elapsed since checkout")

	// Request errors
	ErrRequestNotFound   = errors.New("overtime request not found")
	ErrAlreadyRequested  = errors.New("an overtime request already exists for this attendance record")
	ErrInvalidHours      = errors.New("requested hours must be greater than zero")
	ErrAlreadyProcessed  = errors.New("overtime request has already been approved or rejected")
	ErrAttendanceMissing = errors.New("attendance record for this request no longer exists")
)
