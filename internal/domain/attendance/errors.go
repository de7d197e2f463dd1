package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn     = errors.New("you have already checked in today")
	ErrHolidayToday         = errors.New("today is a holiday, check-in is disabled")
	ErrTooEarlyToCheckIn    = errors.New("too early to check in")
	ErrWorkdayOver          = errors.New("the workday is over, check-in is no longer possible")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")

	// Check-out errors
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
