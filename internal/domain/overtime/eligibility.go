package overtime

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
)

// CanRequest is the pure eligibility check, re-evaluated on demand. It
// creates nothing: the requester must own the record, the record must be
// today's and checked out, and the per-employee threshold must have
// elapsed since checkout.
func CanRequest(att attendance.Attendance, requesterEmployeeID string, now time.Time, threshold time.Duration) error {
	if att.EmployeeID != requesterEmployeeID {
		return ErrNotRecordOwner
	}

	y1, m1, d1 := att.Date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return ErrNotToday
	}

	if att.CheckOutTime == nil {
		return ErrNotCheckedOut
	}

	if now.Before(att.CheckOutTime.Add(threshold)) {
		return ErrThresholdNotElapsed
	}

	return nil
}
