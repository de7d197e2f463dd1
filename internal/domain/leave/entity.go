package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// CasualLeave is a leave request over an inclusive date range. Duration
// is derived, never supplied by the caller.
type CasualLeave struct {
	ID              string
	EmployeeID      string
	StartDate       time.Time
	EndDate         time.Time
	Duration        int
	Status          Status
	Reason          *string
	RejectionReason *string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined
	EmployeeName *string
}

// DurationDays is the inclusive day count of a range.
func DurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// EmployeeLeavePolicy is the per-employee quota configuration, created on
// demand with defaults when an employee first requests leave.
type EmployeeLeavePolicy struct {
	ID                string
	EmployeeID        string
	YearlyQuota       int
	MaxDaysPerRequest int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const (
	DefaultYearlyQuota       = 21
	DefaultMaxDaysPerRequest = 14
)
