package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// OvertimeRequest is the approval record keyed one-to-one off a
// checked-out attendance record. Approval and rejection are terminal;
// pending is the only legal source state for either.
type OvertimeRequest struct {
	ID             string
	AttendanceID   string
	EmployeeID     string
	RequestedHours decimal.Decimal
	Status         Status
	ReviewedBy     *string
	ReviewedAt     *time.Time
	HRComment      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined
	EmployeeName   *string
	AttendanceDate *time.Time
}
