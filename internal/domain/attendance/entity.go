package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypePhysical Type = "physical"
	TypeOnline   Type = "online"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// Attendance is one record per (employee, calendar date). The pair is
// unique at the database level; a concurrent duplicate check-in loses on
// the constraint, not on a read-then-write race.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Type       Type
	Status     Status

	CheckInTime  *time.Time
	CheckOutTime *time.Time

	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckOutLatitude  *float64
	CheckOutLongitude *float64

	// Geofence verdicts. Nil when the day resolved to online attendance,
	// where no geofence check runs at all.
	LocationValidIn  *bool
	LocationValidOut *bool

	LatenessHours decimal.Decimal

	// Set only by the overtime workflow on approval; forced back to
	// zero/false on rejection.
	OvertimeHours    decimal.Decimal
	OvertimeApproved bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined
	EmployeeName *string
}

// CheckedOut reports whether the day is terminal.
func (a Attendance) CheckedOut() bool {
	return a.CheckOutTime != nil
}

// Totals are one employee's lifetime aggregates over attendance rows,
// the source of truth the cached employee running totals derive from.
type Totals struct {
	LatenessHours decimal.Decimal
	OvertimeHours decimal.Decimal
	AbsenceDays   int
}
