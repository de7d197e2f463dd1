package employee

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID       string
	UserID   *string
	RegionID string
	FullName string
	Email    string
	Position *string

	IsCoordinator bool

	// Compensation parameters
	BasicSalary          *decimal.Decimal
	OvertimeHourSalary   decimal.Decimal
	ShorttimeHourPenalty decimal.Decimal
	AbsencePenalty       decimal.Decimal

	// Daily schedule, "HH:MM" local clock time. Nil means not configured;
	// check-in is rejected until HR sets it.
	ExpectedAttendTime *string
	ExpectedLeaveTime  *string

	// Minimum elapsed time after checkout before an overtime request
	// becomes eligible.
	OvertimeThresholdMinutes int

	ScheduleOverrides ScheduleOverrides

	// Running totals, maintained by the attendance state machine and used
	// for reporting averages.
	TotalLatenessHours decimal.Decimal
	TotalOvertimeHours decimal.Decimal
	TotalAbsenceDays   int

	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// DefaultOvertimeThresholdMinutes applies when no per-employee threshold
// is configured.
const DefaultOvertimeThresholdMinutes = 30

// MonthDay is a recurring calendar day, matched by (month, day) every year.
type MonthDay struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ScheduleOverrides are the per-employee sets consulted by the schedule
// resolver before any time-based rule fires. Weekdays are matched by
// locale-independent weekday name ("Monday" .. "Sunday").
type ScheduleOverrides struct {
	HolidayWeekdays []string   `json:"holiday_weekdays,omitempty"`
	OnlineWeekdays  []string   `json:"online_weekdays,omitempty"`
	HolidayYearDays []MonthDay `json:"holiday_year_days,omitempty"`
	OnlineYearDays  []MonthDay `json:"online_year_days,omitempty"`
}

// Value implements driver.Valuer for JSONB storage
func (s ScheduleOverrides) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB retrieval
func (s *ScheduleOverrides) Scan(value interface{}) error {
	if value == nil {
		*s = ScheduleOverrides{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for ScheduleOverrides")
	}

	return json.Unmarshal(data, s)
}

// OvertimeThreshold returns the configured eligibility threshold as a
// duration, falling back to the default when unset.
func (e Employee) OvertimeThreshold() time.Duration {
	minutes := e.OvertimeThresholdMinutes
	if minutes <= 0 {
		minutes = DefaultOvertimeThresholdMinutes
	}
	return time.Duration(minutes) * time.Minute
}
