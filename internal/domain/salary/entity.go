package salary

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord is one per (employee, year, month), unique at the database
// level. It is a cache of a deterministic computation over attendance and
// overtime data: recompiling deletes and replaces it wholesale.
type SalaryRecord struct {
	ID          string
	EmployeeID  string
	Year        int
	Month       int
	BaseSalary  decimal.Decimal
	FinalSalary decimal.Decimal
	Details     Breakdown
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined
	EmployeeName *string
}

// Breakdown is the itemized salary detail. It deliberately carries every
// intermediate value so a retroactive correction can recompute from the
// stored inputs without touching raw attendance rows.
type Breakdown struct {
	AbsentDays    int             `json:"absent_days"`
	LateDays      int             `json:"late_days"`
	LatenessHours decimal.Decimal `json:"lateness_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`

	AbsentPenaltyTotal decimal.Decimal `json:"absent_penalty_total"`
	LatePenaltyTotal   decimal.Decimal `json:"late_penalty_total"`
	OvertimeBonusTotal decimal.Decimal `json:"overtime_bonus_total"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	FinalSalary        decimal.Decimal `json:"final_salary"`
}

// Value implements driver.Valuer for JSONB storage
func (b Breakdown) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements sql.Scanner for JSONB retrieval
func (b *Breakdown) Scan(value interface{}) error {
	if value == nil {
		*b = Breakdown{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for Breakdown")
	}

	return json.Unmarshal(data, b)
}
