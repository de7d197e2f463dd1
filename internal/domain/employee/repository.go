package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error

	// AddLatenessHours atomically accumulates lateness into the running
	// total. Called inside the check-in transaction.
	AddLatenessHours(ctx context.Context, id string, hours decimal.Decimal) error

	// AddOvertimeHours accumulates approved overtime into the running total.
	AddOvertimeHours(ctx context.Context, id string, hours decimal.Decimal) error

	// AddAbsenceDays accumulates absence days (negative delta on leave
	// conversion).
	AddAbsenceDays(ctx context.Context, id string, delta int) error

	// SetRunningTotals overwrites the cached totals with values
	// re-derived from attendance rows.
	SetRunningTotals(ctx context.Context, id string, lateness, overtime decimal.Decimal, absenceDays int) error

	// SoftDelete marks the employee without removing attendance history.
	SoftDelete(ctx context.Context, id string) error
}
