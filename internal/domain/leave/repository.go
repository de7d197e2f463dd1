package leave

import (
	"context"
	"time"
)

type CasualLeaveRepository interface {
	Create(ctx context.Context, cl CasualLeave) (CasualLeave, error)
	GetByID(ctx context.Context, id string) (CasualLeave, error)
	Update(ctx context.Context, cl CasualLeave) error
	List(ctx context.Context, filter Filter) ([]CasualLeave, int64, error)

	// ApprovedDaysInYear sums the duration of approved leaves for one
	// employee within a policy year.
	ApprovedDaysInYear(ctx context.Context, employeeID string, year int) (int, error)

	// HasLeaveCovering reports whether any non-rejected leave of the
	// employee overlaps [start, end].
	HasLeaveCovering(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}

type LeavePolicyRepository interface {
	// GetOrCreate returns the employee's policy, creating it with
	// defaults when absent.
	GetOrCreate(ctx context.Context, employeeID string) (EmployeeLeavePolicy, error)
	Update(ctx context.Context, policy EmployeeLeavePolicy) error
}
