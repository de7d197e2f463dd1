package salary

import "context"

// SalaryRepository defines data access for salary records. The
// (employee_id, year, month) triple is unique; Replace serializes
// concurrent recomputes for the same period behind an advisory lock.
type SalaryRepository interface {
	// Replace deletes any existing record for the period and inserts the
	// new one inside a single transaction.
	Replace(ctx context.Context, rec SalaryRecord) (SalaryRecord, error)

	GetByID(ctx context.Context, id string) (SalaryRecord, error)
	GetByPeriod(ctx context.Context, employeeID string, year, month int) (*SalaryRecord, error)
	Update(ctx context.Context, rec SalaryRecord) error
	List(ctx context.Context, filter Filter) ([]SalaryRecord, int64, error)
}
