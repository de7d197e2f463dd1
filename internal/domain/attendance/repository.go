package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// (employee_id, date) pair carries a unique constraint; Create surfaces a
// violation as ErrAlreadyCheckedIn.
type AttendanceRepository interface {
	// Create inserts a new attendance record.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for one employee on one
	// date. Returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record.
	Update(ctx context.Context, att Attendance) error

	// List retrieves attendance records with filters and pagination.
	List(ctx context.Context, filter Filter) ([]Attendance, int64, error)

	// ListByEmployeeMonth retrieves all records for one employee in one
	// calendar month, for salary compilation.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	// TotalsByEmployee aggregates lifetime lateness, approved overtime
	// and absence counts from attendance rows, for the running-totals
	// recompute batch.
	TotalsByEmployee(ctx context.Context, employeeID string) (Totals, error)

	// Delete removes an attendance record.
	Delete(ctx context.Context, id string) error
}
