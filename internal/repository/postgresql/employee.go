package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, user_id, region_id, full_name, email, position, is_coordinator,
	basic_salary, overtime_hour_salary, shorttime_hour_penalty, absence_penalty,
	expected_attend_time, expected_leave_time, overtime_threshold_minutes, schedule_overrides,
	total_lateness_hours, total_overtime_hours, total_absence_days,
	employment_status, hire_date, created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.RegionID, &emp.FullName, &emp.Email, &emp.Position, &emp.IsCoordinator,
		&emp.BasicSalary, &emp.OvertimeHourSalary, &emp.ShorttimeHourPenalty, &emp.AbsencePenalty,
		&emp.ExpectedAttendTime, &emp.ExpectedLeaveTime, &emp.OvertimeThresholdMinutes, &emp.ScheduleOverrides,
		&emp.TotalLatenessHours, &emp.TotalOvertimeHours, &emp.TotalAbsenceDays,
		&emp.EmploymentStatus, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			user_id, region_id, full_name, email, position, is_coordinator,
			basic_salary, overtime_hour_salary, shorttime_hour_penalty, absence_penalty,
			expected_attend_time, expected_leave_time, overtime_threshold_minutes, schedule_overrides,
			employment_status, hire_date
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.UserID, emp.RegionID, emp.FullName, emp.Email, emp.Position, emp.IsCoordinator,
		emp.BasicSalary, emp.OvertimeHourSalary, emp.ShorttimeHourPenalty, emp.AbsencePenalty,
		emp.ExpectedAttendTime, emp.ExpectedLeaveTime, emp.OvertimeThresholdMinutes, emp.ScheduleOverrides,
		emp.EmploymentStatus, emp.HireDate,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}

	return emp, nil
}

// GetActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE employment_status = $1 AND deleted_at IS NULL
		ORDER BY full_name`

	rows, err := q.Query(ctx, query, employee.EmploymentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET region_id = $1, full_name = $2, email = $3, position = $4, is_coordinator = $5,
			basic_salary = $6, overtime_hour_salary = $7, shorttime_hour_penalty = $8, absence_penalty = $9,
			expected_attend_time = $10, expected_leave_time = $11, overtime_threshold_minutes = $12,
			schedule_overrides = $13, employment_status = $14, updated_at = NOW()
		WHERE id = $15 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.RegionID, emp.FullName, emp.Email, emp.Position, emp.IsCoordinator,
		emp.BasicSalary, emp.OvertimeHourSalary, emp.ShorttimeHourPenalty, emp.AbsencePenalty,
		emp.ExpectedAttendTime, emp.ExpectedLeaveTime, emp.OvertimeThresholdMinutes,
		emp.ScheduleOverrides, emp.EmploymentStatus, emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// AddLatenessHours implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) AddLatenessHours(ctx context.Context, id string, hours decimal.Decimal) error {
	return e.addTotal(ctx, id, "total_lateness_hours", hours)
}

// AddOvertimeHours implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) AddOvertimeHours(ctx context.Context, id string, hours decimal.Decimal) error {
	return e.addTotal(ctx, id, "total_overtime_hours", hours)
}

func (e *employeeRepositoryImpl) addTotal(ctx context.Context, id, column string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = %s + $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
		RETURNING id
	`, column, column)

	var updatedID string
	if err := q.QueryRow(ctx, query, delta, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to accumulate %s: %w", column, err)
	}

	return nil
}

// AddAbsenceDays implements employee.EmployeeRepository. The total never
// drops below zero.
func (e *employeeRepositoryImpl) AddAbsenceDays(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET total_absence_days = GREATEST(total_absence_days + $1, 0), updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, delta, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to accumulate absence days: %w", err)
	}

	return nil
}

// SetRunningTotals implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SetRunningTotals(ctx context.Context, id string, lateness, overtime decimal.Decimal, absenceDays int) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET total_lateness_hours = $1, total_overtime_hours = $2, total_absence_days = $3,
			updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, lateness, overtime, absenceDays, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set running totals: %w", err)
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
