package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `s.id, s.employee_id, s.year, s.month, s.base_salary, s.final_salary, s.details,
	s.created_at, s.updated_at, e.full_name`

func scanSalary(row pgx.Row) (salary.SalaryRecord, error) {
	var rec salary.SalaryRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month, &rec.BaseSalary, &rec.FinalSalary, &rec.Details,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	return rec, err
}

// Replace implements salary.SalaryRepository. Delete and insert run in
// one transaction behind a per-(employee, period) advisory lock, so two
// concurrent recomputes serialize instead of double-inserting.
func (r *salaryRepositoryImpl) Replace(ctx context.Context, rec salary.SalaryRecord) (salary.SalaryRecord, error) {
	var replaced salary.SalaryRecord

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		lockKey := fmt.Sprintf("%s:%d-%d", rec.EmployeeID, rec.Year, rec.Month)
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
			return fmt.Errorf("failed to take period lock: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM salary_records WHERE employee_id = $1 AND year = $2 AND month = $3`,
			rec.EmployeeID, rec.Year, rec.Month,
		); err != nil {
			return fmt.Errorf("failed to delete prior salary record: %w", err)
		}

		query := `
			WITH inserted AS (
				INSERT INTO salary_records (employee_id, year, month, base_salary, final_salary, details)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING *
			)
			SELECT ` + salaryColumns + `
			FROM inserted s
			JOIN employees e ON e.id = s.employee_id
		`

		var err error
		replaced, err = scanSalary(tx.QueryRow(ctx, query,
			rec.EmployeeID, rec.Year, rec.Month, rec.BaseSalary, rec.FinalSalary, rec.Details,
		))
		if err != nil {
			return fmt.Errorf("failed to insert salary record: %w", err)
		}

		return nil
	})
	if err != nil {
		return salary.SalaryRecord{}, err
	}

	return replaced, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	rec, err := scanSalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
		}
		return salary.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}

// GetByPeriod implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByPeriod(ctx context.Context, employeeID string, year, month int) (*salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.year = $2 AND s.month = $3
	`

	rec, err := scanSalary(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get salary record for period: %w", err)
	}

	return &rec, nil
}

// Update implements salary.SalaryRepository. Used only by the
// leave-conversion patch; compilation always goes through Replace.
func (r *salaryRepositoryImpl) Update(ctx context.Context, rec salary.SalaryRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_records
		SET final_salary = $1, details = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, rec.FinalSalary, rec.Details, rec.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.ErrSalaryRecordNotFound
		}
		return fmt.Errorf("failed to update salary record: %w", err)
	}

	return nil
}

// List implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) List(ctx context.Context, filter salary.Filter) ([]salary.SalaryRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND s.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Year != 0 {
		where += fmt.Sprintf(" AND s.year = $%d", argPos)
		args = append(args, filter.Year)
		argPos++
	}
	if filter.Month != 0 {
		where += fmt.Sprintf(" AND s.month = $%d", argPos)
		args = append(args, filter.Month)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM salary_records s` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id` + where +
		fmt.Sprintf(" ORDER BY s.year DESC, s.month DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.SalaryRecord
	for rows.Next() {
		rec, err := scanSalary(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
