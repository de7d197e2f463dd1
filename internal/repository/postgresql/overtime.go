package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/overtime"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) overtime.OvertimeRequestRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `o.id, o.attendance_id, o.employee_id, o.requested_hours, o.status,
	o.reviewed_by, o.reviewed_at, o.hr_comment, o.created_at, o.updated_at,
	e.full_name, a.date`

func scanOvertime(row pgx.Row) (overtime.OvertimeRequest, error) {
	var req overtime.OvertimeRequest
	err := row.Scan(
		&req.ID, &req.AttendanceID, &req.EmployeeID, &req.RequestedHours, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.HRComment, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.AttendanceDate,
	)
	return req, err
}

// Create implements overtime.OvertimeRequestRepository. attendance_id is
// unique, so a second request for the same record loses on the constraint.
func (o *overtimeRepositoryImpl) Create(ctx context.Context, req overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		WITH inserted AS (
			INSERT INTO overtime_requests (attendance_id, employee_id, requested_hours, status, hr_comment)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT ` + overtimeColumns + `
		FROM inserted o
		JOIN employees e ON e.id = o.employee_id
		JOIN attendances a ON a.id = o.attendance_id
	`

	created, err := scanOvertime(q.QueryRow(ctx, query,
		req.AttendanceID, req.EmployeeID, req.RequestedHours, req.Status, req.HRComment,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return overtime.OvertimeRequest{}, overtime.ErrAlreadyRequested
		}
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return created, nil
}

// GetByID implements overtime.OvertimeRequestRepository.
func (o *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		JOIN employees e ON e.id = o.employee_id
		JOIN attendances a ON a.id = o.attendance_id
		WHERE o.id = $1
	`

	req, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRequest{}, overtime.ErrRequestNotFound
		}
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return req, nil
}

// GetByAttendanceID implements overtime.OvertimeRequestRepository.
func (o *overtimeRepositoryImpl) GetByAttendanceID(ctx context.Context, attendanceID string) (*overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		JOIN employees e ON e.id = o.employee_id
		JOIN attendances a ON a.id = o.attendance_id
		WHERE o.attendance_id = $1
	`

	req, err := scanOvertime(q.QueryRow(ctx, query, attendanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get overtime request by attendance: %w", err)
	}

	return &req, nil
}

// Update implements overtime.OvertimeRequestRepository.
func (o *overtimeRepositoryImpl) Update(ctx context.Context, req overtime.OvertimeRequest) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE overtime_requests
		SET status = $1, reviewed_by = $2, reviewed_at = $3, hr_comment = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.Status, req.ReviewedBy, req.ReviewedAt, req.HRComment, req.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.ErrRequestNotFound
		}
		return fmt.Errorf("failed to update overtime request: %w", err)
	}

	return nil
}

// List implements overtime.OvertimeRequestRepository.
func (o *overtimeRepositoryImpl) List(ctx context.Context, filter overtime.Filter) ([]overtime.OvertimeRequest, int64, error) {
	q := GetQuerier(ctx, o.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND o.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND o.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM overtime_requests o` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime requests: %w", err)
	}

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		JOIN employees e ON e.id = o.employee_id
		JOIN attendances a ON a.id = o.attendance_id` + where +
		fmt.Sprintf(" ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		req, err := scanOvertime(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}
