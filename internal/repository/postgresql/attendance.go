package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.type, a.status,
	a.check_in_time, a.check_out_time,
	a.check_in_latitude, a.check_in_longitude, a.check_out_latitude, a.check_out_longitude,
	a.location_valid_in, a.location_valid_out,
	a.lateness_hours, a.overtime_hours, a.overtime_approved,
	a.created_at, a.updated_at, e.full_name`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Type, &att.Status,
		&att.CheckInTime, &att.CheckOutTime,
		&att.CheckInLatitude, &att.CheckInLongitude, &att.CheckOutLatitude, &att.CheckOutLongitude,
		&att.LocationValidIn, &att.LocationValidOut,
		&att.LatenessHours, &att.OvertimeHours, &att.OvertimeApproved,
		&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. A concurrent
// duplicate for the same (employee, date) loses on the unique constraint.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		WITH inserted AS (
			INSERT INTO attendances (
				employee_id, date, type, status,
				check_in_time, check_out_time,
				check_in_latitude, check_in_longitude, check_out_latitude, check_out_longitude,
				location_valid_in, location_valid_out,
				lateness_hours, overtime_hours, overtime_approved
			) VALUES (
				$1, $2, $3, $4,
				$5, $6,
				$7, $8, $9, $10,
				$11, $12,
				$13, $14, $15
			)
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM inserted a
		JOIN employees e ON e.id = a.employee_id
	`

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.Type, att.Status,
		att.CheckInTime, att.CheckOutTime,
		att.CheckInLatitude, att.CheckInLongitude, att.CheckOutLatitude, att.CheckOutLongitude,
		att.LocationValidIn, att.LocationValidOut,
		att.LatenessHours, att.OvertimeHours, att.OvertimeApproved,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = $1, check_in_time = $2, check_out_time = $3,
			check_in_latitude = $4, check_in_longitude = $5,
			check_out_latitude = $6, check_out_longitude = $7,
			location_valid_in = $8, location_valid_out = $9,
			lateness_hours = $10, overtime_hours = $11, overtime_approved = $12,
			updated_at = NOW()
		WHERE id = $13
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.Status, att.CheckInTime, att.CheckOutTime,
		att.CheckInLatitude, att.CheckInLongitude,
		att.CheckOutLatitude, att.CheckOutLongitude,
		att.LocationValidIn, att.LocationValidOut,
		att.LatenessHours, att.OvertimeHours, att.OvertimeApproved,
		att.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.DateFrom != "" {
		where += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, filter.DateFrom)
		argPos++
	}
	if filter.DateTo != "" {
		where += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, filter.DateTo)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id` + where +
		fmt.Sprintf(" ORDER BY a.date DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var atts []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		atts = append(atts, att)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return atts, total, nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND EXTRACT(YEAR FROM a.date) = $2
		  AND EXTRACT(MONTH FROM a.date) = $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list month attendances: %w", err)
	}
	defer rows.Close()

	var atts []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		atts = append(atts, att)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return atts, nil
}

// TotalsByEmployee implements attendance.AttendanceRepository. Overtime
// counts only when approved, matching the salary compiler's rule.
func (a *attendanceRepositoryImpl) TotalsByEmployee(ctx context.Context, employeeID string) (attendance.Totals, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COALESCE(SUM(lateness_hours), 0),
			COALESCE(SUM(overtime_hours) FILTER (WHERE overtime_approved), 0),
			COUNT(*) FILTER (WHERE status = $2)
		FROM attendances
		WHERE employee_id = $1
	`

	var totals attendance.Totals
	err := q.QueryRow(ctx, query, employeeID, attendance.StatusAbsent).Scan(
		&totals.LatenessHours, &totals.OvertimeHours, &totals.AbsenceDays,
	)
	if err != nil {
		return attendance.Totals{}, fmt.Errorf("failed to aggregate attendance totals: %w", err)
	}

	return totals, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendances WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	return nil
}
