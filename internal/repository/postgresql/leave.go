package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type casualLeaveRepositoryImpl struct {
	db *database.DB
}

func NewCasualLeaveRepository(db *database.DB) leave.CasualLeaveRepository {
	return &casualLeaveRepositoryImpl{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.start_date, l.end_date, l.duration, l.status,
	l.reason, l.rejection_reason, l.reviewed_by, l.reviewed_at, l.created_at, l.updated_at,
	e.full_name`

func scanLeave(row pgx.Row) (leave.CasualLeave, error) {
	var cl leave.CasualLeave
	err := row.Scan(
		&cl.ID, &cl.EmployeeID, &cl.StartDate, &cl.EndDate, &cl.Duration, &cl.Status,
		&cl.Reason, &cl.RejectionReason, &cl.ReviewedBy, &cl.ReviewedAt, &cl.CreatedAt, &cl.UpdatedAt,
		&cl.EmployeeName,
	)
	return cl, err
}

// Create implements leave.CasualLeaveRepository.
func (r *casualLeaveRepositoryImpl) Create(ctx context.Context, cl leave.CasualLeave) (leave.CasualLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO casual_leaves (employee_id, start_date, end_date, duration, status, reason, rejection_reason, reviewed_by, reviewed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + leaveColumns + `
		FROM inserted l
		JOIN employees e ON e.id = l.employee_id
	`

	created, err := scanLeave(q.QueryRow(ctx, query,
		cl.EmployeeID, cl.StartDate, cl.EndDate, cl.Duration, cl.Status,
		cl.Reason, cl.RejectionReason, cl.ReviewedBy, cl.ReviewedAt,
	))
	if err != nil {
		return leave.CasualLeave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.CasualLeaveRepository.
func (r *casualLeaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.CasualLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM casual_leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	cl, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.CasualLeave{}, leave.ErrLeaveNotFound
		}
		return leave.CasualLeave{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return cl, nil
}

// Update implements leave.CasualLeaveRepository.
func (r *casualLeaveRepositoryImpl) Update(ctx context.Context, cl leave.CasualLeave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE casual_leaves
		SET status = $1, rejection_reason = $2, reviewed_by = $3, reviewed_at = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		cl.Status, cl.RejectionReason, cl.ReviewedBy, cl.ReviewedAt, cl.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update leave request: %w", err)
	}

	return nil
}

// List implements leave.CasualLeaveRepository.
func (r *casualLeaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.CasualLeave, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND l.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND l.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Year != 0 {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM l.start_date) = $%d", argPos)
		args = append(args, filter.Year)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM casual_leaves l` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM casual_leaves l
		JOIN employees e ON e.id = l.employee_id` + where +
		fmt.Sprintf(" ORDER BY l.start_date DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.CasualLeave
	for rows.Next() {
		cl, err := scanLeave(rows)
		if err != nil {
			return nil, 0, err
		}
		leaves = append(leaves, cl)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

// ApprovedDaysInYear implements leave.CasualLeaveRepository.
func (r *casualLeaveRepositoryImpl) ApprovedDaysInYear(ctx context.Context, employeeID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(duration), 0)
		FROM casual_leaves
		WHERE employee_id = $1 AND status = $2 AND EXTRACT(YEAR FROM start_date) = $3
	`

	var days int
	if err := q.QueryRow(ctx, query, employeeID, leave.StatusApproved, year).Scan(&days); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	return days, nil
}

// HasLeaveCovering implements leave.CasualLeaveRepository. Rejected
// leaves never block a new request.
func (r *casualLeaveRepositoryImpl) HasLeaveCovering(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM casual_leaves
			WHERE employee_id = $1
			  AND status != $2
			  AND start_date <= $3
			  AND end_date >= $4
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, leave.StatusRejected, end, start).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check covering leaves: %w", err)
	}

	return exists, nil
}

type leavePolicyRepositoryImpl struct {
	db *database.DB
}

func NewLeavePolicyRepository(db *database.DB) leave.LeavePolicyRepository {
	return &leavePolicyRepositoryImpl{db: db}
}

// GetOrCreate implements leave.LeavePolicyRepository. The upsert keeps
// concurrent first requests from racing on policy creation.
func (r *leavePolicyRepositoryImpl) GetOrCreate(ctx context.Context, employeeID string) (leave.EmployeeLeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_leave_policies (employee_id, yearly_quota, max_days_per_request)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id) DO UPDATE SET employee_id = EXCLUDED.employee_id
		RETURNING id, employee_id, yearly_quota, max_days_per_request, created_at, updated_at
	`

	var policy leave.EmployeeLeavePolicy
	err := q.QueryRow(ctx, query,
		employeeID, leave.DefaultYearlyQuota, leave.DefaultMaxDaysPerRequest,
	).Scan(
		&policy.ID, &policy.EmployeeID, &policy.YearlyQuota, &policy.MaxDaysPerRequest,
		&policy.CreatedAt, &policy.UpdatedAt,
	)
	if err != nil {
		return leave.EmployeeLeavePolicy{}, fmt.Errorf("failed to get or create leave policy: %w", err)
	}

	return policy, nil
}

// Update implements leave.LeavePolicyRepository.
func (r *leavePolicyRepositoryImpl) Update(ctx context.Context, policy leave.EmployeeLeavePolicy) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_leave_policies
		SET yearly_quota = $1, max_days_per_request = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, policy.YearlyQuota, policy.MaxDaysPerRequest, policy.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrPolicyNotFound
		}
		return fmt.Errorf("failed to update leave policy: %w", err)
	}

	return nil
}
