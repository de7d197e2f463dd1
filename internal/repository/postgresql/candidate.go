package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/candidate"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type candidateRepositoryImpl struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) candidate.CandidateRepository {
	return &candidateRepositoryImpl{db: db}
}

const candidateColumns = `id, full_name, email, region, degree, field, years_experience,
	had_leadership, skills, has_position_related_high_education, status, created_at, updated_at`

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := row.Scan(
		&c.ID, &c.FullName, &c.Email, &c.Region, &c.Degree, &c.Field, &c.YearsExperience,
		&c.HadLeadership, &c.Skills, &c.HasPositionRelatedHighEducation, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO candidates (
			full_name, email, region, degree, field, years_experience,
			had_leadership, skills, has_position_related_high_education, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + candidateColumns

	created, err := scanCandidate(q.QueryRow(ctx, query,
		c.FullName, c.Email, c.Region, c.Degree, c.Field, c.YearsExperience,
		c.HadLeadership, c.Skills, c.HasPositionRelatedHighEducation, c.Status,
	))
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}

	return created, nil
}

// GetByID implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	c, err := scanCandidate(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrCandidateNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("failed to get candidate: %w", err)
	}

	return c, nil
}

// Update implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) Update(ctx context.Context, c candidate.Candidate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE candidates
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, c.Status, c.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.ErrCandidateNotFound
		}
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	return nil
}

// List implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) List(ctx context.Context, filter candidate.Filter) ([]candidate.Candidate, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM candidates` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	query := `SELECT ` + candidateColumns + ` FROM candidates` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []candidate.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}
