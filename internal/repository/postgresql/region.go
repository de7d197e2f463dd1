package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/region"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type regionRepositoryImpl struct {
	db *database.DB
}

func NewRegionRepository(db *database.DB) region.RegionRepository {
	return &regionRepositoryImpl{db: db}
}

const regionColumns = `id, name, office_latitude, office_longitude, radius_meters, timezone, created_at, updated_at`

func scanRegion(row pgx.Row) (region.Region, error) {
	var reg region.Region
	err := row.Scan(
		&reg.ID, &reg.Name, &reg.OfficeLatitude, &reg.OfficeLongitude,
		&reg.RadiusMeters, &reg.Timezone, &reg.CreatedAt, &reg.UpdatedAt,
	)
	return reg, err
}

// Create implements region.RegionRepository.
func (r *regionRepositoryImpl) Create(ctx context.Context, reg region.Region) (region.Region, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO regions (name, office_latitude, office_longitude, radius_meters, timezone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + regionColumns

	created, err := scanRegion(q.QueryRow(ctx, query,
		reg.Name, reg.OfficeLatitude, reg.OfficeLongitude, reg.RadiusMeters, reg.Timezone,
	))
	if err != nil {
		return region.Region{}, fmt.Errorf("failed to create region: %w", err)
	}

	return created, nil
}

// GetByID implements region.RegionRepository.
func (r *regionRepositoryImpl) GetByID(ctx context.Context, id string) (region.Region, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + regionColumns + ` FROM regions WHERE id = $1`

	reg, err := scanRegion(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return region.Region{}, region.ErrRegionNotFound
		}
		return region.Region{}, fmt.Errorf("failed to get region: %w", err)
	}

	return reg, nil
}

// GetByEmployeeID implements region.RegionRepository.
func (r *regionRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (region.Region, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.name, r.office_latitude, r.office_longitude, r.radius_meters, r.timezone, r.created_at, r.updated_at
		FROM regions r
		JOIN employees e ON e.region_id = r.id
		WHERE e.id = $1
	`

	reg, err := scanRegion(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return region.Region{}, region.ErrRegionNotFound
		}
		return region.Region{}, fmt.Errorf("failed to get region by employee: %w", err)
	}

	return reg, nil
}

// List implements region.RegionRepository.
func (r *regionRepositoryImpl) List(ctx context.Context) ([]region.Region, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + regionColumns + ` FROM regions ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer rows.Close()

	var regions []region.Region
	for rows.Next() {
		reg, err := scanRegion(rows)
		if err != nil {
			return nil, err
		}
		regions = append(regions, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}

// Update implements region.RegionRepository.
func (r *regionRepositoryImpl) Update(ctx context.Context, reg region.Region) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE regions
		SET name = $1, office_latitude = $2, office_longitude = $3, radius_meters = $4, timezone = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		reg.Name, reg.OfficeLatitude, reg.OfficeLongitude, reg.RadiusMeters, reg.Timezone, reg.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return region.ErrRegionNotFound
		}
		return fmt.Errorf("failed to update region: %w", err)
	}

	return nil
}
