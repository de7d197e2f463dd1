package region

import (
	"context"
	"fmt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/region"
)

type RegionServiceImpl struct {
	region.RegionRepository
}

func NewRegionService(regionRepo region.RegionRepository) region.RegionService {
	return &RegionServiceImpl{RegionRepository: regionRepo}
}

// Create implements region.RegionService.
func (r *RegionServiceImpl) Create(ctx context.Context, req region.CreateRequest) (region.Response, error) {
	if err := req.Validate(); err != nil {
		return region.Response{}, err
	}

	created, err := r.RegionRepository.Create(ctx, region.Region{
		Name:            req.Name,
		OfficeLatitude:  req.OfficeLatitude,
		OfficeLongitude: req.OfficeLongitude,
		RadiusMeters:    req.RadiusMeters,
		Timezone:        req.Timezone,
	})
	if err != nil {
		return region.Response{}, fmt.Errorf("failed to create region: %w", err)
	}

	return mapRegionToResponse(created), nil
}

// Get implements region.RegionService.
func (r *RegionServiceImpl) Get(ctx context.Context, id string) (region.Response, error) {
	reg, err := r.RegionRepository.GetByID(ctx, id)
	if err != nil {
		return region.Response{}, err
	}
	return mapRegionToResponse(reg), nil
}

// List implements region.RegionService.
func (r *RegionServiceImpl) List(ctx context.Context) (region.ListResponse, error) {
	regions, err := r.RegionRepository.List(ctx)
	if err != nil {
		return region.ListResponse{}, fmt.Errorf("failed to list regions: %w", err)
	}

	responses := make([]region.Response, 0, len(regions))
	for _, reg := range regions {
		responses = append(responses, mapRegionToResponse(reg))
	}

	return region.ListResponse{Regions: responses}, nil
}

// Update implements region.RegionService.
func (r *RegionServiceImpl) Update(ctx context.Context, req region.UpdateRequest) (region.Response, error) {
	if err := req.Validate(); err != nil {
		return region.Response{}, err
	}

	reg, err := r.RegionRepository.GetByID(ctx, req.ID)
	if err != nil {
		return region.Response{}, err
	}

	if req.Name != nil {
		reg.Name = *req.Name
	}
	if req.OfficeLatitude != nil {
		reg.OfficeLatitude = req.OfficeLatitude
	}
	if req.OfficeLongitude != nil {
		reg.OfficeLongitude = req.OfficeLongitude
	}
	if req.RadiusMeters != nil {
		reg.RadiusMeters = *req.RadiusMeters
	}
	if req.Timezone != nil {
		reg.Timezone = *req.Timezone
	}

	if err := r.RegionRepository.Update(ctx, reg); err != nil {
		return region.Response{}, fmt.Errorf("failed to update region: %w", err)
	}

	return mapRegionToResponse(reg), nil
}

func mapRegionToResponse(reg region.Region) region.Response {
	return region.Response{
		ID:              reg.ID,
		Name:            reg.Name,
		OfficeLatitude:  reg.OfficeLatitude,
		OfficeLongitude: reg.OfficeLongitude,
		RadiusMeters:    reg.RadiusMeters,
		Timezone:        reg.Timezone,
	}
}
