package region

import (
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Name            string   `json:"name"`
	OfficeLatitude  *float64 `json:"office_latitude"`
	OfficeLongitude *float64 `json:"office_longitude"`
	RadiusMeters    float64  `json:"radius_meters"`
	Timezone        string   `json:"timezone"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.OfficeLatitude != nil && !validator.IsValidLatitude(*r.OfficeLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "office_latitude must be between -90 and 90",
		})
	}

	if r.OfficeLongitude != nil && !validator.IsValidLongitude(*r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "office_longitude must be between -180 and 180",
		})
	}

	if (r.OfficeLatitude == nil) != (r.OfficeLongitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_location",
			Message: "office latitude and longitude must be provided together",
		})
	}

	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must be greater than zero",
		})
	}

	if validator.IsEmpty(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID              string   `json:"-"`
	Name            *string  `json:"name"`
	OfficeLatitude  *float64 `json:"office_latitude"`
	OfficeLongitude *float64 `json:"office_longitude"`
	RadiusMeters    *float64 `json:"radius_meters"`
	Timezone        *string  `json:"timezone"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.OfficeLatitude != nil && !validator.IsValidLatitude(*r.OfficeLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "office_latitude must be between -90 and 90",
		})
	}

	if r.OfficeLongitude != nil && !validator.IsValidLongitude(*r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "office_longitude must be between -180 and 180",
		})
	}

	if r.RadiusMeters != nil && *r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	OfficeLatitude  *float64 `json:"office_latitude,omitempty"`
	OfficeLongitude *float64 `json:"office_longitude,omitempty"`
	RadiusMeters    float64  `json:"radius_meters"`
	Timezone        string   `json:"timezone"`
}

type ListResponse struct {
	Regions []Response `json:"regions"`
}
