package candidate

import (
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	CV       []byte `json:"-"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.CV) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "cv",
			Message: "a CV file is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	Status string
	Page   int
	Limit  int
}

type Response struct {
	ID                              string   `json:"id"`
	FullName                        string   `json:"full_name"`
	Email                           string   `json:"email"`
	Region                          string   `json:"region,omitempty"`
	Degree                          string   `json:"degree,omitempty"`
	Field                           string   `json:"field,omitempty"`
	YearsExperience                 int      `json:"years_experience"`
	HadLeadership                   bool     `json:"had_leadership"`
	Skills                          []string `json:"skills,omitempty"`
	HasPositionRelatedHighEducation bool     `json:"has_position_related_high_education"`
	Status                          string   `json:"status"`
}

type ListResponse struct {
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Candidates []Response `json:"candidates"`
}
