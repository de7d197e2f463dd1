package candidate

import (
	"context"
	"strings"
)

// Extraction is the structured record the external CV service returns.
// All fields are optional and untrusted; pointers distinguish "absent"
// from zero values.
type Extraction struct {
	Region                          *string  `json:"region"`
	Degree                          *string  `json:"degree"`
	Field                           *string  `json:"field"`
	YearsExperience                 *int     `json:"years_experience"`
	HadLeadership                   *bool    `json:"had_leadership"`
	Skills                          []string `json:"skills"`
	HasPositionRelatedHighEducation *bool    `json:"has_position_related_high_education"`
}

// Extractor is the seam to the external CV/language-model service. Only a
// totally unreadable document returns an error; partial extraction
// returns whatever was recovered.
type Extractor interface {
	Extract(ctx context.Context, cv []byte) (Extraction, error)
}

// Sanitize folds a best-effort extraction into a candidate, falling back
// to blank/zero for each missing or malformed field instead of failing
// the application.
func Sanitize(ex Extraction) Candidate {
	c := Candidate{Status: StatusApplied}

	if ex.Region != nil {
		c.Region = strings.TrimSpace(*ex.Region)
	}
	if ex.Degree != nil {
		c.Degree = strings.TrimSpace(*ex.Degree)
	}
	if ex.Field != nil {
		c.Field = strings.TrimSpace(*ex.Field)
	}
	if ex.YearsExperience != nil && *ex.YearsExperience >= 0 {
		c.YearsExperience = *ex.YearsExperience
	}
	if ex.HadLeadership != nil {
		c.HadLeadership = *ex.HadLeadership
	}
	if ex.HasPositionRelatedHighEducation != nil {
		c.HasPositionRelatedHighEducation = *ex.HasPositionRelatedHighEducation
	}
	for _, skill := range ex.Skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			c.Skills = append(c.Skills, trimmed)
		}
	}

	return c
}
