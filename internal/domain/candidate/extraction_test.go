package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestSanitize_FullExtraction(t *testing.T) {
	ex := Extraction{
		Region:                          strPtr("Jakarta"),
		Degree:                          strPtr("BSc"),
		Field:                           strPtr("Computer Science"),
		YearsExperience:                 intPtr(5),
		HadLeadership:                   boolPtr(true),
		Skills:                          []string{"Go", " SQL ", ""},
		HasPositionRelatedHighEducation: boolPtr(true),
	}

	c := Sanitize(ex)

	assert.Equal(t, "Jakarta", c.Region)
	assert.Equal(t, "BSc", c.Degree)
	assert.Equal(t, 5, c.YearsExperience)
	assert.True(t, c.HadLeadership)
	assert.Equal(t, []string{"Go", "SQL"}, c.Skills)
	assert.True(t, c.HasPositionRelatedHighEducation)
	assert.Equal(t, StatusApplied, c.Status)
}

func TestSanitize_EmptyExtractionFallsBack(t *testing.T) {
	c := Sanitize(Extraction{})

	assert.Equal(t, "", c.Region)
	assert.Equal(t, "", c.Degree)
	assert.Equal(t, 0, c.YearsExperience)
	assert.False(t, c.HadLeadership)
	assert.Nil(t, c.Skills)
}

func TestSanitize_MalformedFieldsAbsorbed(t *testing.T) {
	ex := Extraction{
		YearsExperience: intPtr(-3),
		Skills:          []string{"   ", ""},
	}

	c := Sanitize(ex)

	assert.Equal(t, 0, c.YearsExperience, "negative experience falls back to zero")
	assert.Nil(t, c.Skills, "blank skills are dropped")
}
