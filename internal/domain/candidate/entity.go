package candidate

import "time"

type Status string

const (
	StatusApplied  Status = "applied"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Candidate is an applicant built from a best-effort CV extraction. Every
// extracted field may be missing; the record is still created.
type Candidate struct {
	ID              string
	FullName        string
	Email           string
	Region          string
	Degree          string
	Field           string
	YearsExperience int
	HadLeadership   bool
	Skills          []string

	// Whether the extraction judged the education relevant to the
	// applied position.
	HasPositionRelatedHighEducation bool

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
