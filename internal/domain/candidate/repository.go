package candidate

import "context"

type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
	Update(ctx context.Context, c Candidate) error
	List(ctx context.Context, filter Filter) ([]Candidate, int64, error)
}
