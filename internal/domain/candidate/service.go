package candidate

import "context"

// CandidateService defines the screening workflow around the external
// extraction service.
type CandidateService interface {
	// Apply extracts the CV best-effort and creates the candidate.
	// Partial or garbled extraction falls back to safe defaults; only a
	// totally unreadable file fails. A follow-up notification failure
	// does not undo the created record.
	Apply(ctx context.Context, req ApplyRequest) (Response, error)

	// Accept issues credentials and notifies the candidate. The state
	// change is not rolled back when the email fails.
	Accept(ctx context.Context, id string) (Response, error)

	// Reject notifies the candidate of the rejection.
	Reject(ctx context.Context, id string) (Response, error)

	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
}
