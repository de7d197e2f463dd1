package overtime

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// OvertimeService defines the request/approval workflow.
type OvertimeService interface {
	// CheckEligibility answers whether the actor could request overtime
	// on an attendance record right now. Pure read, creates nothing.
	CheckEligibility(ctx context.Context, actor user.Actor, attendanceID string) (EligibilityResponse, error)

	// Create files a pending request against a checked-out record.
	Create(ctx context.Context, actor user.Actor, req CreateRequest) (Response, error)

	// Approve moves pending → approved and writes the hours onto the
	// linked attendance record.
	Approve(ctx context.Context, actor user.Actor, req ReviewRequest) (Response, error)

	// Reject moves pending → rejected and forces the linked record's
	// overtime fields back to zero/false.
	Reject(ctx context.Context, actor user.Actor, req ReviewRequest) (Response, error)

	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
}
