package leave

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// LeaveService defines the casual-leave ledger operations.
type LeaveService interface {
	// Create files a pending leave request, validating the per-request
	// cap and the yearly quota before any state is written.
	Create(ctx context.Context, actor user.Actor, req CreateRequest) (Response, error)

	// Approve moves pending → approved (HR/admin).
	Approve(ctx context.Context, actor user.Actor, id string) (Response, error)

	// Reject moves pending → rejected with a mandatory reason (HR/admin).
	Reject(ctx context.Context, actor user.Actor, req RejectRequest) (Response, error)

	// ConvertAbsence atomically turns an absent attendance day into an
	// approved one-day leave, flipping the record to present and patching
	// any cached salary record for that period.
	ConvertAbsence(ctx context.Context, actor user.Actor, attendanceID string) (Response, error)

	// Quota reports the employee's used and remaining days for a year.
	Quota(ctx context.Context, employeeID string, year int) (QuotaResponse, error)

	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
}
