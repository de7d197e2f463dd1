package attendance

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn processes employee check-in with schedule and geofence
	// validation.
	CheckIn(ctx context.Context, actor user.Actor, req CheckInRequest) (Response, error)

	// CheckOut processes employee check-out. Always succeeds for an open
	// record and reports overtime eligibility without finalizing anything.
	CheckOut(ctx context.Context, actor user.Actor, req CheckOutRequest) (Response, error)

	// Get retrieves a single attendance record by ID.
	Get(ctx context.Context, id string) (Response, error)

	// List retrieves attendance records with filters (HR/admin).
	List(ctx context.Context, filter Filter) (ListResponse, error)

	// ListMy retrieves the acting employee's own records.
	ListMy(ctx context.Context, actor user.Actor, filter Filter) (ListResponse, error)

	// Correct fixes a record's times or status (HR/admin).
	Correct(ctx context.Context, req CorrectRequest) (Response, error)

	// Delete removes an attendance record (HR/admin).
	Delete(ctx context.Context, id string) error
}
