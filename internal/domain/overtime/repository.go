package overtime

import "context"

// OvertimeRequestRepository defines data access for overtime requests.
// attendance_id carries a unique constraint: one request per record.
type OvertimeRequestRepository interface {
	Create(ctx context.Context, req OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	GetByAttendanceID(ctx context.Context, attendanceID string) (*OvertimeRequest, error)
	Update(ctx context.Context, req OvertimeRequest) error
	List(ctx context.Context, filter Filter) ([]OvertimeRequest, int64, error)
}
