package employee

import "context"

// EmployeeService defines HR-facing employee management.
type EmployeeService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context) (ListResponse, error)

	// Update applies a partial update to schedule, compensation or status.
	Update(ctx context.Context, req UpdateRequest) (Response, error)

	// Delete soft-deletes the employee, keeping attendance history intact.
	Delete(ctx context.Context, id string) error
}
