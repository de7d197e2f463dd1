package salary

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// SalaryService defines the monthly compiler operations.
type SalaryService interface {
	// Compile aggregates one employee's month and fully replaces the
	// period's salary record. Deterministic: unchanged inputs yield an
	// identical final salary.
	Compile(ctx context.Context, req CompileRequest) (Response, error)

	// CompileAll runs Compile for every active employee for the period.
	// Used by the nightly regeneration job; skips employees without a
	// configured basic salary.
	CompileAll(ctx context.Context, year, month int) (int, error)

	Get(ctx context.Context, id string) (Response, error)
	GetMy(ctx context.Context, actor user.Actor, year, month int) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
}
