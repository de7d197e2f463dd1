package region

import "context"

type RegionRepository interface {
	Create(ctx context.Context, region Region) (Region, error)
	GetByID(ctx context.Context, id string) (Region, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Region, error)
	List(ctx context.Context) ([]Region, error)
	Update(ctx context.Context, region Region) error
}
