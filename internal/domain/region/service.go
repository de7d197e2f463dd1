package region

import "context"

// RegionService defines office region management.
type RegionService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context) (ListResponse, error)
	Update(ctx context.Context, req UpdateRequest) (Response, error)
}
