package league

import "context"

// Repository describes league table lookups needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByKey(ctx context.Context, key string) (League, bool, error)
}
