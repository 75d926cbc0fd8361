package resources

import "context"

// Repository guarda un único snapshot.
type Repository interface {
	Get(ctx context.Context) (SharedResources, error)
	Replace(ctx context.Context, s SharedResources) error
}
