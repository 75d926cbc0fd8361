package memory

import (
	"context"
	"sync"

	"pet-health-dashboard/internal/domain/resources"
)

type ResourcesRepo struct {
	mu   sync.RWMutex
	snap *resources.SharedResources
}

func NewResourcesRepo() *ResourcesRepo {
	return &ResourcesRepo{}
}

func (r *ResourcesRepo) Get(ctx context.Context) (resources.SharedResources, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snap == nil {
		return resources.SharedResources{}, resources.ErrNotFound
	}
	return r.snap.Clone(), nil
}

func (r *ResourcesRepo) Replace(ctx context.Context, s resources.SharedResources) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := s.Clone()
	r.snap = &c
	return nil
}
