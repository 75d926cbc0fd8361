package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-health-dashboard/internal/domain/metrics"
)

// MetricRepo guarda registros diarios por animal, ordenados por fecha.
type MetricRepo struct {
	mu       sync.RWMutex
	byAnimal map[string][]metrics.DailyMetric
}

func NewMetricRepo() *MetricRepo {
	return &MetricRepo{
		byAnimal: make(map[string][]metrics.DailyMetric),
	}
}

func (r *MetricRepo) Create(ctx context.Context, m metrics.DailyMetric) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insert(m)
}

func (r *MetricRepo) insert(m metrics.DailyMetric) error {
	if strings.TrimSpace(m.AnimalID) == "" {
		return errors.New("animal id required")
	}
	m = m.Clone()
	m.Date = metrics.Day(m.Date)

	list := r.byAnimal[m.AnimalID]
	i := sort.Search(len(list), func(i int) bool {
		return !list[i].Date.Before(m.Date)
	})
	if i < len(list) && list[i].Date.Equal(m.Date) {
		return metrics.ErrDuplicate
	}

	list = append(list, metrics.DailyMetric{})
	copy(list[i+1:], list[i:])
	list[i] = m
	r.byAnimal[m.AnimalID] = list
	return nil
}

func (r *MetricRepo) ListByAnimal(ctx context.Context, animalID string, filter metrics.ListFilter) ([]metrics.DailyMetric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]metrics.DailyMetric, 0)
	for _, m := range r.byAnimal[animalID] {
		if filter.Match(m.Date) {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

// Snapshot exporta todos los registros (por animal, fecha ascendente).
func (r *MetricRepo) Snapshot() []metrics.DailyMetric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byAnimal))
	for id := range r.byAnimal {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]metrics.DailyMetric, 0)
	for _, id := range ids {
		out = append(out, metrics.CloneAll(r.byAnimal[id])...)
	}
	return out
}

// Restore reemplaza el contenido; los duplicados se descartan.
func (r *MetricRepo) Restore(list []metrics.DailyMetric) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byAnimal = make(map[string][]metrics.DailyMetric)
	for _, m := range list {
		_ = r.insert(m)
	}
}
