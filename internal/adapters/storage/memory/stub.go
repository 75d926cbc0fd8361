package memory

import (
	"context"

	"pet-health-dashboard/internal/domain/animals"
)

// Stub agrupa los repos en memoria que forman el backend de desarrollo.
// Lo construye la raíz de composición; no hay estado global.
type Stub struct {
	Animals   *AnimalRepo
	Metrics   *MetricRepo
	Resources *ResourcesRepo
	IDs       *animals.Sequence
}

// NewStub crea un stub vacío. La secuencia arranca en cat-1.
func NewStub() *Stub {
	return &Stub{
		Animals:   NewAnimalRepo(),
		Metrics:   NewMetricRepo(),
		Resources: NewResourcesRepo(),
		IDs:       animals.NewSequence("cat-", 1),
	}
}

// NewSeededStub crea un stub con los datos de Seed.
func NewSeededStub(data SeedData) *Stub {
	s := &Stub{
		Animals:   NewAnimalRepo(),
		Metrics:   NewMetricRepo(),
		Resources: NewResourcesRepo(),
		IDs:       animals.NewSequence("cat-", data.NextID),
	}
	s.Animals.Restore(data.Animals)
	s.Metrics.Restore(data.Metrics)
	_ = s.Resources.Replace(context.Background(), data.Resources)
	return s
}
