package dashboard

import (
	"context"
	"errors"
	"time"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/health"
	"pet-health-dashboard/internal/domain/metrics"
	"pet-health-dashboard/internal/domain/resources"
)

// DataService es el contrato que consume la capa de presentación.
// "No encontrado" es found=false, nunca un error.
type DataService interface {
	ListAnimals(ctx context.Context) ([]animals.Animal, error)
	GetAnimal(ctx context.Context, id string) (animals.Animal, bool, error)
	GetMetrics(ctx context.Context, animalID string, r metrics.TimeRange) ([]metrics.DailyMetric, error)
	GetSharedResources(ctx context.Context) (resources.SharedResources, error)
	ListAlerts(ctx context.Context) ([]health.Alert, error)
	AddAnimal(ctx context.Context, in animals.CreateInput) (animals.Animal, error)
	UpdateAnimal(ctx context.Context, id string, in animals.UpdateInput) (animals.Animal, bool, error)
}

// Backend es la variante de store elegida por la raíz de composición.
type Backend struct {
	Animals   animals.Repository
	Metrics   metrics.Repository
	Resources resources.Repository
	IDs       animals.IDGenerator // nil => UUID
}

type Options struct {
	Alerts health.GeneratorConfig
	// Now reemplaza el reloj de todo el facade (tests).
	Now func() time.Time
	// OnAlert se llama por cada alerta generada (métricas).
	OnAlert func(health.Alert)
}

type Service struct {
	animals   *animals.Service
	metrics   *metrics.Service
	history   metrics.Repository
	resources resources.Repository
	generator *health.Generator
	onAlert   func(health.Alert)
	now       func() time.Time
}

var _ DataService = (*Service)(nil)

func NewService(b Backend, opts Options) *Service {
	s := &Service{
		animals:   animals.NewService(b.Animals, b.IDs),
		metrics:   metrics.NewService(b.Metrics),
		history:   b.Metrics,
		resources: b.Resources,
		generator: health.NewGenerator(opts.Alerts),
		onAlert:   opts.OnAlert,
		now:       time.Now,
	}
	if opts.Now != nil {
		s.now = opts.Now
		s.animals.SetClock(opts.Now)
		s.metrics.SetClock(opts.Now)
		s.generator.SetClock(opts.Now)
	}
	return s
}

// Today es el día actual del facade.
func (s *Service) Today() time.Time {
	return metrics.Day(s.now())
}

func (s *Service) ListAnimals(ctx context.Context) ([]animals.Animal, error) {
	list, err := s.animals.List(ctx)
	if err != nil {
		return nil, err
	}
	return animals.CloneAll(list), nil
}

func (s *Service) GetAnimal(ctx context.Context, id string) (animals.Animal, bool, error) {
	a, err := s.animals.GetByID(ctx, id)
	if errors.Is(err, animals.ErrNotFound) {
		return animals.Animal{}, false, nil
	}
	if err != nil {
		return animals.Animal{}, false, err
	}
	return a.Clone(), true, nil
}

// GetMetrics devuelve la ventana pedida; un animal sin datos (o inexistente) da slice vacío.
func (s *Service) GetMetrics(ctx context.Context, animalID string, r metrics.TimeRange) ([]metrics.DailyMetric, error) {
	ms, err := s.metrics.ForRange(ctx, animalID, r)
	if err != nil {
		return nil, err
	}
	return metrics.CloneAll(ms), nil
}

// GetSharedResources devuelve un snapshot vacío si el backend todavía no tiene uno.
func (s *Service) GetSharedResources(ctx context.Context) (resources.SharedResources, error) {
	snap, err := s.resources.Get(ctx)
	if errors.Is(err, resources.ErrNotFound) {
		return resources.SharedResources{FoodBowls: []resources.FoodBowl{}}, nil
	}
	if err != nil {
		return resources.SharedResources{}, err
	}
	return snap.Clone(), nil
}

// ListAlerts evalúa el historial reciente de cada animal. Cada llamada produce alertas
// nuevas (ids nuevos); no hay deduplicación.
func (s *Service) ListAlerts(ctx context.Context) ([]health.Alert, error) {
	list, err := s.animals.List(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.generate(ctx, list)
	if err != nil {
		return nil, err
	}
	if s.onAlert != nil {
		for _, a := range alerts {
			s.onAlert(a)
		}
	}
	return alerts, nil
}

// AnimalAlerts evalúa solo el animal pedido. No cuenta en OnAlert: es una lectura
// de la ficha, no una emisión de alertas.
func (s *Service) AnimalAlerts(ctx context.Context, id string) ([]health.Alert, error) {
	a, found, err := s.GetAnimal(ctx, id)
	if err != nil || !found {
		return []health.Alert{}, err
	}
	return s.generate(ctx, []animals.Animal{a})
}

func (s *Service) generate(ctx context.Context, list []animals.Animal) ([]health.Alert, error) {
	today := s.Today()
	cfg := s.generator.Config()
	window := max(cfg.IntakeWindowDays, cfg.TrendWindowDays)
	from := today.AddDate(0, 0, -(window - 1))

	history := make(map[string][]metrics.DailyMetric, len(list))
	for _, a := range list {
		ms, err := s.history.ListByAnimal(ctx, a.ID, metrics.ListFilter{From: &from})
		if err != nil {
			return nil, err
		}
		history[a.ID] = ms
	}
	return s.generator.Generate(list, history, today), nil
}

func (s *Service) AddAnimal(ctx context.Context, in animals.CreateInput) (animals.Animal, error) {
	return s.animals.Create(ctx, in)
}

// UpdateAnimal hace merge superficial. Un id desconocido devuelve found=false sin tocar el store.
func (s *Service) UpdateAnimal(ctx context.Context, id string, in animals.UpdateInput) (animals.Animal, bool, error) {
	a, err := s.animals.Update(ctx, id, in)
	if errors.Is(err, animals.ErrNotFound) {
		return animals.Animal{}, false, nil
	}
	if err != nil {
		return animals.Animal{}, false, err
	}
	return a, true, nil
}

// RecordMetric agrega un registro diario de un animal existente.
// Devuelve animals.ErrNotFound si el animal no existe.
func (s *Service) RecordMetric(ctx context.Context, in metrics.RecordInput) (metrics.DailyMetric, error) {
	if _, err := s.animals.GetByID(ctx, in.AnimalID); err != nil {
		return metrics.DailyMetric{}, err
	}
	return s.metrics.Record(ctx, in)
}

// ReplaceSharedResources reemplaza el snapshot completo.
func (s *Service) ReplaceSharedResources(ctx context.Context, snap resources.SharedResources) (resources.SharedResources, error) {
	if err := snap.Validate(); err != nil {
		return resources.SharedResources{}, err
	}
	snap = snap.Clone()
	if err := s.resources.Replace(ctx, snap); err != nil {
		return resources.SharedResources{}, err
	}
	return snap.Clone(), nil
}
