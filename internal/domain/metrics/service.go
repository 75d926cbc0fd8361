package metrics

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Today es el día actual según el reloj del servicio.
func (s *Service) Today() time.Time {
	return Day(s.now())
}

// ForRange devuelve los registros del animal dentro de la ventana r.
// Sin datos => slice vacío, no error.
func (s *Service) ForRange(ctx context.Context, animalID string, r TimeRange) ([]DailyMetric, error) {
	if !r.Valid() {
		return nil, ErrInvalidRange
	}
	today := s.Today()
	from := Cutoff(r, today)

	ms, err := s.repo.ListByAnimal(ctx, animalID, ListFilter{From: &from})
	if err != nil {
		return nil, err
	}
	// El repo ya filtra; se vuelve a aplicar para no depender de cómo redondea cada backend.
	return FilterByRange(ms, r, today), nil
}

type RecordInput struct {
	AnimalID  string
	Date      time.Time
	WeightKg  *float64
	FoodGrams float64
	WaterMl   float64
}

// Record agrega el registro diario. No existe update: un segundo registro del mismo día es ErrDuplicate.
func (s *Service) Record(ctx context.Context, in RecordInput) (DailyMetric, error) {
	animalID := strings.TrimSpace(in.AnimalID)
	if animalID == "" || in.Date.IsZero() {
		return DailyMetric{}, ErrInvalidInput
	}
	if in.FoodGrams < 0 || in.WaterMl < 0 || isBad(in.FoodGrams) || isBad(in.WaterMl) {
		return DailyMetric{}, ErrInvalidInput
	}
	if in.WeightKg != nil && (*in.WeightKg <= 0 || isBad(*in.WeightKg)) {
		return DailyMetric{}, ErrInvalidInput
	}
	day := Day(in.Date)
	if day.After(s.Today()) {
		return DailyMetric{}, ErrInvalidInput
	}

	m := DailyMetric{
		AnimalID:  animalID,
		Date:      day,
		WeightKg:  in.WeightKg,
		FoodGrams: in.FoodGrams,
		WaterMl:   in.WaterMl,
	}.Clone()

	if err := s.repo.Create(ctx, m); err != nil {
		return DailyMetric{}, err
	}
	return m.Clone(), nil
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
