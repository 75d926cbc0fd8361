package metrics

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrDuplicate: ya existe un registro para (animal, día).
	ErrDuplicate = errors.New("daily metric already recorded")
)

type Repository interface {
	Create(ctx context.Context, m DailyMetric) error
	// ListByAnimal devuelve los registros ordenados por fecha ascendente.
	ListByAnimal(ctx context.Context, animalID string, filter ListFilter) ([]DailyMetric, error)
}

// ListFilter acota por día, ambos extremos inclusivos. nil = sin límite.
type ListFilter struct {
	From *time.Time
	To   *time.Time
}

// Match indica si el día d cae dentro del filtro.
func (f ListFilter) Match(d time.Time) bool {
	d = Day(d)
	if f.From != nil && d.Before(Day(*f.From)) {
		return false
	}
	if f.To != nil && d.After(Day(*f.To)) {
		return false
	}
	return true
}
