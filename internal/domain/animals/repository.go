package animals

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("animal not found")
)

// Repository es el puerto de persistencia de perfiles.
// Las variantes (memory, postgres, sqlite) deben devolver ErrNotFound cuando el id no existe.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
}

// IDGenerator asigna ids nuevos a los perfiles creados.
type IDGenerator interface {
	NewID() string
}
