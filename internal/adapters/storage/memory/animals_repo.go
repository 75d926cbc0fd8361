package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-health-dashboard/internal/domain/animals"
)

// AnimalRepo guarda perfiles en memoria. Todo lo que entra y sale se copia.
type AnimalRepo struct {
	mu    sync.RWMutex
	byID  map[string]animals.Animal
	order []string // orden de alta, para listados estables
}

func NewAnimalRepo() *AnimalRepo {
	return &AnimalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *AnimalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return animals.ErrAlreadyExists
	}
	r.byID[a.ID] = a.Clone()
	r.order = append(r.order, a.ID)
	return nil
}

func (r *AnimalRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return animals.ErrNotFound
	}
	r.byID[a.ID] = a.Clone()
	return nil
}

func (r *AnimalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a.Clone(), nil
}

func (r *AnimalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	return r.Snapshot(), nil
}

// Snapshot exporta todos los perfiles en orden de alta.
func (r *AnimalRepo) Snapshot() []animals.Animal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

// Restore reemplaza el contenido completo (lo usa el store sqlite al abrir).
func (r *AnimalRepo) Restore(list []animals.Animal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]animals.Animal, len(list))
	r.order = r.order[:0]
	for _, a := range list {
		if _, dup := r.byID[a.ID]; dup {
			continue
		}
		r.byID[a.ID] = a.Clone()
		r.order = append(r.order, a.ID)
	}
}
