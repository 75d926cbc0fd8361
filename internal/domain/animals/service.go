package animals

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("animal already exists")
)

// maxIDAttempts acota los reintentos cuando el generador choca con un id existente
// (p.ej. una secuencia reiniciada sobre un store persistido).
const maxIDAttempts = 3

type Service struct {
	repo Repository
	ids  IDGenerator
	now  func() time.Time
}

func NewService(repo Repository, ids IDGenerator) *Service {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Service{
		repo: repo,
		ids:  ids,
		now:  time.Now,
	}
}

// SetClock reemplaza el reloj (tests y raíz de composición).
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

type CreateInput struct {
	Name           string
	PhotoURL       string
	BirthDate      *time.Time
	Breed          string
	TargetWeightKg *float64
}

// Patch distingue "no enviado" de "enviado como null" en campos opcionales.
type Patch[T any] struct {
	Present bool
	Value   *T
}

// Set construye un Patch presente con valor.
func Set[T any](v T) Patch[T] {
	return Patch[T]{Present: true, Value: &v}
}

// Clear construye un Patch presente que limpia el campo.
func Clear[T any]() Patch[T] {
	return Patch[T]{Present: true}
}

// UpdateInput es un merge superficial: nil / Present=false = no tocar.
type UpdateInput struct {
	Name           *string
	PhotoURL       *string
	Breed          *string
	BirthDate      Patch[time.Time]
	TargetWeightKg Patch[float64]
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Animal{}, ErrInvalidInput
	}
	if err := validateOptionals(in.BirthDate, in.TargetWeightKg, s.now()); err != nil {
		return Animal{}, err
	}

	now := s.now()
	a := Animal{
		Name:           name,
		PhotoURL:       strings.TrimSpace(in.PhotoURL),
		BirthDate:      in.BirthDate,
		Breed:          strings.TrimSpace(in.Breed),
		TargetWeightKg: in.TargetWeightKg,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	a = a.Clone()

	var err error
	for i := 0; i < maxIDAttempts; i++ {
		a.ID = s.ids.NewID()
		err = s.repo.Create(ctx, a)
		if !errors.Is(err, ErrAlreadyExists) {
			break
		}
	}
	if err != nil {
		return Animal{}, err
	}
	return a.Clone(), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

// Update aplica los campos presentes sobre el perfil actual.
// Si el id no existe devuelve ErrNotFound sin tocar el store.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	next := current.Clone()
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Animal{}, ErrInvalidInput
		}
		next.Name = name
	}
	if in.PhotoURL != nil {
		next.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}
	if in.Breed != nil {
		next.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.BirthDate.Present {
		next.BirthDate = in.BirthDate.Value
	}
	if in.TargetWeightKg.Present {
		next.TargetWeightKg = in.TargetWeightKg.Value
	}
	if err := validateOptionals(next.BirthDate, next.TargetWeightKg, s.now()); err != nil {
		return Animal{}, err
	}

	next = next.Clone()
	next.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, next); err != nil {
		return Animal{}, err
	}
	return next.Clone(), nil
}

func validateOptionals(bd *time.Time, target *float64, now time.Time) error {
	if bd != nil && bd.After(now) {
		return ErrInvalidInput
	}
	if target != nil && *target <= 0 {
		return ErrInvalidInput
	}
	return nil
}
