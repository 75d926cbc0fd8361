package animals

import (
	"math"
	"time"
)

// Animal es el perfil de una mascota seguida por el dashboard.
type Animal struct {
	ID string

	Name     string
	PhotoURL string

	BirthDate *time.Time
	Breed     string // vacío = sin dato

	// Peso objetivo saludable en kg.
	TargetWeightKg *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone devuelve una copia sin punteros compartidos.
func (a Animal) Clone() Animal {
	out := a
	if a.BirthDate != nil {
		bd := *a.BirthDate
		out.BirthDate = &bd
	}
	if a.TargetWeightKg != nil {
		tw := *a.TargetWeightKg
		out.TargetWeightKg = &tw
	}
	return out
}

const yearLength = 365.25 * 24 * time.Hour

// AgeAt devuelve la edad en años cumplidos a la fecha ref.
// ok=false si no hay fecha de nacimiento.
func (a Animal) AgeAt(ref time.Time) (int, bool) {
	if a.BirthDate == nil {
		return 0, false
	}
	d := ref.Sub(*a.BirthDate)
	if d < 0 {
		return 0, true
	}
	return int(math.Floor(float64(d) / float64(yearLength))), true
}

// CloneAll copia una lista completa (ver Clone).
func CloneAll(in []Animal) []Animal {
	out := make([]Animal, 0, len(in))
	for _, a := range in {
		out = append(out, a.Clone())
	}
	return out
}
