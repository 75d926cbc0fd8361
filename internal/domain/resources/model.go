package resources

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound: el backend todavía no tiene snapshot.
	ErrNotFound = errors.New("shared resources not found")
	// ErrReadOnly: el backend no acepta escrituras (p.ej. Home Assistant).
	ErrReadOnly = errors.New("shared resources backend is read-only")
)

// SharedResources es el snapshot de los consumibles compartidos por las mascotas.
// Se reemplaza completo; no guarda historial.
type SharedResources struct {
	FoodBowls     []FoodBowl    `json:"food_bowls"`
	WaterFountain WaterFountain `json:"water_fountain"`
	LitterTray    LitterTray    `json:"litter_tray"`
}

type FoodBowl struct {
	AnimalID      string  `json:"animal_id"`
	Level         float64 `json:"current_level"` // 0-100 %
	CapacityGrams float64 `json:"capacity_g"`
}

// RemainingGrams estima el alimento que queda en el plato.
func (b FoodBowl) RemainingGrams() float64 {
	return b.CapacityGrams * b.Level / 100
}

type WaterFountain struct {
	Level      float64 `json:"current_level"` // 0-100 %
	CapacityMl float64 `json:"capacity_ml"`
}

type LitterTray struct {
	WasteLevel  float64 `json:"waste_level"`  // 0-100 %, cuánto desecho acumulado
	HopperLevel float64 `json:"hopper_level"` // 0-100 %, arena limpia restante
}

func (s SharedResources) Clone() SharedResources {
	out := s
	out.FoodBowls = make([]FoodBowl, len(s.FoodBowls))
	copy(out.FoodBowls, s.FoodBowls)
	return out
}

func (s SharedResources) Validate() error {
	for _, b := range s.FoodBowls {
		if b.AnimalID == "" || !isLevel(b.Level) || b.CapacityGrams < 0 {
			return ErrInvalidInput
		}
	}
	if !isLevel(s.WaterFountain.Level) || s.WaterFountain.CapacityMl < 0 {
		return ErrInvalidInput
	}
	if !isLevel(s.LitterTray.WasteLevel) || !isLevel(s.LitterTray.HopperLevel) {
		return ErrInvalidInput
	}
	return nil
}

func isLevel(v float64) bool {
	return v >= 0 && v <= 100
}
