package memory

import (
	"math"
	"math/rand/v2"
	"time"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/metrics"
	"pet-health-dashboard/internal/domain/resources"
)

// SeedDays es la ventana de historial que trae el stub.
const SeedDays = 90

// SeedData es el contenido inicial del stub.
type SeedData struct {
	Animals   []animals.Animal
	Metrics   []metrics.DailyMetric
	Resources resources.SharedResources
	// NextID es el próximo número de la secuencia "cat-N".
	NextID int
}

// Seed arma tres gatos con 90 días de historial terminando en today.
// Con el mismo seed el resultado es reproducible.
func Seed(today time.Time, seed uint64) SeedData {
	today = metrics.Day(today)
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	vary := func(base, variance float64) float64 {
		return base + (rnd.Float64()-0.5)*2*variance
	}

	list := []animals.Animal{
		newCat("cat-1", "Whiskers", "/cats/whiskers.jpg", "Tabby", date(2020, 3, 15), 4.5, today),
		newCat("cat-2", "Luna", "/cats/luna.jpg", "Siamese", date(2019, 8, 22), 4.0, today),
		newCat("cat-3", "Oliver", "/cats/oliver.jpg", "Maine Coon", date(2021, 1, 10), 6.5, today),
	}

	days := make([]time.Time, SeedDays)
	for i := range days {
		days[i] = today.AddDate(0, 0, -(SeedDays - 1 - i))
	}

	ms := make([]metrics.DailyMetric, 0, len(days)*len(list))

	// Whiskers: sube de peso despacio, con una caída puntual y días de poco apetito.
	whiskers := 4.3
	for i, d := range days {
		whiskers += 0.005
		w := vary(whiskers, 0.05)
		if i >= 55 && i <= 60 {
			w = vary(4.0, 0.05)
		}
		food, water := vary(55, 8), vary(180, 20)
		if i >= 70 && i <= 75 {
			food, water = vary(25, 5), vary(90, 15)
		}
		ms = append(ms, record("cat-1", d, w, food, water))
	}

	// Luna: estable.
	for _, d := range days {
		ms = append(ms, record("cat-2", d, vary(4.0, 0.08), vary(50, 6), vary(160, 18)))
	}

	// Oliver: pierde peso de forma sostenida los últimos 20 días.
	for i, d := range days {
		w := vary(6.4, 0.15)
		if i >= 70 {
			w = 6.4 - float64(i-70)*0.03
		}
		ms = append(ms, record("cat-3", d, w, vary(75, 10), vary(220, 25)))
	}

	return SeedData{
		Animals: list,
		Metrics: ms,
		Resources: resources.SharedResources{
			FoodBowls: []resources.FoodBowl{
				{AnimalID: "cat-1", Level: 65, CapacityGrams: 200},
				{AnimalID: "cat-2", Level: 45, CapacityGrams: 200},
				{AnimalID: "cat-3", Level: 30, CapacityGrams: 300},
			},
			WaterFountain: resources.WaterFountain{Level: 72, CapacityMl: 2000},
			LitterTray:    resources.LitterTray{WasteLevel: 78, HopperLevel: 35},
		},
		NextID: len(list) + 1,
	}
}

func newCat(id, name, photo, breed string, birth time.Time, target float64, now time.Time) animals.Animal {
	return animals.Animal{
		ID:             id,
		Name:           name,
		PhotoURL:       photo,
		BirthDate:      &birth,
		Breed:          breed,
		TargetWeightKg: &target,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func record(animalID string, d time.Time, weight, food, water float64) metrics.DailyMetric {
	w := math.Round(weight*100) / 100
	return metrics.DailyMetric{
		AnimalID:  animalID,
		Date:      d,
		WeightKg:  &w,
		FoodGrams: math.Max(0, math.Round(food)),
		WaterMl:   math.Max(0, math.Round(water)),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
