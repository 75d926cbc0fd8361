package health

import (
	"math"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/metrics"
)

// Status es la clasificación de una métrica.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Umbrales fijos de política.
const (
	WeightWarningDeviation  = 0.08
	WeightCriticalDeviation = 0.15

	FoodWarningBelowGrams  = 40.0
	FoodCriticalBelowGrams = 30.0

	WaterWarningBelowMl  = 130.0
	WaterCriticalBelowMl = 100.0
)

// WeightStatus compara el peso observado con el objetivo.
// Sin peso o sin objetivo (nil o <= 0) => normal.
func WeightStatus(observed, target *float64) Status {
	if observed == nil || target == nil || *observed <= 0 || *target <= 0 {
		return StatusNormal
	}
	dev := math.Abs(*observed-*target) / *target
	// redondeo para que 4.32 vs 4.0 dé exactamente 0.08
	dev = math.Round(dev*1e9) / 1e9

	switch {
	case dev > WeightCriticalDeviation:
		return StatusCritical
	case dev > WeightWarningDeviation:
		return StatusWarning
	default:
		return StatusNormal
	}
}

func FoodStatus(grams float64) Status {
	switch {
	case grams < FoodCriticalBelowGrams:
		return StatusCritical
	case grams < FoodWarningBelowGrams:
		return StatusWarning
	default:
		return StatusNormal
	}
}

func WaterStatus(ml float64) Status {
	switch {
	case ml < WaterCriticalBelowMl:
		return StatusCritical
	case ml < WaterWarningBelowMl:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// Assessment es el estado de la tarjeta de una mascota.
type Assessment struct {
	Weight     Status `json:"weight"`
	Food       Status `json:"food"`
	Water      Status `json:"water"`
	HasWarning bool   `json:"has_warning"`
}

// Assess clasifica el registro del día. Sin registro, comida y agua cuentan como 0.
func Assess(a animals.Animal, m *metrics.DailyMetric) Assessment {
	var (
		weight *float64
		food   float64
		water  float64
	)
	if m != nil {
		weight = m.WeightKg
		food = m.FoodGrams
		water = m.WaterMl
	}

	out := Assessment{
		Weight: WeightStatus(weight, a.TargetWeightKg),
		Food:   FoodStatus(food),
		Water:  WaterStatus(water),
	}
	out.HasWarning = out.Weight != StatusNormal || out.Food != StatusNormal || out.Water != StatusNormal
	return out
}
