package health

import (
	"fmt"
	"math"
	"time"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/metrics"

	"github.com/google/uuid"
)

// GeneratorConfig parametriza la regla de alertas.
type GeneratorConfig struct {
	// Días (contando hoy) promediados para comida/agua.
	IntakeWindowDays int
	// Días (contando hoy) considerados para la tendencia de peso.
	TrendWindowDays int
	// Cambio acumulado (kg) a partir del cual se alerta.
	TrendThresholdKg float64
	// Cambio acumulado (kg) a partir del cual la alerta es crítica.
	TrendCriticalKg float64
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		IntakeWindowDays: 3,
		TrendWindowDays:  21,
		TrendThresholdKg: 0.3,
		TrendCriticalKg:  0.6,
	}
}

func (c GeneratorConfig) withDefaults() GeneratorConfig {
	d := DefaultGeneratorConfig()
	if c.IntakeWindowDays <= 0 {
		c.IntakeWindowDays = d.IntakeWindowDays
	}
	if c.TrendWindowDays <= 1 {
		c.TrendWindowDays = d.TrendWindowDays
	}
	if c.TrendThresholdKg <= 0 {
		c.TrendThresholdKg = d.TrendThresholdKg
	}
	if c.TrendCriticalKg < c.TrendThresholdKg {
		c.TrendCriticalKg = math.Max(d.TrendCriticalKg, c.TrendThresholdKg)
	}
	return c
}

// Generator recorre el historial reciente y produce alertas nuevas en cada llamada.
type Generator struct {
	cfg   GeneratorConfig
	now   func() time.Time
	newID func() string
}

func NewGenerator(cfg GeneratorConfig) *Generator {
	return &Generator{
		cfg:   cfg.withDefaults(),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SetClock fija el reloj usado para CreatedAt.
func (g *Generator) SetClock(now func() time.Time) {
	if now != nil {
		g.now = now
	}
}

func (g *Generator) Config() GeneratorConfig {
	return g.cfg
}

// Generate evalúa cada animal, en el orden recibido.
// history trae los registros por animal en orden ascendente de fecha.
func (g *Generator) Generate(list []animals.Animal, history map[string][]metrics.DailyMetric, today time.Time) []Alert {
	today = metrics.Day(today)
	createdAt := g.now()

	out := make([]Alert, 0)
	for _, a := range list {
		ms := history[a.ID]
		for _, c := range g.evaluate(a, ms, today) {
			c.ID = g.newID()
			c.AnimalID = a.ID
			c.CreatedAt = createdAt
			out = append(out, c)
		}
	}
	return out
}

func (g *Generator) evaluate(a animals.Animal, ms []metrics.DailyMetric, today time.Time) []Alert {
	var out []Alert

	intake := since(ms, today.AddDate(0, 0, -(g.cfg.IntakeWindowDays - 1)))
	if len(intake) > 0 {
		var food, water float64
		for _, m := range intake {
			food += m.FoodGrams
			water += m.WaterMl
		}
		// se clasifica el promedio crudo; el redondeo a 0.1 es solo para Value/Message
		food = round(food/float64(len(intake)), 9)
		water = round(water/float64(len(intake)), 9)

		if st := FoodStatus(food); st != StatusNormal {
			th := FoodWarningBelowGrams
			if st == StatusCritical {
				th = FoodCriticalBelowGrams
			}
			out = append(out, Alert{
				Type:      AlertLowFood,
				Severity:  Severity(st),
				Message:   fmt.Sprintf("%s has been eating less than usual over the past %d days (%.0f g/day)", a.Name, g.cfg.IntakeWindowDays, food),
				Metric:    "Daily food consumption",
				Value:     round(food, 1),
				Threshold: th,
			})
		}
		if st := WaterStatus(water); st != StatusNormal {
			th := WaterWarningBelowMl
			if st == StatusCritical {
				th = WaterCriticalBelowMl
			}
			out = append(out, Alert{
				Type:      AlertLowWater,
				Severity:  Severity(st),
				Message:   fmt.Sprintf("%s water intake has decreased over the past %d days (%.0f ml/day)", a.Name, g.cfg.IntakeWindowDays, water),
				Metric:    "Daily water consumption",
				Value:     round(water, 1),
				Threshold: th,
			})
		}
	}

	if alert, ok := g.weightTrend(a, ms, today); ok {
		out = append(out, alert)
	}
	return out
}

func (g *Generator) weightTrend(a animals.Animal, ms []metrics.DailyMetric, today time.Time) (Alert, bool) {
	var (
		first, last float64
		n           int
	)
	for _, m := range since(ms, today.AddDate(0, 0, -(g.cfg.TrendWindowDays - 1))) {
		if m.WeightKg == nil {
			continue
		}
		if n == 0 {
			first = *m.WeightKg
		}
		last = *m.WeightKg
		n++
	}
	if n < 2 {
		return Alert{}, false
	}

	// 1e-9 absorbe el ruido de float (4.8-4.5 queda en 0.3 exacto)
	change := round(last-first, 9)
	mag := math.Abs(change)
	if mag <= g.cfg.TrendThresholdKg {
		return Alert{}, false
	}

	sev := SeverityWarning
	if mag > g.cfg.TrendCriticalKg {
		sev = SeverityCritical
	}
	verb, th := "gained", g.cfg.TrendThresholdKg
	if change < 0 {
		verb, th = "lost", -g.cfg.TrendThresholdKg
	}

	return Alert{
		Type:      AlertWeightChange,
		Severity:  sev,
		Message:   fmt.Sprintf("%s has %s %.2f kg over the past %s", a.Name, verb, mag, windowLabel(g.cfg.TrendWindowDays)),
		Metric:    "Weight trend",
		Value:     round(change, 2),
		Threshold: th,
	}, true
}

// since filtra por día >= from manteniendo el orden.
func since(ms []metrics.DailyMetric, from time.Time) []metrics.DailyMetric {
	f := metrics.ListFilter{From: &from}
	out := make([]metrics.DailyMetric, 0, len(ms))
	for _, m := range ms {
		if f.Match(m.Date) {
			out = append(out, m)
		}
	}
	return out
}

func windowLabel(days int) string {
	if days == 7 {
		return "week"
	}
	if days%7 == 0 {
		return fmt.Sprintf("%d weeks", days/7)
	}
	return fmt.Sprintf("%d days", days)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
