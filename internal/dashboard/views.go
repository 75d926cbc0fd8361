package dashboard

import (
	"context"
	"time"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/health"
	"pet-health-dashboard/internal/domain/metrics"
)

// animalAlerter lo implementa Service; evita evaluar a todos los animales en la ficha.
type animalAlerter interface {
	AnimalAlerts(ctx context.Context, id string) ([]health.Alert, error)
}

// Views arma las vistas compuestas del dashboard usando solo DataService.
type Views struct {
	data DataService
	now  func() time.Time
}

func NewViews(data DataService, now func() time.Time) *Views {
	if now == nil {
		now = time.Now
	}
	return &Views{data: data, now: now}
}

// Card es la tarjeta de una mascota en la vista general.
type Card struct {
	Animal     animals.Animal
	Metric     *metrics.DailyMetric // nil si no hubo registros en la última semana
	Assessment health.Assessment
}

// Overview devuelve una tarjeta por animal con el registro de hoy (o el último de 7d).
func (v *Views) Overview(ctx context.Context) ([]Card, error) {
	list, err := v.data.ListAnimals(ctx)
	if err != nil {
		return nil, err
	}
	today := metrics.Day(v.now())

	out := make([]Card, 0, len(list))
	for _, a := range list {
		ms, err := v.data.GetMetrics(ctx, a.ID, metrics.Range7d)
		if err != nil {
			return nil, err
		}
		c := Card{Animal: a}
		if m, ok := metrics.Latest(ms, today); ok {
			c.Metric = &m
		}
		c.Assessment = health.Assess(a, c.Metric)
		out = append(out, c)
	}
	return out, nil
}

// Profile es la ficha de una mascota.
type Profile struct {
	Animal     animals.Animal
	AgeYears   *int
	Latest     *metrics.DailyMetric
	Assessment health.Assessment
	Alerts     []health.Alert
}

// Profile usa la ventana de 90 días. found=false si el animal no existe.
func (v *Views) Profile(ctx context.Context, id string) (Profile, bool, error) {
	a, found, err := v.data.GetAnimal(ctx, id)
	if err != nil || !found {
		return Profile{}, found, err
	}
	now := v.now()

	ms, err := v.data.GetMetrics(ctx, a.ID, metrics.Range90d)
	if err != nil {
		return Profile{}, false, err
	}
	alerts, err := v.alertsFor(ctx, a.ID)
	if err != nil {
		return Profile{}, false, err
	}

	p := Profile{Animal: a, Alerts: make([]health.Alert, 0)}
	if age, ok := a.AgeAt(now); ok {
		p.AgeYears = &age
	}
	if m, ok := metrics.Latest(ms, now); ok {
		p.Latest = &m
	}
	p.Assessment = health.Assess(a, p.Latest)
	for _, al := range alerts {
		if al.AnimalID == a.ID {
			p.Alerts = append(p.Alerts, al)
		}
	}
	return p, true, nil
}

func (v *Views) alertsFor(ctx context.Context, id string) ([]health.Alert, error) {
	if aa, ok := v.data.(animalAlerter); ok {
		return aa.AnimalAlerts(ctx, id)
	}
	return v.data.ListAlerts(ctx)
}

// Charts son las tres series de tendencia de una mascota para una ventana.
type Charts struct {
	AnimalID       string
	Range          metrics.TimeRange
	Weight         []metrics.ChartPoint
	Food           []metrics.ChartPoint
	Water          []metrics.ChartPoint
	TargetWeightKg *float64
	WeightDomain   *metrics.Domain // nil sin datos de peso ni objetivo
}

func (v *Views) Charts(ctx context.Context, id string, r metrics.TimeRange) (Charts, bool, error) {
	a, found, err := v.data.GetAnimal(ctx, id)
	if err != nil || !found {
		return Charts{}, found, err
	}
	ms, err := v.data.GetMetrics(ctx, a.ID, r)
	if err != nil {
		return Charts{}, false, err
	}

	c := Charts{
		AnimalID:       a.ID,
		Range:          r,
		Weight:         metrics.ChartSeries(ms, metrics.FieldWeight),
		Food:           metrics.ChartSeries(ms, metrics.FieldFood),
		Water:          metrics.ChartSeries(ms, metrics.FieldWater),
		TargetWeightKg: a.TargetWeightKg,
	}
	if d, ok := metrics.WeightDomain(c.Weight, a.TargetWeightKg); ok {
		c.WeightDomain = &d
	}
	return c, true, nil
}
