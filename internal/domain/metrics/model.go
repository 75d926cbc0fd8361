package metrics

import "time"

// DateLayout es el formato de día usado en la API y en los mensajes de ingesta.
const DateLayout = "2006-01-02"

// DailyMetric es el registro diario de una mascota. Clave: (AnimalID, Date).
type DailyMetric struct {
	AnimalID string
	Date     time.Time // medianoche UTC

	WeightKg  *float64
	FoodGrams float64
	WaterMl   float64
}

// Day normaliza un instante a su día calendario (medianoche UTC).
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay acepta "YYYY-MM-DD".
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func (m DailyMetric) Clone() DailyMetric {
	out := m
	if m.WeightKg != nil {
		w := *m.WeightKg
		out.WeightKg = &w
	}
	return out
}

func CloneAll(in []DailyMetric) []DailyMetric {
	out := make([]DailyMetric, 0, len(in))
	for _, m := range in {
		out = append(out, m.Clone())
	}
	return out
}
