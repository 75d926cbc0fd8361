package metrics

import "math"

// Field elige qué serie del registro diario se grafica.
type Field string

const (
	FieldWeight Field = "weight"
	FieldFood   Field = "food"
	FieldWater  Field = "water"
)

// ChartPoint es lo que consume el componente de gráficos.
type ChartPoint struct {
	Date        string   `json:"date"`
	DisplayDate string   `json:"display_date"` // "Jan 15"
	Value       *float64 `json:"value"`
}

// ChartSeries convierte registros en puntos. En peso, un día sin medición va como nil.
func ChartSeries(ms []DailyMetric, f Field) []ChartPoint {
	out := make([]ChartPoint, 0, len(ms))
	for _, m := range ms {
		p := ChartPoint{
			Date:        m.Date.Format(DateLayout),
			DisplayDate: m.Date.Format("Jan 2"),
		}
		switch f {
		case FieldWeight:
			if m.WeightKg != nil {
				v := *m.WeightKg
				p.Value = &v
			}
		case FieldFood:
			v := m.FoodGrams
			p.Value = &v
		case FieldWater:
			v := m.WaterMl
			p.Value = &v
		}
		out = append(out, p)
	}
	return out
}

// Domain es el rango del eje Y.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// WeightDomain calcula el eje Y del gráfico de peso incluyendo el objetivo.
// Padding: 10% del rango, o 0.5 si el rango es cero. ok=false si no hay valores.
func WeightDomain(points []ChartPoint, target *float64) (Domain, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if p.Value == nil {
			continue
		}
		lo = math.Min(lo, *p.Value)
		hi = math.Max(hi, *p.Value)
	}
	if target != nil {
		lo = math.Min(lo, *target)
		hi = math.Max(hi, *target)
	}
	if math.IsInf(lo, 1) {
		return Domain{}, false
	}

	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 0.5
	}
	return Domain{Min: lo - pad, Max: hi + pad}, true
}
