package metrics

import "time"

// Cutoff es el primer día incluido en la ventana r contada desde today.
func Cutoff(r TimeRange, today time.Time) time.Time {
	return Day(today).AddDate(0, 0, -r.Days())
}

// FilterByRange deja las entradas con Date >= Cutoff(r, today), en el orden de entrada.
func FilterByRange(ms []DailyMetric, r TimeRange, today time.Time) []DailyMetric {
	cutoff := Cutoff(r, today)

	out := make([]DailyMetric, 0, len(ms))
	for _, m := range ms {
		if Day(m.Date).Before(cutoff) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Latest devuelve el registro de hoy, o el último de la lista si hoy no hay datos.
func Latest(ms []DailyMetric, today time.Time) (DailyMetric, bool) {
	d := Day(today)
	for _, m := range ms {
		if Day(m.Date).Equal(d) {
			return m, true
		}
	}
	if len(ms) == 0 {
		return DailyMetric{}, false
	}
	return ms[len(ms)-1], true
}
