package metrics

import (
	"errors"
	"strings"
)

// TimeRange es la ventana de consulta de gráficos/reportes.
type TimeRange string

const (
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	Range90d TimeRange = "90d"
	Range1y  TimeRange = "1y"
)

var ErrInvalidRange = errors.New("invalid time range")

// TimeRanges devuelve las opciones del selector, en orden.
func TimeRanges() []TimeRange {
	return []TimeRange{Range7d, Range30d, Range90d, Range1y}
}

func ParseTimeRange(s string) (TimeRange, error) {
	r := TimeRange(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRange
	}
	return r, nil
}

func (r TimeRange) Valid() bool {
	switch r {
	case Range7d, Range30d, Range90d, Range1y:
		return true
	}
	return false
}

// Days devuelve el largo de la ventana. Un valor fuera del conjunto cae en 1y.
func (r TimeRange) Days() int {
	switch r {
	case Range7d:
		return 7
	case Range30d:
		return 30
	case Range90d:
		return 90
	default:
		return 365
	}
}

func (r TimeRange) Label() string {
	switch r {
	case Range7d:
		return "7 Days"
	case Range30d:
		return "30 Days"
	case Range90d:
		return "90 Days"
	default:
		return "1 Year"
	}
}
