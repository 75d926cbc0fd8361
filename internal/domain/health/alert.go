package health

import "time"

type AlertType string

const (
	AlertWeightChange AlertType = "weight_change"
	AlertLowFood      AlertType = "low_food"
	AlertLowWater     AlertType = "low_water"
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert es una notificación derivada; no se edita ni se descarta.
type Alert struct {
	ID        string
	AnimalID  string
	Type      AlertType
	Severity  Severity
	Message   string
	Metric    string
	Value     float64
	Threshold float64
	CreatedAt time.Time
}
