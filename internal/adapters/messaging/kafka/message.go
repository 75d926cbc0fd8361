package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-health-dashboard/internal/domain/metrics"
)

var ErrInvalidMessage = errors.New("invalid metric message")

// MetricMessage es el payload que publican comederos/fuentes/balanzas: un registro diario.
type MetricMessage struct {
	AnimalID string   `json:"animal_id"`
	Date     string   `json:"date"` // YYYY-MM-DD
	WeightKg *float64 `json:"weight_kg,omitempty"`
	FoodG    float64  `json:"food_g"`
	WaterMl  float64  `json:"water_ml"`
}

// Decode valida la forma del mensaje; las reglas de negocio quedan en metrics.Service.
func Decode(value []byte) (metrics.RecordInput, error) {
	var msg MetricMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		return metrics.RecordInput{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if strings.TrimSpace(msg.AnimalID) == "" {
		return metrics.RecordInput{}, fmt.Errorf("%w: animal_id required", ErrInvalidMessage)
	}
	day, err := metrics.ParseDay(strings.TrimSpace(msg.Date))
	if err != nil {
		return metrics.RecordInput{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidMessage)
	}

	return metrics.RecordInput{
		AnimalID:  strings.TrimSpace(msg.AnimalID),
		Date:      day,
		WeightKg:  msg.WeightKg,
		FoodGrams: msg.FoodG,
		WaterMl:   msg.WaterMl,
	}, nil
}
