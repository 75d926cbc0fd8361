package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-health-dashboard/internal/domain/metrics"
)

type MetricsRepo struct {
	db *sql.DB
}

func NewMetricsRepo(db *sql.DB) *MetricsRepo {
	return &MetricsRepo{db: db}
}

func (r *MetricsRepo) Create(ctx context.Context, m metrics.DailyMetric) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_metrics (animal_id, day, weight_kg, food_g, water_ml)
		VALUES ($1,$2,$3,$4,$5)
	`,
		m.AnimalID,
		metrics.Day(m.Date),
		toNullFloat(m.WeightKg),
		m.FoodGrams,
		m.WaterMl,
	)
	if isUniqueViolation(err) {
		return metrics.ErrDuplicate
	}
	return err
}

func (r *MetricsRepo) ListByAnimal(ctx context.Context, animalID string, filter metrics.ListFilter) ([]metrics.DailyMetric, error) {
	var (
		where = []string{"animal_id = $1"}
		args  = []any{animalID}
	)
	if filter.From != nil {
		args = append(args, metrics.Day(*filter.From))
		where = append(where, fmt.Sprintf("day >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, metrics.Day(*filter.To))
		where = append(where, fmt.Sprintf("day <= $%d", len(args)))
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT animal_id, day, weight_kg, food_g, water_ml
		FROM daily_metrics
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY day ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]metrics.DailyMetric, 0)
	for rows.Next() {
		var (
			m metrics.DailyMetric
			w sql.NullFloat64
		)
		if err := rows.Scan(&m.AnimalID, &m.Date, &w, &m.FoodGrams, &m.WaterMl); err != nil {
			return nil, err
		}
		m.Date = metrics.Day(m.Date)
		if w.Valid {
			v := w.Float64
			m.WeightKg = &v
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
