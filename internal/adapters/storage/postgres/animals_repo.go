package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-health-dashboard/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, name, photo_url,
	birth_date, breed, target_weight_kg,
	created_at, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		a.ID,
		a.Name,
		a.PhotoURL,
		toNullDate(a.BirthDate),
		a.Breed,
		toNullFloat(a.TargetWeightKg),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return animals.ErrAlreadyExists
	}
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			photo_url = $3,
			birth_date = $4,
			breed = $5,
			target_weight_kg = $6,
			updated_at = $7
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.PhotoURL,
		toNullDate(a.BirthDate),
		a.Breed,
		toNullFloat(a.TargetWeightKg),
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT`+animalColumns+` FROM animals WHERE id = $1`, id)
	a, err := scanAnimal(row)
	if err == sql.ErrNoRows {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, err
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT`+animalColumns+` FROM animals ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a  animals.Animal
		bd sql.NullTime
		tw sql.NullFloat64
	)
	if err := s.Scan(
		&a.ID,
		&a.Name,
		&a.PhotoURL,
		&bd,
		&a.Breed,
		&tw,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	if bd.Valid {
		// ojo: birth_date es DATE, pgx lo mapea a medianoche UTC
		t := bd.Time.UTC()
		a.BirthDate = &t
	}
	if tw.Valid {
		v := tw.Float64
		a.TargetWeightKg = &v
	}
	return a, nil
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
