package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"pet-health-dashboard/internal/domain/resources"
)

// ResourcesRepo guarda el snapshot como una fila única JSONB.
type ResourcesRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewResourcesRepo(db *sql.DB) *ResourcesRepo {
	return &ResourcesRepo{db: db, now: time.Now}
}

func (r *ResourcesRepo) Get(ctx context.Context) (resources.SharedResources, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM shared_resources WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return resources.SharedResources{}, resources.ErrNotFound
	}
	if err != nil {
		return resources.SharedResources{}, err
	}

	var out resources.SharedResources
	if err := json.Unmarshal(payload, &out); err != nil {
		return resources.SharedResources{}, fmt.Errorf("decode shared resources: %w", err)
	}
	return out, nil
}

func (r *ResourcesRepo) Replace(ctx context.Context, s resources.SharedResources) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode shared resources: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO shared_resources (id, payload, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`, payload, r.now())
	return err
}
