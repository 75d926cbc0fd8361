package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pet-health-dashboard/internal/adapters/storage/memory"
	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/metrics"
	"pet-health-dashboard/internal/domain/resources"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

// Store mantiene el estado en memoria y lo vuelca como JSON a una tabla SQLite.
// Cada escritura es un read-modify-write en una transacción: recarga el snapshot,
// aplica el cambio sobre esa copia y solo la adopta si el commit salió bien.
// Las lecturas recargan cuando otro proceso (p.ej. cmd/ingest) subió la versión.
type Store struct {
	mem     *memory.Stub
	version int64
	db      *sql.DB
	mu      sync.Mutex
	path    string
}

const (
	bucketAnimals   = "animals"
	bucketMetrics   = "metrics"
	bucketResources = "resources"
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open abre (o crea) el archivo. Si está vacío y seed != nil, lo inicializa con seed().
func Open(path string, seed func() memory.SeedData) (*Store, error) {
	if path == "" {
		path = "pet-health.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// un solo writer por proceso; entre procesos espera el lock en vez de SQLITE_BUSY
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		`PRAGMA busy_timeout = 5000`,
		`CREATE TABLE IF NOT EXISTS state (
			bucket TEXT PRIMARY KEY,
			payload BLOB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS state_version (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			version INTEGER NOT NULL
		)`,
		`INSERT OR IGNORE INTO state_version(id, version) VALUES(1, 0)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init sqlite state: %w", err)
		}
	}

	s := &Store{mem: memory.NewStub(), db: db, path: path, version: -1}
	if err := s.refresh(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	if seed != nil {
		err := s.write(context.Background(), func(st *memory.Stub, empty bool) (*memory.Stub, error) {
			if !empty {
				return st, nil
			}
			return memory.NewSeededStub(seed()), nil
		})
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Close() error { return s.db.Close() }

// Animals, Metrics y Resources devuelven los repos que persisten en cada escritura.
func (s *Store) Animals() animals.Repository     { return animalsRepo{s} }
func (s *Store) Metrics() metrics.Repository     { return metricsRepo{s} }
func (s *Store) Resources() resources.Repository { return resourcesRepo{s} }

// current devuelve el stub vigente, recargándolo si el archivo cambió.
func (s *Store) current(ctx context.Context) (*memory.Stub, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem, nil
}

func (s *Store) refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var v int64
	if err := s.db.QueryRowContext(ctx, `SELECT version FROM state_version WHERE id = 1`).Scan(&v); err != nil {
		return fmt.Errorf("select state version: %w", err)
	}
	if v == s.version {
		return nil
	}
	st, _, err := load(ctx, s.db)
	if err != nil {
		return err
	}
	s.mem, s.version = st, v
	return nil
}

// write recarga el estado dentro de la transacción, aplica apply sobre esa copia y la
// persiste. El stub en uso solo se reemplaza después del commit.
func (s *Store) write(ctx context.Context, apply func(st *memory.Stub, empty bool) (*memory.Stub, error)) (retErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	// escribir primero toma el lock de escritura antes de leer
	if _, err := tx.ExecContext(ctx, `UPDATE state_version SET version = version + 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("bump state version: %w", err)
	}
	var v int64
	if err := tx.QueryRowContext(ctx, `SELECT version FROM state_version WHERE id = 1`).Scan(&v); err != nil {
		return fmt.Errorf("select state version: %w", err)
	}

	st, found, err := load(ctx, tx)
	if err != nil {
		return err
	}
	next, err := apply(st, !found)
	if err != nil {
		return err
	}
	if err := persist(ctx, tx, next); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.mem, s.version = next, v
	return nil
}

func load(ctx context.Context, q querier) (*memory.Stub, bool, error) {
	rows, err := q.QueryContext(ctx, `SELECT bucket, payload FROM state`)
	if err != nil {
		return nil, false, fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var (
		snap  snapshot
		found bool
	)
	for rows.Next() {
		var (
			bucket  string
			payload []byte
		)
		if err := rows.Scan(&bucket, &payload); err != nil {
			return nil, false, fmt.Errorf("scan: %w", err)
		}
		found = true
		switch bucket {
		case bucketAnimals:
			if err := json.Unmarshal(payload, &snap.Animals); err != nil {
				return nil, false, fmt.Errorf("decode animals: %w", err)
			}
		case bucketMetrics:
			if err := json.Unmarshal(payload, &snap.Metrics); err != nil {
				return nil, false, fmt.Errorf("decode metrics: %w", err)
			}
		case bucketResources:
			var r resources.SharedResources
			if err := json.Unmarshal(payload, &r); err != nil {
				return nil, false, fmt.Errorf("decode resources: %w", err)
			}
			snap.Resources = &r
		}
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	st := memory.NewStub()
	st.Animals.Restore(snap.Animals)
	st.Metrics.Restore(snap.Metrics)
	if snap.Resources != nil {
		_ = st.Resources.Replace(ctx, *snap.Resources)
	}
	return st, found, nil
}

type snapshot struct {
	Animals   []animals.Animal
	Metrics   []metrics.DailyMetric
	Resources *resources.SharedResources
}

func persist(ctx context.Context, tx *sql.Tx, st *memory.Stub) error {
	buckets := map[string]any{
		bucketAnimals: st.Animals.Snapshot(),
		bucketMetrics: st.Metrics.Snapshot(),
	}
	if r, err := st.Resources.Get(ctx); err == nil {
		buckets[bucketResources] = r
	}

	for bucket, v := range buckets {
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", bucket, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO state(bucket, payload) VALUES(?, ?)
			ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`, bucket, payload); err != nil {
			return fmt.Errorf("persist %s: %w", bucket, err)
		}
	}
	return nil
}

// mutate adapta una escritura de repo en memoria a write.
func (s *Store) mutate(ctx context.Context, fn func(st *memory.Stub) error) error {
	return s.write(ctx, func(st *memory.Stub, _ bool) (*memory.Stub, error) {
		if err := fn(st); err != nil {
			return nil, err
		}
		return st, nil
	})
}

type animalsRepo struct{ s *Store }

func (r animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	return r.s.mutate(ctx, func(st *memory.Stub) error { return st.Animals.Create(ctx, a) })
}

func (r animalsRepo) Update(ctx context.Context, a animals.Animal) error {
	return r.s.mutate(ctx, func(st *memory.Stub) error { return st.Animals.Update(ctx, a) })
}

func (r animalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	st, err := r.s.current(ctx)
	if err != nil {
		return animals.Animal{}, err
	}
	return st.Animals.GetByID(ctx, id)
}

func (r animalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	st, err := r.s.current(ctx)
	if err != nil {
		return nil, err
	}
	return st.Animals.List(ctx)
}

type metricsRepo struct{ s *Store }

func (r metricsRepo) Create(ctx context.Context, m metrics.DailyMetric) error {
	return r.s.mutate(ctx, func(st *memory.Stub) error { return st.Metrics.Create(ctx, m) })
}

func (r metricsRepo) ListByAnimal(ctx context.Context, animalID string, filter metrics.ListFilter) ([]metrics.DailyMetric, error) {
	st, err := r.s.current(ctx)
	if err != nil {
		return nil, err
	}
	return st.Metrics.ListByAnimal(ctx, animalID, filter)
}

type resourcesRepo struct{ s *Store }

func (r resourcesRepo) Get(ctx context.Context) (resources.SharedResources, error) {
	st, err := r.s.current(ctx)
	if err != nil {
		return resources.SharedResources{}, err
	}
	return st.Resources.Get(ctx)
}

func (r resourcesRepo) Replace(ctx context.Context, snap resources.SharedResources) error {
	return r.s.mutate(ctx, func(st *memory.Stub) error { return st.Resources.Replace(ctx, snap) })
}
