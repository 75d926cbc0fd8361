package router

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-health-dashboard/internal/adapters/homeassistant"
	mem "pet-health-dashboard/internal/adapters/storage/memory"
	pg "pet-health-dashboard/internal/adapters/storage/postgres"
	rds "pet-health-dashboard/internal/adapters/storage/redis"
	"pet-health-dashboard/internal/adapters/storage/sqlite"
	"pet-health-dashboard/internal/config"
	"pet-health-dashboard/internal/dashboard"
	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/health"
	"pet-health-dashboard/internal/platform/logger"
)

// Closer libera las conexiones abiertas por OpenBackend.
type Closer func() error

// StubBackend arma el backend de desarrollo: stub en memoria con 90 días de historial
// terminando en today, ids "cat-N".
func StubBackend(today time.Time, seed uint64) dashboard.Backend {
	stub := mem.NewSeededStub(mem.Seed(today, seed))
	return dashboard.Backend{
		Animals:   stub.Animals,
		Metrics:   stub.Metrics,
		Resources: stub.Resources,
		IDs:       stub.IDs,
	}
}

// OpenBackend elige la variante de store según cfg. El llamador debe invocar el Closer.
func OpenBackend(ctx context.Context, cfg *config.Config, log logger.Logger) (dashboard.Backend, Closer, error) {
	if log == nil {
		log = logger.Nop()
	}

	var (
		b       dashboard.Backend
		closers []func() error
	)
	closeAll := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	switch cfg.Storage.Backend {
	case config.StorageMemory:
		b = StubBackend(time.Now(), cfg.Storage.StubSeed)
		log.Info("storage: in-memory stub", map[string]any{"seed": cfg.Storage.StubSeed})

	case config.StorageSQLite:
		store, err := sqlite.Open(cfg.Storage.SQLitePath, func() mem.SeedData {
			return mem.Seed(time.Now(), cfg.Storage.StubSeed)
		})
		if err != nil {
			return dashboard.Backend{}, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		closers = append(closers, store.Close)
		b = dashboard.Backend{
			Animals:   store.Animals(),
			Metrics:   store.Metrics(),
			Resources: store.Resources(),
			IDs:       animals.UUIDGenerator{},
		}
		log.Info("storage: sqlite", map[string]any{"path": store.Path()})

	case config.StoragePostgres:
		db, err := pg.Open(cfg.Storage.DSN)
		if err != nil {
			return dashboard.Backend{}, nil, fmt.Errorf("open postgres: %w", err)
		}
		closers = append(closers, db.Close)
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = closeAll()
			return dashboard.Backend{}, nil, err
		}
		b = dashboard.Backend{
			Animals:   pg.NewAnimalsRepo(db),
			Metrics:   pg.NewMetricsRepo(db),
			Resources: pg.NewResourcesRepo(db),
			IDs:       animals.UUIDGenerator{},
		}
		log.Info("storage: postgres", nil)

	default:
		return dashboard.Backend{}, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	switch cfg.Resources.Backend {
	case config.ResourcesStore, "":
		// queda el repo del store elegido arriba

	case config.ResourcesRedis:
		repo, err := rds.Connect(ctx, rds.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
		})
		if err != nil {
			_ = closeAll()
			return dashboard.Backend{}, nil, err
		}
		closers = append(closers, repo.Close)
		b.Resources = repo
		log.Info("shared resources: redis", map[string]any{"addr": cfg.Redis.Addr})

	case config.ResourcesHomeAssistant:
		client, err := homeassistant.NewClient(cfg.HA.BaseURL, cfg.HA.Token, cfg.HA.Timeout, nil)
		if err != nil {
			_ = closeAll()
			return dashboard.Backend{}, nil, fmt.Errorf("home assistant client: %w", err)
		}
		bowls, err := homeassistant.ParseBowls(cfg.HA.FoodBowls)
		if err != nil {
			_ = closeAll()
			return dashboard.Backend{}, nil, err
		}
		b.Resources = homeassistant.NewResourcesRepo(client, homeassistant.Entities{
			Bowls:              bowls,
			FountainEntity:     cfg.HA.FountainEntity,
			FountainCapacityMl: cfg.HA.FountainCapacityMl,
			LitterWasteEntity:  cfg.HA.LitterWasteEntity,
			LitterHopperEntity: cfg.HA.LitterHopperEntity,
		})
		log.Info("shared resources: home assistant", map[string]any{"base_url": cfg.HA.BaseURL, "bowls": len(bowls)})

	default:
		_ = closeAll()
		return dashboard.Backend{}, nil, fmt.Errorf("unknown resources backend %q", cfg.Resources.Backend)
	}

	return b, closeAll, nil
}

// GeneratorConfig traduce la config de entorno a la del generador de alertas.
func GeneratorConfig(cfg *config.Config) health.GeneratorConfig {
	return health.GeneratorConfig{
		IntakeWindowDays: cfg.Alerts.IntakeWindowDays,
		TrendWindowDays:  cfg.Alerts.TrendWindowDays,
		TrendThresholdKg: cfg.Alerts.TrendThresholdKg,
		TrendCriticalKg:  cfg.Alerts.TrendCriticalKg,
	}
}
