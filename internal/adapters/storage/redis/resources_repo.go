package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"pet-health-dashboard/internal/domain/resources"
)

const DefaultKey = "pet-health:shared_resources"

type Options struct {
	Addr     string
	Password string
	DB       int
	// Key donde vive el snapshot. Vacío = DefaultKey.
	Key string
}

// ResourcesRepo guarda el snapshot de recursos compartidos como JSON en una clave.
// Se sobrescribe completo, sin TTL: es el estado actual, no un historial.
type ResourcesRepo struct {
	client *goredis.Client
	key    string
}

// Connect crea el cliente y verifica la conexión con un Ping.
func Connect(ctx context.Context, opts Options) (*ResourcesRepo, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewResourcesRepo(client, opts.Key), nil
}

func NewResourcesRepo(client *goredis.Client, key string) *ResourcesRepo {
	if key == "" {
		key = DefaultKey
	}
	return &ResourcesRepo{client: client, key: key}
}

func (r *ResourcesRepo) Get(ctx context.Context) (resources.SharedResources, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return resources.SharedResources{}, resources.ErrNotFound
	}
	if err != nil {
		return resources.SharedResources{}, fmt.Errorf("failed to get shared resources from Redis: %w", err)
	}
	return decode(data)
}

func (r *ResourcesRepo) Replace(ctx context.Context, s resources.SharedResources) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set shared resources in Redis: %w", err)
	}
	return nil
}

func (r *ResourcesRepo) Close() error {
	return r.client.Close()
}

func encode(s resources.SharedResources) ([]byte, error) {
	if s.FoodBowls == nil {
		s.FoodBowls = []resources.FoodBowl{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shared resources: %w", err)
	}
	return data, nil
}

func decode(data []byte) (resources.SharedResources, error) {
	var s resources.SharedResources
	if err := json.Unmarshal(data, &s); err != nil {
		return resources.SharedResources{}, fmt.Errorf("failed to unmarshal shared resources: %w", err)
	}
	if s.FoodBowls == nil {
		s.FoodBowls = []resources.FoodBowl{}
	}
	return s, nil
}
