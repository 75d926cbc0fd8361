package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pet-health-dashboard/internal/platform/logger"
)

// Backends de almacenamiento de perfiles y métricas.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Backends del snapshot de recursos compartidos.
const (
	ResourcesStore         = "store" // el mismo backend que Storage
	ResourcesRedis         = "redis"
	ResourcesHomeAssistant = "homeassistant"
)

type Config struct {
	HTTP      HTTPConfig
	Log       logger.Options
	Storage   StorageConfig
	Resources ResourcesConfig
	Redis     RedisConfig
	HA        HomeAssistantConfig
	Kafka     KafkaConfig
	Alerts    AlertsConfig
}

type HTTPConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
}

type StorageConfig struct {
	Backend    string
	DSN        string
	SQLitePath string
	// Seed del generador de datos del stub (memory/sqlite vacío).
	StubSeed uint64
}

type ResourcesConfig struct {
	Backend string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

type HomeAssistantConfig struct {
	BaseURL            string
	Token              string
	Timeout            time.Duration
	FountainEntity     string
	FountainCapacityMl float64
	LitterWasteEntity  string
	LitterHopperEntity string
	// "animalID:entity:capacity_g,..."
	FoodBowls string
}

type KafkaConfig struct {
	Brokers      []string
	TopicMetrics string
	GroupID      string
}

type AlertsConfig struct {
	IntakeWindowDays int
	TrendWindowDays  int
	TrendThresholdKg float64
	TrendCriticalKg  float64
}

func Load() (*Config, error) {
	// .env es opcional
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:         ":" + getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			CORSOrigins:  getEnvAsList("CORS_ORIGINS", nil),
		},
		Log: logger.Options{
			Level:  logger.ParseLevel(getEnv("LOG_LEVEL", "info")),
			Format: logger.ParseFormat(getEnv("LOG_FORMAT", "text")),
			App:    getEnv("APP_NAME", "pet-health-dashboard"),
		},
		Storage: StorageConfig{
			Backend:    strings.ToLower(getEnv("STORAGE", "")),
			DSN:        getEnv("DB_DSN", ""),
			SQLitePath: getEnv("SQLITE_PATH", "data/pet-health.db"),
		},
		Resources: ResourcesConfig{
			Backend: strings.ToLower(getEnv("RESOURCES_BACKEND", ResourcesStore)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Key:      getEnv("REDIS_RESOURCES_KEY", ""),
		},
		HA: HomeAssistantConfig{
			BaseURL:            getEnv("HA_BASE_URL", ""),
			Token:              getEnv("HA_TOKEN", ""),
			Timeout:            getEnvAsDuration("HA_TIMEOUT", 5*time.Second),
			FountainEntity:     getEnv("HA_FOUNTAIN_ENTITY", ""),
			FountainCapacityMl: getEnvAsFloat("HA_FOUNTAIN_CAPACITY_ML", 2000),
			LitterWasteEntity:  getEnv("HA_LITTER_WASTE_ENTITY", ""),
			LitterHopperEntity: getEnv("HA_LITTER_HOPPER_ENTITY", ""),
			FoodBowls:          getEnv("HA_FOOD_BOWLS", ""),
		},
		Kafka: KafkaConfig{
			Brokers:      getEnvAsList("KAFKA_BROKERS", []string{"localhost:9092"}),
			TopicMetrics: getEnv("KAFKA_TOPIC_METRICS", "pet-health.metrics.daily"),
			GroupID:      getEnv("KAFKA_GROUP_ID", "pet-health-ingest"),
		},
		Alerts: AlertsConfig{
			IntakeWindowDays: getEnvAsInt("ALERT_INTAKE_WINDOW_DAYS", 3),
			TrendWindowDays:  getEnvAsInt("ALERT_TREND_WINDOW_DAYS", 21),
			TrendThresholdKg: getEnvAsFloat("ALERT_TREND_THRESHOLD_KG", 0.3),
			TrendCriticalKg:  getEnvAsFloat("ALERT_TREND_CRITICAL_KG", 0.6),
		},
	}

	seed, err := getEnvAsUint64("STUB_SEED", 42)
	if err != nil {
		return nil, err
	}
	cfg.Storage.StubSeed = seed

	// Si hay DSN y no se eligió backend, es Postgres.
	if cfg.Storage.Backend == "" {
		if cfg.Storage.DSN != "" {
			cfg.Storage.Backend = StoragePostgres
		} else {
			cfg.Storage.Backend = StorageMemory
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("STORAGE=postgres requires DB_DSN")
		}
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage.Backend)
	}

	switch c.Resources.Backend {
	case ResourcesStore, ResourcesRedis:
	case ResourcesHomeAssistant:
		if c.HA.BaseURL == "" || c.HA.Token == "" {
			return fmt.Errorf("RESOURCES_BACKEND=homeassistant requires HA_BASE_URL and HA_TOKEN")
		}
	default:
		return fmt.Errorf("unknown RESOURCES_BACKEND %q", c.Resources.Backend)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsUint64 falla ante valores negativos o no numéricos en vez de caer al default.
func getEnvAsUint64(key string, defaultValue uint64) (uint64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, raw)
	}
	return value, nil
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	out := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
