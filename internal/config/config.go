package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Store    StoreConfig
	Auth     AuthConfig
	Game     GameConfig
	Worker   WorkerConfig
	Log      LogConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"lottery"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}
type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"lottery:"`
}
type KafkaConfig struct {
	Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"lottery-events"`
}
type StoreConfig struct {
	// Backend is one of memory, postgres or redis
	Backend       string `env:"STORE_BACKEND" envDefault:"memory"`
	SnapshotPath  string `env:"STORE_MEMORY_SNAPSHOT"`
	RunMigrations bool   `env:"STORE_RUN_MIGRATIONS" envDefault:"true"`
}
type AuthConfig struct {
	Secret      string        `env:"AUTH_JWT_SECRET" envDefault:"change-me"`
	SessionTTL  time.Duration `env:"AUTH_SESSION_TTL" envDefault:"24h"`
	RememberTTL time.Duration `env:"AUTH_REMEMBER_TTL" envDefault:"720h"`
}
type GameConfig struct {
	MiniResolveDelay    time.Duration `env:"GAME_MINI_RESOLVE_DELAY" envDefault:"30s"`
	StaleMiniAge        time.Duration `env:"GAME_STALE_MINI_AGE" envDefault:"60s"`
	AutoBetMiniInterval time.Duration `env:"GAME_AUTOBET_MINI_INTERVAL" envDefault:"35s"`
	AutoBetInterval     time.Duration `env:"GAME_AUTOBET_INTERVAL" envDefault:"120s"`
	AutoBetResumeDelay  time.Duration `env:"GAME_AUTOBET_RESUME_DELAY" envDefault:"5s"`
}
type WorkerConfig struct {
	DrawsEnabled      bool          `env:"WORKER_DRAWS_ENABLED" envDefault:"true"`
	DrawCheckInterval time.Duration `env:"WORKER_DRAW_CHECK_INTERVAL" envDefault:"30s"`
}
type LogConfig struct {
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	switch cfg.Store.Backend {
	case StoreMemory, StorePostgres, StoreRedis:
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	return cfg, nil
}

// DefaultGame returns the game timings used when no environment is loaded.
func DefaultGame() GameConfig {
	return GameConfig{
		MiniResolveDelay:    30 * time.Second,
		StaleMiniAge:        60 * time.Second,
		AutoBetMiniInterval: 35 * time.Second,
		AutoBetInterval:     120 * time.Second,
		AutoBetResumeDelay:  5 * time.Second,
	}
}
