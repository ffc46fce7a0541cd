package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string   `env:"PORT,      default=8080"`
	Env       string   `env:"ENV,       default=development"`
	JWTSecret string   `env:"JWT_SECRET"`
	LogLevel  string   `env:"LOG_LEVEL, default=info"`
	// TokenTTL is the bearer token validity window. The frontend renews by
	// logging in again; there is no refresh flow.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=168h"`
	// CORSOrigins is the comma-separated browser origin allow-list.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=counterapp"`
}

// RedisConfig is optional; an empty Addr disables Redis entirely.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
