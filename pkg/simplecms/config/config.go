// Package config assembles a simplecms.Service from environment-driven
// configuration: repository selection (memory or Postgres) and event
// sink wiring.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simplecms/simple-cms/pkg/simplecms"
	"github.com/simplecms/simple-cms/pkg/simplecms/repo/memory"
	"github.com/simplecms/simple-cms/pkg/simplecms/repo/postgres"
)

// Config represents configuration for the simple-cms service.
type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// DatabaseURL selects the repository backend: empty or "memory"
	// for the in-memory repository, a postgres:// URL for Postgres.
	DatabaseURL string `env:"DATABASE_URL" env-default:""`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "production", "testing":
	default:
		return fmt.Errorf("invalid environment: %q", c.Environment)
	}
	if !c.usesMemory() && !strings.HasPrefix(c.DatabaseURL, "postgres://") && !strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return fmt.Errorf("unsupported database url: %q", c.DatabaseURL)
	}
	return nil
}

func (c *Config) usesMemory() bool {
	return c.DatabaseURL == "" || c.DatabaseURL == "memory"
}

// BuildRepository constructs the repository the configuration selects.
// The returned cleanup function closes the connection pool, if any.
func (c *Config) BuildRepository(ctx context.Context) (simplecms.Repository, func(), error) {
	if c.usesMemory() {
		return memory.New(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, c.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return postgres.NewWithPool(pool), pool.Close, nil
}

// BuildService constructs a ready-to-use Service from the
// configuration, applying any extra options on top.
func (c *Config) BuildService(ctx context.Context, opts ...simplecms.Option) (simplecms.Service, func(), error) {
	repo, cleanup, err := c.BuildRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	options := append([]simplecms.Option{simplecms.WithRepository(repo)}, opts...)
	svc, err := simplecms.New(options...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return svc, cleanup, nil
}
