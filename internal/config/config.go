package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// PostgresCfg holds connection details of primary storage
type PostgresCfg struct {
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-customers"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

// DSN builds pgx connection string
func (c PostgresCfg) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=%s pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SslMode, c.PoolMaxConn,
	)
}

// RedisCfg holds customer cache settings, cache is skipped when disabled
type RedisCfg struct {
	Enabled     bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr        string        `env:"REDIS_ADDR" envDefault:"redis-customers:6379"`
	Password    string        `env:"REDIS_PASSWORD" envDefault:""`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	CustomerTTL time.Duration `env:"REDIS_CUSTOMER_TTL" envDefault:"10m"`
}

// HTTPCfg holds http server settings
type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LogCfg holds logger settings
type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Config is application configuration
type Config struct {
	PostgresCfg PostgresCfg
	RedisCfg    RedisCfg
	HTTPCfg     HTTPCfg
	LogCfg      LogCfg
}

// Build parses configuration from environment, variables without defaults are required
func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return cfg, nil
}
