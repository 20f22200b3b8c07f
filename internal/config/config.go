package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	CORS     CORSConfig     `envPrefix:"CORS_"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host        string        `env:"HOST" envDefault:"localhost"`
	Port        string        `env:"PORT" envDefault:"5432"`
	User        string        `env:"USER" envDefault:"postgres"`
	Password    string        `env:"PASSWORD"`
	Name        string        `env:"NAME" envDefault:"postgres"`
	SSLMode     string        `env:"SSLMODE" envDefault:"disable"`
	MaxConns    int           `env:"MAX_CONNS" envDefault:"5"`
	MaxLifetime time.Duration `env:"MAX_LIFETIME" envDefault:"1h"`
	ConnTimeout time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envDefault:"*"`
	AllowedMethods   []string `env:"ALLOWED_METHODS" envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"ALLOWED_HEADERS" envDefault:"*"`
	AllowCredentials bool     `env:"ALLOW_CREDENTIALS" envDefault:"true"`
}

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load("../.env"); err != nil {
		if err := godotenv.Load(".env"); err != nil {
			slog.Debug("no .env file found, relying on process environment")
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate configuration")
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return errors.New("DB_PASSWORD is required")
	}
	if c.Database.MaxConns <= 0 {
		return errors.New("DB_MAX_CONNS must be positive")
	}
	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}
