package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/oggyb/modelkit/internal/conninfo"
	"github.com/oggyb/modelkit/internal/dburl"
	"github.com/oggyb/modelkit/internal/deprecate"
)

type Config struct {
	App struct {
		Name string `env:"APP_NAME" envDefault:"modelkit"`
		Env  string `env:"APP_ENV" envDefault:"development"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	// ConnInfo points at a connection info file. When File is set it wins
	// over the DB section.
	ConnInfo struct {
		File string `env:"CONN_INFO_FILE"`
		Name string `env:"CONN_INFO_NAME" envDefault:"default"`
	}

	DB struct {
		Dialect  string `env:"DB_DIALECT" envDefault:"postgresql"`
		Driver   string `env:"DB_DRIVER"`
		Host     string `env:"DB_HOST" envDefault:"db"`
		Port     string `env:"DB_PORT" envDefault:"5432"`
		User     string `env:"DB_USER" envDefault:"root"`
		Password string `env:"DB_PASSWORD" envDefault:"123456"`
		Name     string `env:"DB_NAME" envDefault:"db_modelkit"`
		SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	}

	Seed struct {
		Count int `env:"SEED_COUNT" envDefault:"50"`
	}
}

// New loads .env (if present) and then the process environment.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DatabaseURL returns the URL of the configured database.
func (c *Config) DatabaseURL() (string, error) {
	if c.ConnInfo.File != "" {
		url, err := conninfo.ReadFile(c.ConnInfo.File, c.ConnInfo.Name)
		if err != nil {
			return "", fmt.Errorf("load connection %q: %w", c.ConnInfo.Name, err)
		}
		return url, nil
	}

	return dburl.Create(
		c.DB.Dialect,
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Name,
		dburl.WithPort(c.DB.Port),
		dburl.WithDriver(c.DB.Driver),
		dburl.WithAppName(c.App.Name),
	), nil
}

// PostgresDSN returns a keyword/value Postgres DSN.
//
// Deprecated: use DatabaseURL.
func (c *Config) PostgresDSN() string {
	return keywordDSN(c)
}

var keywordDSN = deprecate.Named("config.(*Config).PostgresDSN", postgresKeywordDSN)

func postgresKeywordDSN(c *Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}
