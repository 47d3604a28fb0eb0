// Package config loads the process-wide configuration once at startup.
// Values come from the environment, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Store drivers selected from the STORE_URL scheme.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

const (
	insecureAdminPassword = "admin123"
	insecureJWTSecret     = "your-secret-key"
)

// HTTPConfig holds listener settings.
type HTTPConfig struct {
	Addr         string        `env:"HTTP_ADDR" env-default:":8000"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// StoreConfig holds document store settings.
type StoreConfig struct {
	URL         string `env:"STORE_URL"`
	MongoURL    string `env:"MONGO_URL"`
	DatabaseURL string `env:"DATABASE_URL"`
	Name        string `env:"DB_NAME" env-default:"devservices"`
}

// AdminConfig holds the single administrator credential and token settings.
type AdminConfig struct {
	Password     string        `env:"ADMIN_PASSWORD" env-default:"admin123"`
	PasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	JWTSecret    string        `env:"JWT_SECRET" env-default:"your-secret-key"`
	TokenTTL     time.Duration `env:"ADMIN_TOKEN_TTL" env-default:"24h"`
	AuthRequired bool          `env:"ADMIN_AUTH_REQUIRED" env-default:"true"`
}

// Config is the full process configuration.
type Config struct {
	HTTP               HTTPConfig
	Store              StoreConfig
	Admin              AdminConfig
	CORSOrigins        []string `env:"CORS_ORIGINS" env-default:"*" env-separator:","`
	LogLevel           string   `env:"LOG_LEVEL" env-default:"INFO"`
	RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" env-default:"30"`
}

// Load reads the given .env files (missing files are ignored) and then the
// process environment. Variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	origins := c.CORSOrigins[:0]
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.CORSOrigins = origins
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.StoreDriver(); err != nil {
		return err
	}
	if c.Store.Name == "" {
		return errors.New("DB_NAME is required")
	}
	if c.Admin.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	if c.RateLimitPerMinute <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// StoreURL returns the effective store connection string.
// STORE_URL takes precedence over MONGO_URL, then DATABASE_URL.
func (c *Config) StoreURL() string {
	switch {
	case c.Store.URL != "":
		return c.Store.URL
	case c.Store.MongoURL != "":
		return c.Store.MongoURL
	case c.Store.DatabaseURL != "":
		return c.Store.DatabaseURL
	default:
		return "mongodb://localhost:27017"
	}
}

// StoreDriver derives the store driver from the connection string scheme.
func (c *Config) StoreDriver() (string, error) {
	u := c.StoreURL()
	switch {
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(u, "mongodb://"), strings.HasPrefix(u, "mongodb+srv://"):
		return DriverMongo, nil
	default:
		return "", fmt.Errorf("unsupported store url scheme: %q", redactURL(u))
	}
}

// AllowsAnyOrigin reports whether CORS is open to every origin.
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// InsecureDefaults lists the settings still at their well-known default values.
func (c *Config) InsecureDefaults() []string {
	var out []string
	if c.Admin.PasswordHash == "" && c.Admin.Password == insecureAdminPassword {
		out = append(out, "ADMIN_PASSWORD")
	}
	if c.Admin.JWTSecret == insecureJWTSecret {
		out = append(out, "JWT_SECRET")
	}
	return out
}

func redactURL(u string) string {
	if scheme, _, ok := strings.Cut(u, "://"); ok {
		return scheme + "://..."
	}
	if len(u) > 8 {
		return u[:8] + "..."
	}
	return u
}
