// Package config loads the application configuration from environment
// variables into a typed structure.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the top-level configuration container for the account service.
// All values come from environment variables; there are no hard-coded
// secrets or fallbacks for the signing keys.
type Config struct {
	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the cache connection settings. Redis is optional; when
	// unreachable the service runs without caching.
	Redis Redis `envPrefix:"REDIS_"`

	// Token holds the signing key material and the token lifetime.
	Token Token `envPrefix:"TOKEN_"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// Addr is the address the HTTP server listens on.
	Addr string `env:"ADDR" envDefault:":8080"`
}

// DB holds the PostgreSQL connection settings.
type DB struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
}

// DSN builds the PostgreSQL connection string for gorm.
func (d DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Redis holds the Redis connection settings.
type Redis struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
}

// Addr returns the host:port address of the Redis server.
func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

// Token holds the signing key material used for issuing and verifying
// tokens. Keys is a key-id to secret map so that the signing key can be
// rotated: tokens carry the key id they were signed with and remain
// verifiable until expiry as long as their key stays in the map.
type Token struct {
	// Keys maps a key id to its secret, e.g. TOKEN_KEYS="v1:s3cret,v2:n3w".
	Keys map[string]string `env:"KEYS" envSeparator:"," envKeyValSeparator:":"`

	// ActiveKID selects the key used for signing new tokens.
	ActiveKID string `env:"ACTIVE_KID"`

	// TTL is the token validity window from issuance.
	TTL time.Duration `env:"TTL" envDefault:"1h"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the invariants the rest of the application relies on.
func (c *Config) validate() error {
	if len(c.Token.Keys) == 0 {
		return errors.New("TOKEN_KEYS must contain at least one kid:secret pair")
	}
	if c.Token.ActiveKID == "" {
		return errors.New("TOKEN_ACTIVE_KID is required")
	}
	if _, ok := c.Token.Keys[c.Token.ActiveKID]; !ok {
		return fmt.Errorf("TOKEN_ACTIVE_KID %q has no matching entry in TOKEN_KEYS", c.Token.ActiveKID)
	}
	if c.Token.TTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}
