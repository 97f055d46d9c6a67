package config

import (
	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"

	"adrecon/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library,
// after an optional .env file in the working directory has been loaded.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects the persistence backend (STORE_BACKEND).
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Badger configures the embedded key-value backend (BADGER_ prefix).
	Badger configs.Badger `envPrefix:"BADGER_"`

	// Ingest sizes the asynchronous observation pool (INGEST_ prefix).
	Ingest configs.Ingest `envPrefix:"INGEST_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails or the configured backend is unknown, an error is
// returned. All fields are loaded with their specified defaults when no
// environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Store.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
