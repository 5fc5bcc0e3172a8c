// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DBPath is the SQLite database file.
	DBPath string `env:"DB_PATH" envDefault:"./data/atlax.db"`

	// UploadDir is where ingested model files are written.
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./data/uploads"`

	// JWTSecret signs session tokens. Must be set outside local dev.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-only-insecure-secret"`

	// TokenTTLHours is how long session tokens stay valid.
	TokenTTLHours int `env:"TOKEN_TTL_HOURS" envDefault:"24"`

	// WelcomeGrant is the currency credited to new accounts.
	WelcomeGrant int64 `env:"WELCOME_GRANT" envDefault:"500"`

	// AllowedOrigins is the CORS origin allowlist.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:*" envSeparator:","`
}

// Load reads configuration from the environment, after loading a .env file
// if one exists.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
