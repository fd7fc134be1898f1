// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Will be filled at build time
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type Database struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"perfboard"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"perfboard"`

	MaxOpenConns    int32         `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MinConns        int32         `env:"DB_MIN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"4h"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"15m"`

	DisableAutoMigrate bool `env:"DISABLE_AUTOMIGRATE" envDefault:"false"`
}

type OIDC struct {
	// base url of an ory hydra compatible admin api exposing token introspection
	IntrospectionURL string `env:"OIDC_INTROSPECTION_URL" envDefault:"http://localhost:4445"`
	ClientID         string `env:"OIDC_CLIENT_ID"`
	ClientSecret     string `env:"OIDC_CLIENT_SECRET"`
	// issuers accepted by the api. empty means every issuer the introspection endpoint vouches for
	TrustedIssuers    []string      `env:"TRUSTED_OP_LIST" envSeparator:","`
	AdminEntitlements []string      `env:"ADMIN_ENTITLEMENTS" envSeparator:","`
	TokenCacheSize    int           `env:"TOKEN_CACHE_SIZE" envDefault:"1024"`
	TokenCacheTTL     time.Duration `env:"TOKEN_CACHE_TTL" envDefault:"1m"`
}

type Mail struct {
	Support string `env:"MAIL_SUPPORT" envDefault:"support@perfboard.local"`
	From    string `env:"MAIL_FROM" envDefault:"no-reply@perfboard.local"`
}

type Config struct {
	Port               string   `env:"PORT" envDefault:"8080"`
	Environment        string   `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"debug"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	ErrorTrackingDSN   string   `env:"ERROR_TRACKING_DSN"`
	TracingEnabled     bool     `env:"TRACING_ENABLED" envDefault:"false"`

	// otlp or stdout
	TracingExporter string `env:"TRACING_EXPORTER" envDefault:"otlp"`

	RegistryCheckDisabled bool `env:"REGISTRY_CHECK_DISABLED" envDefault:"false"`

	Database Database
	OIDC     OIDC
	Mail     Mail
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		// a missing .env file is fine - the environment might be set by the container runtime
		slog.Debug("no .env file loaded", "err", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "could not parse environment")
	}
	return cfg, nil
}

func (c Config) IsDev() bool {
	return c.Environment == "dev"
}
