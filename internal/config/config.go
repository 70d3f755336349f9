// config.go
//
// A personal-development tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of growthdb.
// growthdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// growthdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with growthdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Values come from the environment, optionally seeded from a .env file.
type Config struct {
	// Server configuration
	Port          string `env:"PORT" env-default:"3000"`
	CORSOrigins   string `env:"CORS_ORIGINS" env-default:"*"`
	AuthRateLimit int    `env:"AUTH_RATE_LIMIT" env-default:"20"` // requests per minute per IP on /api/auth

	// Database configuration
	DBType            string `env:"DB_TYPE" env-default:"sqlite"` // sqlite, sqlite3, mysql, mariadb, postgres, sqlserver
	DBHost            string `env:"DB_HOST" env-default:"localhost"`
	DBPort            string `env:"DB_PORT" env-default:""`
	DBDatabase        string `env:"DB_DATABASE"` // file path for sqlite
	DBUser            string `env:"DB_USER"`
	DBPassword        string `env:"DB_PASSWORD"`
	DBConnectionLimit int    `env:"DB_CONNECTION_LIMIT" env-default:"5"`

	// Token configuration
	JWTSecret         string `env:"JWT_SECRET"`
	JWTExpirationDays int    `env:"JWT_EXPIRATION_DAYS" env-default:"30"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `env:"LOG_FILE" env-default:""`
}

// Load reads configuration from the environment. When envFile is not empty it
// is loaded first; variables already set in the environment win.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBDatabase == "" {
		return errors.New("DB_DATABASE is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWTExpirationDays <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_DAYS must be positive, got %d", c.JWTExpirationDays)
	}
	if c.DBConnectionLimit <= 0 {
		return fmt.Errorf("DB_CONNECTION_LIMIT must be positive, got %d", c.DBConnectionLimit)
	}
	return nil
}

// TokenTTL is the lifetime of issued bearer tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationDays) * 24 * time.Hour
}

// AllowedOrigins returns CORS_ORIGINS normalized for the cors middleware.
func (c *Config) AllowedOrigins() string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}

// Help renders the environment variable reference used by cmd/server --help-env.
func Help() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
