// config_test.go
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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DATABASE", ":memory:")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, 30, cfg.JWTExpirationDays)
	assert.Equal(t, 30*24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, "*", cfg.AllowedOrigins())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_DATABASE", ":memory:")
	t.Setenv("JWT_SECRET", "")

	_, err := Load("")
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("DB_DATABASE", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err = Load("")
	assert.ErrorContains(t, err, "DB_DATABASE")
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DB_DATABASE=from-file.db\nJWT_SECRET=file-secret\nPORT=4000\nCORS_ORIGINS= https://a.example , https://b.example ,\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv does not override variables that are already set.
	t.Setenv("PORT", "5000")
	for _, key := range []string{"DB_DATABASE", "JWT_SECRET", "CORS_ORIGINS"} {
		key := key
		prev, had := os.LookupEnv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
		os.Unsetenv(key)
	}

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.DBDatabase)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "https://a.example,https://b.example", cfg.AllowedOrigins())
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
