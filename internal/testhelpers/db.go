// db.go
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

// Package testhelpers provides databases for package tests and the devdb tool.
package testhelpers

import (
	"testing"

	"github.com/localnerve/growthdb/internal/config"
	"github.com/localnerve/growthdb/internal/database"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SQLiteConfig is an in-memory sqlite configuration. A single connection
// keeps every query on the same memory database.
func SQLiteConfig() *config.Config {
	return &config.Config{
		Port:              "3000",
		CORSOrigins:       "*",
		AuthRateLimit:     1000,
		DBType:            "sqlite",
		DBDatabase:        ":memory:",
		DBConnectionLimit: 1,
		JWTSecret:         "test-secret",
		JWTExpirationDays: 30,
		LogLevel:          "error",
	}
}

// NewTestDB opens a migrated in-memory database that is closed when t ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(SQLiteConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
