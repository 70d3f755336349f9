// connection_test.go
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

package database

import (
	"testing"

	"github.com/localnerve/growthdb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDialectorSelection(t *testing.T) {
	tests := []struct {
		dbType string
		name   string
	}{
		{"sqlite", "sqlite"},
		{"sqlite3", "sqlite"},
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"postgres", "postgres"},
		{"sqlserver", "sqlserver"},
	}
	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			d, err := Dialector(&config.Config{DBType: tt.dbType, DBHost: "db", DBDatabase: "growth"})
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}
}

func TestDialectorRejectsUnknownType(t *testing.T) {
	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.ErrorContains(t, err, "unsupported database type")
}

func TestConnectAndMigrateSQLite(t *testing.T) {
	cfg := &config.Config{DBType: "sqlite", DBDatabase: ":memory:", DBConnectionLimit: 1}

	db, err := Connect(cfg, zap.NewNop())
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))
	for _, table := range []string{"users", "goals", "habits", "vision_board", "identity_evidence", "wisdom_favorites", "burning_desires", "legacy_statements"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
