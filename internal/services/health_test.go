// health_test.go
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

package services

import (
	"context"
	"testing"

	"github.com/localnerve/growthdb/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthCheck(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	cfg := testhelpers.SQLiteConfig()

	result := HealthCheck(context.Background(), cfg, db, zap.NewNop())
	assert.True(t, result.Healthy())
	assert.Equal(t, ServiceName, result.Service)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "sqlite", result.Details["database_type"])
}

func TestHealthCheckCancelled(t *testing.T) {
	db, mock := newPingMockDB(t)
	mock.ExpectPing().WillReturnError(context.Canceled)

	result := HealthCheck(context.Background(), testhelpers.SQLiteConfig(), db, zap.NewNop())
	assert.False(t, result.Healthy())
	assert.Equal(t, "unreachable", result.Database)
	assert.NotEmpty(t, result.ErrorMessage)
}
