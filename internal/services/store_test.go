// store_test.go
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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/localnerve/growthdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return openMock(t, sqlDB, mock)
}

// newPingMockDB is newMockDB with pings routed through the expectations.
func newPingMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	return openMock(t, sqlDB, mock)
}

func openMock(t *testing.T, sqlDB *sql.DB, mock sqlmock.Sqlmock) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Discard, DisableAutomaticPing: true})
	require.NoError(t, err)

	t.Cleanup(func() {
		mock.ExpectClose()
		_ = sqlDB.Close()
	})
	return db, mock
}

func TestStoreErrorsAreNotNotFound(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset by peer")

	t.Run("lookup", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT .* FROM `goals`").WillReturnError(dbErr)

		_, err := UpdateGoal(ctx, db, "u1", "g1", GoalUpdate{Title: strPtr("x")})
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, types.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT .* FROM `habits`").WillReturnError(dbErr)

		_, err := ListHabits(ctx, db, "u1")
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `obstacles`").WillReturnError(dbErr)
		mock.ExpectRollback()

		err := DeleteObstacle(ctx, db, "u1", "o1")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, types.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT .* FROM `habits`").WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := CompleteHabit(ctx, db, "u1", "h1", "2024-01-01")
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDateOrToday(t *testing.T) {
	got, err := dateOrToday(nil, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got)

	empty := ""
	got, err = dateOrToday(&empty, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got)

	got, err = dateOrToday(strPtr("2023-12-31"), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", got)

	_, err = dateOrToday(strPtr("12/31/2023"), "2024-01-01")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}
