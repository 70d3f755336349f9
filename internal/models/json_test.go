// json_test.go
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

package models

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestAutoMigrateAll(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.AutoMigrate(All()...))

	for _, m := range All() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	assert.True(t, db.Migrator().HasColumn(&VisionBoardItem{}, "position"))
	assert.True(t, db.Migrator().HasColumn(&Exercise{}, "content"))
}

func TestJSONColumnsRoundTrip(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.AutoMigrate(&Goal{}, &VisionBoardItem{}, &Exercise{}))
	ctx := context.Background()

	item := &VisionBoardItem{Type: "text", Content: "cabin", Position: JSONObject{"x": "left", "y": "top"}}
	item.UserID = "u1"
	require.NoError(t, db.WithContext(ctx).Create(item).Error)

	var gotItem VisionBoardItem
	require.NoError(t, db.WithContext(ctx).First(&gotItem, "id = ?", item.ID).Error)
	assert.Equal(t, JSONObject{"x": "left", "y": "top"}, gotItem.Position)

	exercise := &Exercise{ExerciseType: "gratitude", Content: JSONObject{"items": []interface{}{"sun"}}, Date: "2024-03-01"}
	exercise.UserID = "u1"
	require.NoError(t, db.WithContext(ctx).Create(exercise).Error)

	var gotExercise Exercise
	require.NoError(t, db.WithContext(ctx).First(&gotExercise, "id = ?", exercise.ID).Error)
	assert.Equal(t, []interface{}{"sun"}, gotExercise.Content["items"])

	goal := &Goal{Title: "nil list"}
	goal.UserID = "u1"
	require.NoError(t, db.WithContext(ctx).Create(goal).Error)

	var gotGoal Goal
	require.NoError(t, db.WithContext(ctx).First(&gotGoal, "id = ?", goal.ID).Error)
	assert.NotNil(t, gotGoal.Milestones)
	assert.Empty(t, gotGoal.Milestones)
}
