// analytics_service_test.go
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

	"github.com/localnerve/growthdb/internal/models"
	"github.com/localnerve/growthdb/internal/scoring"
	"github.com/localnerve/growthdb/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsEmpty(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	overview, err := Analytics(context.Background(), db, "u1", "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, 0, overview.Goals.Total)
	assert.Equal(t, 0.0, overview.Goals.CompletionRate)
	assert.Equal(t, 0.0, overview.Habits.AvgStreak)
	assert.Equal(t, 0, overview.Journal.CurrentStreak)
	assert.Len(t, overview.HabitCompletions, 7)
}

func TestAnalyticsOverview(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()
	today := "2024-03-10"

	done := []models.Milestone{{Text: "a", Completed: true}}
	_, err := CreateGoal(ctx, db, "u1", GoalInput{Title: "g1", Category: "health", Milestones: done})
	require.NoError(t, err)
	_, err = CreateGoal(ctx, db, "u1", GoalInput{Title: "g2", Category: "health", Milestones: done})
	require.NoError(t, err)
	_, err = CreateGoal(ctx, db, "u1", GoalInput{Title: "g3", Category: "career"})
	require.NoError(t, err)
	// another user's data never leaks in
	_, err = CreateGoal(ctx, db, "u2", GoalInput{Title: "other"})
	require.NoError(t, err)

	habit, err := CreateHabit(ctx, db, "u1", HabitInput{Name: "read"})
	require.NoError(t, err)
	for _, day := range []string{"2024-03-08", "2024-03-09", "2024-03-10"} {
		_, err := CompleteHabit(ctx, db, "u1", habit.ID, day)
		require.NoError(t, err)
	}

	mood := "grateful"
	for _, day := range []string{"2024-03-09", "2024-03-10"} {
		_, err := CreateJournalEntry(ctx, db, "u1", day, JournalInput{Content: "entry", Mood: &mood})
		require.NoError(t, err)
	}
	_, err = CreateExercise(ctx, db, "u1", today, ExerciseInput{ExerciseType: "x", Content: map[string]interface{}{"a": 1}})
	require.NoError(t, err)

	overview, err := Analytics(ctx, db, "u1", today)
	require.NoError(t, err)

	assert.Equal(t, 3, overview.Goals.Total)
	assert.Equal(t, 2, overview.Goals.Completed)
	assert.Equal(t, 1, overview.Goals.Active)
	assert.Equal(t, 66.7, overview.Goals.CompletionRate)
	assert.Equal(t, scoring.CategoryCount{Total: 2, Completed: 2}, overview.Goals.ByCategory["health"])
	assert.Equal(t, scoring.CategoryCount{Total: 1, Completed: 0}, overview.Goals.ByCategory["career"])

	assert.Equal(t, 1, overview.Habits.Total)
	assert.Equal(t, 3, overview.Habits.MaxStreak)
	assert.Equal(t, 3, overview.Habits.TotalCompletions)

	assert.Equal(t, 2, overview.Journal.TotalEntries)
	assert.Equal(t, 2, overview.Journal.CurrentStreak)
	assert.Equal(t, 2, overview.Journal.MoodDistribution["grateful"])

	assert.Equal(t, 1, overview.Exercises.TotalCompleted)

	require.Len(t, overview.HabitCompletions, 7)
	first := overview.HabitCompletions[0]
	assert.Equal(t, today, first.Date)
	assert.Equal(t, 1, first.Completed)
	assert.Equal(t, 1, first.Total)
	assert.Equal(t, 0, overview.HabitCompletions[6].Completed)
}
