// analytics_test.go
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

package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/localnerve/growthdb/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewEmpty(t *testing.T) {
	got, err := Overview(nil, nil, nil, 0, "2024-01-07")
	require.NoError(t, err)

	assert.Equal(t, 0, got.Goals.Total)
	assert.Equal(t, float64(0), got.Goals.CompletionRate)
	assert.Equal(t, float64(0), got.Habits.AvgStreak)
	assert.Equal(t, 0, got.Journal.CurrentStreak)
	assert.Empty(t, got.Goals.ByCategory)
	require.Len(t, got.HabitCompletions, 7)
	assert.Equal(t, "2024-01-07", got.HabitCompletions[0].Date)
	assert.Equal(t, "2024-01-01", got.HabitCompletions[6].Date)
}

func TestOverview(t *testing.T) {
	mood := "grateful"
	goals := []models.Goal{
		{Category: "health", Status: models.GoalStatusCompleted},
		{Category: "health", Status: models.GoalStatusActive},
		{Status: models.GoalStatusCompleted},
	}
	habits := []models.Habit{
		{Streak: 3, BestStreak: 5, CompletionDates: models.JSONList[string]{"2024-01-05", "2024-01-06", "2024-01-07"}},
		{Streak: 0, BestStreak: 2, CompletionDates: models.JSONList[string]{"2024-01-06"}},
		{Streak: 1, BestStreak: 1, CompletionDates: models.JSONList[string]{"2023-12-01"}},
	}
	entries := []models.JournalEntry{
		{Date: "2024-01-07", Mood: &mood},
		{Date: "2024-01-06"},
		{Date: "2024-01-04", Mood: &mood},
	}

	got, err := Overview(goals, habits, entries, 4, "2024-01-07")
	require.NoError(t, err)

	wantGoals := GoalStats{
		Total:          3,
		Active:         1,
		Completed:      2,
		CompletionRate: 66.7,
		ByCategory: map[string]CategoryCount{
			"health":   {Total: 2, Completed: 1},
			"personal": {Total: 1, Completed: 1},
		},
	}
	if diff := cmp.Diff(wantGoals, got.Goals); diff != "" {
		t.Errorf("goal stats mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, HabitStats{
		Total:            3,
		MaxStreak:        3,
		BestStreakEver:   5,
		AvgStreak:        1.3,
		TotalCompletions: 5,
	}, got.Habits)

	assert.Equal(t, 2, got.Journal.CurrentStreak)
	assert.Equal(t, map[string]int{"grateful": 2, "reflective": 1}, got.Journal.MoodDistribution)
	assert.Equal(t, 4, got.Exercises.TotalCompleted)

	assert.Equal(t, DayCompletion{Date: "2024-01-07", Completed: 1, Total: 3}, got.HabitCompletions[0])
	assert.Equal(t, DayCompletion{Date: "2024-01-06", Completed: 2, Total: 3}, got.HabitCompletions[1])
	assert.Equal(t, DayCompletion{Date: "2024-01-04", Completed: 0, Total: 3}, got.HabitCompletions[3])
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 66.7, round1(200.0/3))
	assert.Equal(t, 33.3, round1(100.0/3))
	assert.Equal(t, 50.0, round1(50))
	assert.Equal(t, 0.1, round1(0.15))
	// exact halves go to the even digit
	assert.Equal(t, 6.2, round1(6.25))
	assert.Equal(t, 0.8, round1(0.75))
}
