// analytics.go
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
	"strconv"

	"github.com/localnerve/growthdb/internal/models"
	"github.com/localnerve/growthdb/internal/types"
)

const (
	defaultCategory = "personal"
	defaultMood     = "reflective"
	completionDays  = 7
)

// Analytics is the overview returned by GET /api/analytics/overview.
type Analytics struct {
	Goals            GoalStats       `json:"goals"`
	Habits           HabitStats      `json:"habits"`
	Journal          JournalStats    `json:"journal"`
	Exercises        ExerciseStats   `json:"exercises"`
	HabitCompletions []DayCompletion `json:"habit_completions_7_days"`
}

type GoalStats struct {
	Total          int                      `json:"total"`
	Active         int                      `json:"active"`
	Completed      int                      `json:"completed"`
	CompletionRate float64                  `json:"completion_rate"`
	ByCategory     map[string]CategoryCount `json:"by_category"`
}

type CategoryCount struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type HabitStats struct {
	Total            int     `json:"total"`
	MaxStreak        int     `json:"max_streak"`
	BestStreakEver   int     `json:"best_streak_ever"`
	AvgStreak        float64 `json:"avg_streak"`
	TotalCompletions int     `json:"total_completions"`
}

type JournalStats struct {
	TotalEntries     int            `json:"total_entries"`
	CurrentStreak    int            `json:"current_streak"`
	MoodDistribution map[string]int `json:"mood_distribution"`
}

type ExerciseStats struct {
	TotalCompleted int `json:"total_completed"`
}

// DayCompletion counts habits completed on one calendar day.
type DayCompletion struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// Overview aggregates a user's full record set. Nothing is cached; the
// caller passes complete scans on every request.
func Overview(goals []models.Goal, habits []models.Habit, entries []models.JournalEntry, exercises int, today string) (Analytics, error) {
	days, err := lastDays(today, completionDays)
	if err != nil {
		return Analytics{}, err
	}

	return Analytics{
		Goals:            goalStats(goals),
		Habits:           habitStats(habits),
		Journal:          journalStats(entries, today),
		Exercises:        ExerciseStats{TotalCompleted: exercises},
		HabitCompletions: habitCompletions(habits, days),
	}, nil
}

func goalStats(goals []models.Goal) GoalStats {
	stats := GoalStats{
		Total:      len(goals),
		ByCategory: make(map[string]CategoryCount),
	}
	for _, g := range goals {
		switch g.Status {
		case models.GoalStatusCompleted:
			stats.Completed++
		case models.GoalStatusActive:
			stats.Active++
		}

		category := g.Category
		if category == "" {
			category = defaultCategory
		}
		bucket := stats.ByCategory[category]
		bucket.Total++
		if g.Status == models.GoalStatusCompleted {
			bucket.Completed++
		}
		stats.ByCategory[category] = bucket
	}
	if stats.Total > 0 {
		stats.CompletionRate = round1(float64(stats.Completed) / float64(stats.Total) * 100)
	}
	return stats
}

func habitStats(habits []models.Habit) HabitStats {
	stats := HabitStats{Total: len(habits)}
	sum := 0
	for _, h := range habits {
		if h.Streak > stats.MaxStreak {
			stats.MaxStreak = h.Streak
		}
		if h.BestStreak > stats.BestStreakEver {
			stats.BestStreakEver = h.BestStreak
		}
		sum += h.Streak
		stats.TotalCompletions += len(h.CompletionDates)
	}
	if stats.Total > 0 {
		stats.AvgStreak = round1(float64(sum) / float64(stats.Total))
	}
	return stats
}

func journalStats(entries []models.JournalEntry, today string) JournalStats {
	stats := JournalStats{
		TotalEntries:     len(entries),
		MoodDistribution: make(map[string]int),
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.Date)
		mood := defaultMood
		if e.Mood != nil {
			mood = *e.Mood
		}
		stats.MoodDistribution[mood]++
	}
	stats.CurrentStreak = DailyStreak(dates, today)
	return stats
}

func habitCompletions(habits []models.Habit, days []string) []DayCompletion {
	out := make([]DayCompletion, 0, len(days))
	for _, day := range days {
		completed := 0
		for _, h := range habits {
			for _, d := range h.CompletionDates {
				if d == day {
					completed++
					break
				}
			}
		}
		out = append(out, DayCompletion{Date: day, Completed: completed, Total: len(habits)})
	}
	return out
}

// lastDays lists n calendar days ending at today, today first.
func lastDays(today string, n int) ([]string, error) {
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		d, err := types.AddDays(today, -i)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// round1 rounds to one decimal using the exact binary value of x, so 66.666…
// becomes 66.7 and a float just under a .x5 boundary rounds down.
func round1(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return r
}
