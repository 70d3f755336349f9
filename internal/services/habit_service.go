// habit_service.go
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
	"fmt"

	"github.com/localnerve/growthdb/internal/models"
	"github.com/localnerve/growthdb/internal/scoring"
	"gorm.io/gorm"
)

// HabitInput is the body of POST /api/habits.
type HabitInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Frequency   string `json:"frequency" validate:"omitempty,oneof=daily weekly"`
}

// HabitUpdate is the body of PUT /api/habits/:id.
type HabitUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Frequency   *string `json:"frequency" validate:"omitempty,oneof=daily weekly"`
}

// Apply merges the update into h. Streak fields are never touched.
func (u HabitUpdate) Apply(h *models.Habit) {
	setString(&h.Name, u.Name)
	setString(&h.Description, u.Description)
	setString(&h.Frequency, u.Frequency)
}

// HabitCompletion is the outcome of POST /api/habits/:id/complete.
type HabitCompletion struct {
	Message    string `json:"message"`
	Streak     int    `json:"streak"`
	BestStreak int    `json:"best_streak"`
}

// CreateHabit stores a new habit with an empty completion history.
func CreateHabit(ctx context.Context, db *gorm.DB, userID string, in HabitInput) (*models.Habit, error) {
	habit := &models.Habit{
		Name:            in.Name,
		Description:     in.Description,
		Frequency:       in.Frequency,
		CompletionDates: models.JSONList[string]{},
	}
	habit.UserID = userID
	if habit.Frequency == "" {
		habit.Frequency = "daily"
	}

	if err := db.WithContext(ctx).Create(habit).Error; err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return habit, nil
}

// ListHabits returns every habit of the user, oldest first.
func ListHabits(ctx context.Context, db *gorm.DB, userID string) ([]models.Habit, error) {
	return listOwned[models.Habit](ctx, db, userID, "created_at", unboundedListLimit)
}

// CompleteHabit records a completion for today and recomputes the streak.
// Completing twice on the same day changes nothing.
func CompleteHabit(ctx context.Context, db *gorm.DB, userID, id, today string) (HabitCompletion, error) {
	var habit models.Habit
	if err := firstOwned(ctx, db, userID, id, &habit, "habit"); err != nil {
		return HabitCompletion{}, err
	}

	c, err := scoring.RecordCompletion(habit.CompletionDates, today, habit.Streak, habit.BestStreak)
	if err != nil {
		return HabitCompletion{}, fmt.Errorf("habit %s has bad completion history: %w", id, err)
	}

	if c.Recorded {
		habit.CompletionDates = models.JSONList[string](c.Dates)
		habit.LastCompleted = &today
		habit.Streak = c.Streak
		habit.BestStreak = c.BestStreak
		if err := db.WithContext(ctx).Save(&habit).Error; err != nil {
			return HabitCompletion{}, fmt.Errorf("failed to record habit completion: %w", err)
		}
	}

	return HabitCompletion{Message: "Habit completed", Streak: c.Streak, BestStreak: c.BestStreak}, nil
}

// UpdateHabit applies a partial update to one of the user's habits.
func UpdateHabit(ctx context.Context, db *gorm.DB, userID, id string, upd HabitUpdate) (*models.Habit, error) {
	var habit models.Habit
	if err := firstOwned(ctx, db, userID, id, &habit, "habit"); err != nil {
		return nil, err
	}

	upd.Apply(&habit)

	if err := db.WithContext(ctx).Save(&habit).Error; err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}
	return &habit, nil
}

// DeleteHabit removes one of the user's habits.
func DeleteHabit(ctx context.Context, db *gorm.DB, userID, id string) error {
	return deleteOwned(ctx, db, &models.Habit{}, userID, id, "habit")
}
