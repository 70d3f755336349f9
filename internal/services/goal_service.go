// goal_service.go
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

const (
	defaultGoalCategory  = "personal"
	defaultGoalPrinciple = "think_and_grow_rich"
)

// GoalInput is the body of POST /api/goals.
type GoalInput struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Principle   string             `json:"principle" validate:"omitempty,oneof=think_and_grow_rich atomic_habits obstacle_is_the_way"`
	Why         string             `json:"why"`
	TargetDate  *string            `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Milestones  []models.Milestone `json:"milestones"`
}

// GoalUpdate is the body of PUT /api/goals/:id. Nil fields are left alone.
type GoalUpdate struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Category    *string             `json:"category"`
	Principle   *string             `json:"principle" validate:"omitempty,oneof=think_and_grow_rich atomic_habits obstacle_is_the_way"`
	Why         *string             `json:"why"`
	Status      *string             `json:"status" validate:"omitempty,oneof=active completed archived"`
	Progress    *int                `json:"progress" validate:"omitempty,min=0,max=100"`
	TargetDate  *string             `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Milestones  *[]models.Milestone `json:"milestones"`
}

// Apply merges the update into g. A milestone list always recomputes
// progress, overriding any progress sent alongside it.
func (u GoalUpdate) Apply(g *models.Goal) {
	stored := g.Status

	setString(&g.Title, u.Title)
	setString(&g.Description, u.Description)
	setString(&g.Category, u.Category)
	setString(&g.Principle, u.Principle)
	setString(&g.Why, u.Why)
	setString(&g.Status, u.Status)
	if u.TargetDate != nil {
		g.TargetDate = u.TargetDate
	}
	if u.Progress != nil {
		g.Progress = *u.Progress
	}

	if u.Milestones != nil {
		requested := ""
		if u.Status != nil {
			requested = *u.Status
		}
		g.Milestones = models.JSONList[models.Milestone](*u.Milestones)
		g.Progress, g.Status = scoring.ApplyMilestones(*u.Milestones, stored, requested)
	}
}

// CreateGoal stores a new goal with progress derived from its milestones.
func CreateGoal(ctx context.Context, db *gorm.DB, userID string, in GoalInput) (*models.Goal, error) {
	milestones := in.Milestones
	if milestones == nil {
		milestones = []models.Milestone{}
	}
	goal := &models.Goal{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Principle:   in.Principle,
		Why:         in.Why,
		TargetDate:  in.TargetDate,
		Milestones:  models.JSONList[models.Milestone](milestones),
	}
	goal.UserID = userID
	if goal.Category == "" {
		goal.Category = defaultGoalCategory
	}
	if goal.Principle == "" {
		goal.Principle = defaultGoalPrinciple
	}
	goal.Progress, goal.Status = scoring.ApplyMilestones(milestones, models.GoalStatusActive, "")

	if err := db.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

// ListGoals returns every goal of the user, oldest first.
func ListGoals(ctx context.Context, db *gorm.DB, userID string) ([]models.Goal, error) {
	return listOwned[models.Goal](ctx, db, userID, "created_at", unboundedListLimit)
}

// UpdateGoal applies a partial update to one of the user's goals.
func UpdateGoal(ctx context.Context, db *gorm.DB, userID, id string, upd GoalUpdate) (*models.Goal, error) {
	var goal models.Goal
	if err := firstOwned(ctx, db, userID, id, &goal, "goal"); err != nil {
		return nil, err
	}

	upd.Apply(&goal)

	if err := db.WithContext(ctx).Save(&goal).Error; err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return &goal, nil
}

// DeleteGoal removes one of the user's goals.
func DeleteGoal(ctx context.Context, db *gorm.DB, userID, id string) error {
	return deleteOwned(ctx, db, &models.Goal{}, userID, id, "goal")
}
