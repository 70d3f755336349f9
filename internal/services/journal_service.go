// journal_service.go
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
	"strings"
	"time"

	"github.com/localnerve/growthdb/internal/models"
	"github.com/localnerve/growthdb/internal/types"
	"gorm.io/gorm"
)

// VisionItemInput is the body of POST /api/vision-board.
type VisionItemInput struct {
	Type     string                 `json:"type" validate:"required,oneof=text image quote"`
	Content  string                 `json:"content" validate:"required"`
	Position map[string]interface{} `json:"position"`
}

// JournalInput is the body of POST /api/journal.
type JournalInput struct {
	Content   string           `json:"content" validate:"required"`
	Mood      *string          `json:"mood"`
	Gratitude types.StringList `json:"gratitude"`
}

// ExerciseInput is the body of POST /api/exercises.
type ExerciseInput struct {
	ExerciseType string                 `json:"exercise_type" validate:"required"`
	Content      map[string]interface{} `json:"content" validate:"required"`
}

// RitualInput is the body of POST /api/rituals/complete.
type RitualInput struct {
	RitualType  string `json:"ritual_type" validate:"required,oneof=morning midday evening focus"`
	CompletedAt string `json:"completed_at" validate:"required"`
}

// Created acknowledges a logged event by id.
type Created struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func CreateVisionItem(ctx context.Context, db *gorm.DB, userID string, in VisionItemInput) (*models.VisionBoardItem, error) {
	item := &models.VisionBoardItem{
		Type:     in.Type,
		Content:  in.Content,
		Position: models.JSONObject(in.Position),
	}
	item.UserID = userID

	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create vision board item: %w", err)
	}
	return item, nil
}

func ListVisionItems(ctx context.Context, db *gorm.DB, userID string) ([]models.VisionBoardItem, error) {
	return listOwned[models.VisionBoardItem](ctx, db, userID, "created_at", unboundedListLimit)
}

func DeleteVisionItem(ctx context.Context, db *gorm.DB, userID, id string) error {
	return deleteOwned(ctx, db, &models.VisionBoardItem{}, userID, id, "vision board item")
}

// CreateJournalEntry stores an entry dated today.
func CreateJournalEntry(ctx context.Context, db *gorm.DB, userID, today string, in JournalInput) (*models.JournalEntry, error) {
	entry := &models.JournalEntry{
		Content:   in.Content,
		Mood:      in.Mood,
		Gratitude: models.JSONList[string](in.Gratitude.Slice()),
		Date:      today,
	}
	entry.UserID = userID

	if err := db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}
	return entry, nil
}

// ListJournalEntries returns the user's entries, newest date first.
func ListJournalEntries(ctx context.Context, db *gorm.DB, userID string) ([]models.JournalEntry, error) {
	return listOwned[models.JournalEntry](ctx, db, userID, "date desc, created_at desc", unboundedListLimit)
}

// CreateExercise stores a finished exercise. Exercises are always logged as completed.
func CreateExercise(ctx context.Context, db *gorm.DB, userID, today string, in ExerciseInput) (*models.Exercise, error) {
	exercise := &models.Exercise{
		ExerciseType: in.ExerciseType,
		Content:      models.JSONObject(in.Content),
		Completed:    true,
		Date:         today,
	}
	exercise.UserID = userID

	if err := db.WithContext(ctx).Create(exercise).Error; err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}
	return exercise, nil
}

func ListExercises(ctx context.Context, db *gorm.DB, userID string) ([]models.Exercise, error) {
	return listOwned[models.Exercise](ctx, db, userID, "date desc, created_at desc", unboundedListLimit)
}

// ParseTimestamp accepts RFC 3339 timestamps, including a trailing "Z", and
// bare local timestamps, which are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04", types.DateLayout} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, types.Invalid("bad timestamp %q", s)
}

// CompleteRitual logs a finished ritual session.
func CompleteRitual(ctx context.Context, db *gorm.DB, userID string, in RitualInput) (Created, error) {
	completedAt, err := ParseTimestamp(in.CompletedAt)
	if err != nil {
		return Created{}, err
	}

	ritual := &models.RitualCompletion{RitualType: in.RitualType, CompletedAt: completedAt}
	ritual.UserID = userID

	if err := db.WithContext(ctx).Create(ritual).Error; err != nil {
		return Created{}, fmt.Errorf("failed to record ritual: %w", err)
	}
	return Created{Message: "Ritual completed", ID: ritual.ID}, nil
}

// ListRituals returns the most recent ritual completions.
func ListRituals(ctx context.Context, db *gorm.DB, userID string) ([]models.RitualCompletion, error) {
	return listOwned[models.RitualCompletion](ctx, db, userID, "completed_at desc", ritualListLimit)
}
