// analytics_service.go
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
	"gorm.io/hints"
)

// scan is a full per-user table scan tagged for the query log.
func scan(ctx context.Context, db *gorm.DB, userID string) *gorm.DB {
	return db.WithContext(ctx).
		Clauses(hints.CommentBefore("select", "analytics overview")).
		Where("user_id = ?", userID)
}

// Analytics recomputes the user's overview from complete scans on every call.
func Analytics(ctx context.Context, db *gorm.DB, userID, today string) (scoring.Analytics, error) {
	var goals []models.Goal
	if err := scan(ctx, db, userID).Find(&goals).Error; err != nil {
		return scoring.Analytics{}, fmt.Errorf("failed to scan goals: %w", err)
	}

	var habits []models.Habit
	if err := scan(ctx, db, userID).Find(&habits).Error; err != nil {
		return scoring.Analytics{}, fmt.Errorf("failed to scan habits: %w", err)
	}

	var entries []models.JournalEntry
	if err := scan(ctx, db, userID).Select("id", "user_id", "mood", "date").Find(&entries).Error; err != nil {
		return scoring.Analytics{}, fmt.Errorf("failed to scan journal: %w", err)
	}

	var exercises int64
	if err := scan(ctx, db, userID).Model(&models.Exercise{}).Where("completed = ?", true).Count(&exercises).Error; err != nil {
		return scoring.Analytics{}, fmt.Errorf("failed to count exercises: %w", err)
	}

	overview, err := scoring.Overview(goals, habits, entries, int(exercises), today)
	if err != nil {
		return scoring.Analytics{}, fmt.Errorf("failed to compute analytics: %w", err)
	}
	return overview, nil
}
