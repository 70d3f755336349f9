// store.go
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
	"errors"
	"fmt"

	"github.com/localnerve/growthdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record limits for list endpoints.
const (
	defaultListLimit       = 100
	ritualListLimit        = 50
	visualizationListLimit = 30
	journeyListLimit       = 200
	unboundedListLimit     = 1000
)

// quiet returns a request-scoped session that does not log missing rows.
func quiet(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}

// firstOwned loads the row with the given id owned by userID into dest.
// A missing row, or one owned by someone else, is ErrNotFound.
func firstOwned(ctx context.Context, db *gorm.DB, userID, id string, dest interface{}, what string) error {
	err := quiet(ctx, db).Where("id = ? AND user_id = ?", id, userID).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s not found: %w", what, types.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", what, err)
	}
	return nil
}

// firstForUser loads the single row of a per-user singleton table.
func firstForUser(ctx context.Context, db *gorm.DB, userID string, dest interface{}, what string) error {
	err := quiet(ctx, db).Where("user_id = ?", userID).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("no %s set: %w", what, types.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", what, err)
	}
	return nil
}

// listOwned scans a user's rows in the given order. The result is never nil
// so it always serializes as a JSON array.
func listOwned[T any](ctx context.Context, db *gorm.DB, userID, order string, limit int) ([]T, error) {
	rows := make([]T, 0)
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(order).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// deleteOwned removes the row with the given id owned by userID.
func deleteOwned(ctx context.Context, db *gorm.DB, model interface{}, userID, id, what string) error {
	result := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", what, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s not found: %w", what, types.ErrNotFound)
	}
	return nil
}

// dateOrToday validates an optional ISO date, defaulting to today.
func dateOrToday(date *string, today string) (string, error) {
	if date == nil || *date == "" {
		return today, nil
	}
	if _, err := types.ParseDate(*date); err != nil {
		return "", err
	}
	return *date, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}
