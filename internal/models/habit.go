// habit.go
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

import "time"

// Habit is a repeatable practice scored by consecutive-day completions.
type Habit struct {
	Record
	Name            string           `gorm:"size:255;not null" json:"name"`
	Description     string           `json:"description"`
	Frequency       string           `gorm:"size:16;not null;default:daily" json:"frequency"`
	Streak          int              `gorm:"not null;default:0" json:"streak"`
	BestStreak      int              `gorm:"not null;default:0" json:"best_streak"`
	LastCompleted   *string          `gorm:"size:10" json:"last_completed"`
	CompletionDates JSONList[string] `json:"completion_dates"`
}

// ChainItem pairs an existing cue habit with the habit stacked on it.
type ChainItem struct {
	Existing string `json:"existing"`
	New      string `json:"new"`
}

// HabitChain is a habit stack: "after I <existing>, I will <new>".
type HabitChain struct {
	Record
	Name          string              `gorm:"size:255;not null" json:"name"`
	ExistingHabit string              `json:"existing_habit"`
	NewHabit      string              `json:"new_habit"`
	ChainItems    JSONList[ChainItem] `json:"chain_items"`
	SuccessCount  int                 `gorm:"not null;default:0" json:"success_count"`
	TotalAttempts int                 `gorm:"not null;default:0" json:"total_attempts"`
	ChainStrength int                 `gorm:"not null;default:0" json:"chain_strength"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// HabitChainCompletion logs a single attempt at a habit chain.
type HabitChainCompletion struct {
	Record
	ChainID string `gorm:"size:36;not null;index" json:"chain_id"`
	Success bool   `json:"success"`
	Date    string `gorm:"size:10;not null" json:"date"`
}
