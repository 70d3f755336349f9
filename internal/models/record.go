// record.go
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
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record holds the columns every user-scoped row shares.
type Record struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Singleton is the base of entities that exist at most once per user.
type Singleton struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (s *Singleton) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// All lists every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Goal{},
		&Habit{},
		&VisionBoardItem{},
		&JournalEntry{},
		&Exercise{},
		&RitualCompletion{},
		&WisdomFavorite{},
		&IdentityStatement{},
		&IdentityEvidence{},
		&Obstacle{},
		&BurningDesire{},
		&DesireVisualization{},
		&PremeditatioPractice{},
		&HabitChain{},
		&HabitChainCompletion{},
		&JourneyMilestone{},
		&LegacyStatement{},
		&MorningRoutine{},
		&MorningRoutineCompletion{},
	}
}
