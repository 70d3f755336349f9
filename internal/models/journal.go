// journal.go
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

// JournalEntry is a dated free-text reflection.
type JournalEntry struct {
	Record
	Content   string           `json:"content"`
	Mood      *string          `gorm:"size:64" json:"mood"`
	Gratitude JSONList[string] `json:"gratitude"`
	Date      string           `gorm:"size:10;not null;index" json:"date"`
}

// Exercise is a completed mindset exercise with free-form content.
type Exercise struct {
	Record
	ExerciseType string     `gorm:"size:64;not null" json:"exercise_type"`
	Content      JSONObject `json:"content"`
	Completed    bool       `json:"completed"`
	Date         string     `gorm:"size:10;not null;index" json:"date"`
}

// VisionBoardItem is a text, image or quote pinned to the vision board.
type VisionBoardItem struct {
	Record
	Type     string     `gorm:"size:16;not null" json:"type"`
	Content  string     `json:"content"`
	Position JSONObject `json:"position"`
}

// RitualCompletion records one finished ritual session.
type RitualCompletion struct {
	Record
	RitualType  string    `gorm:"size:16;not null" json:"ritual_type"`
	CompletedAt time.Time `gorm:"index" json:"completed_at"`
}

// JourneyMilestone is a dated point on the transformation timeline.
type JourneyMilestone struct {
	Record
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `json:"description"`
	Category    string  `gorm:"size:64;not null" json:"category"`
	Emotion     *string `gorm:"size:64" json:"emotion"`
	Date        string  `gorm:"size:10;not null;index" json:"date"`
}

// TableName overrides the table name for VisionBoardItem
func (VisionBoardItem) TableName() string {
	return "vision_board"
}
