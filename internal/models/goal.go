// goal.go
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
	"encoding/json"
	"fmt"
	"time"

	"github.com/localnerve/growthdb/internal/types"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusArchived  = "archived"
)

// Milestone is one checklist item of a goal.
type Milestone struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// UnmarshalJSON rejects completion flags that are not JSON booleans.
func (m *Milestone) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text      string          `json:"text"`
		Completed json.RawMessage `json:"completed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: milestone must be an object with text and completed", types.ErrInvalidInput)
	}
	m.Text = raw.Text
	m.Completed = false
	switch string(raw.Completed) {
	case "", "null", "false":
	case "true":
		m.Completed = true
	default:
		return fmt.Errorf("%w: milestone completed must be a boolean, got %s", types.ErrInvalidInput, raw.Completed)
	}
	return nil
}

// Goal is a tracked objective with an optional milestone checklist.
type Goal struct {
	Record
	Title       string              `gorm:"size:255;not null" json:"title"`
	Description string              `json:"description"`
	Category    string              `gorm:"size:64;not null;default:personal" json:"category"`
	Principle   string              `gorm:"size:64;not null;default:think_and_grow_rich" json:"principle"`
	Why         string              `json:"why"`
	TargetDate  *string             `gorm:"size:10" json:"target_date"`
	Milestones  JSONList[Milestone] `json:"milestones"`
	Status      string              `gorm:"size:16;not null;default:active;index" json:"status"`
	Progress    int                 `gorm:"not null;default:0" json:"progress"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
