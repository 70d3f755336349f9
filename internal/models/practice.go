// practice.go
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

// PremeditatioPractice rehearses a challenge ahead of time and reflects on it afterwards.
type PremeditatioPractice struct {
	Record
	Scenario           string           `json:"scenario"`
	PotentialObstacles JSONList[string] `json:"potential_obstacles"`
	PlannedResponses   JSONList[string] `json:"planned_responses"`
	ResilienceScore    *int             `json:"resilience_score"`
	ActualOutcome      *string          `json:"actual_outcome"`
	LessonsLearned     *string          `json:"lessons_learned"`
	Date               string           `gorm:"size:10;not null" json:"date"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// RoutineStep is one timed step of a morning routine.
type RoutineStep struct {
	Step            string `json:"step" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=0"`
	Completed       bool   `json:"completed"`
}

// MorningRoutine is an ordered set of morning steps with its own streak.
type MorningRoutine struct {
	Record
	RoutineName   string                `gorm:"size:255;not null" json:"routine_name"`
	Philosophy    string                `gorm:"size:32" json:"philosophy"`
	Steps         JSONList[RoutineStep] `json:"steps"`
	TotalDuration int                   `json:"total_duration"`
	Streak        int                   `gorm:"not null;default:0" json:"streak"`
	BestStreak    int                   `gorm:"not null;default:0" json:"best_streak"`
	LastCompleted *string               `gorm:"size:10" json:"last_completed"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// MorningRoutineCompletion logs which steps were done on a given day.
type MorningRoutineCompletion struct {
	Record
	RoutineID      string           `gorm:"size:36;not null;index" json:"routine_id"`
	CompletedSteps JSONList[string] `json:"completed_steps"`
	Date           string           `gorm:"size:10;not null" json:"date"`
}
