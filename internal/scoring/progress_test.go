// progress_test.go
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

package scoring

import (
	"testing"

	"github.com/localnerve/growthdb/internal/models"
	"github.com/stretchr/testify/assert"
)

func milestones(flags ...bool) []models.Milestone {
	out := make([]models.Milestone, 0, len(flags))
	for i, f := range flags {
		out = append(out, models.Milestone{Text: string(rune('a' + i)), Completed: f})
	}
	return out
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Milestone
		want int
	}{
		{"empty", nil, 0},
		{"none done", milestones(false, false), 0},
		{"one of three truncates", milestones(true, false, false), 33},
		{"two of three truncates", milestones(true, true, false), 66},
		{"half", milestones(true, false), 50},
		{"all", milestones(true, true, true), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.in)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestApplyMilestones(t *testing.T) {
	tests := []struct {
		name         string
		in           []models.Milestone
		stored       string
		requested    string
		wantProgress int
		wantStatus   string
	}{
		{"partial keeps active", milestones(true, false), models.GoalStatusActive, "", 50, models.GoalStatusActive},
		{"all done completes", milestones(true, true), models.GoalStatusActive, "", 100, models.GoalStatusCompleted},
		{"all done overrides explicit status", milestones(true), models.GoalStatusActive, models.GoalStatusActive, 100, models.GoalStatusCompleted},
		{"already completed stays completed", milestones(true), models.GoalStatusCompleted, "", 100, models.GoalStatusCompleted},
		{"empty list never completes", nil, models.GoalStatusActive, "", 0, models.GoalStatusActive},
		{"archived untouched without a status", milestones(true), models.GoalStatusArchived, "", 100, models.GoalStatusArchived},
		{"archived reopened then completed", milestones(true), models.GoalStatusArchived, models.GoalStatusActive, 100, models.GoalStatusCompleted},
		{"explicit status kept when partial", milestones(false), models.GoalStatusActive, models.GoalStatusArchived, 0, models.GoalStatusArchived},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, status := ApplyMilestones(tt.in, tt.stored, tt.requested)
			assert.Equal(t, tt.wantProgress, progress)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}
