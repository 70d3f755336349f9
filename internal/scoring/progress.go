// progress.go
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

import "github.com/localnerve/growthdb/internal/models"

// percentOf truncates 100*part/whole the same way the stored values were always
// computed: as a float ratio scaled by 100, then truncated. Zero whole yields 0.
func percentOf(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(float64(part) / float64(whole) * 100)
}

// Progress is the truncated percentage of completed milestones, 0 when empty.
func Progress(milestones []models.Milestone) int {
	return percentOf(countCompleted(milestones), len(milestones))
}

func countCompleted(milestones []models.Milestone) int {
	n := 0
	for _, m := range milestones {
		if m.Completed {
			n++
		}
	}
	return n
}

// ApplyMilestones returns the progress and status a goal carries after its
// milestone list is replaced.
//
// stored is the goal's status before the update and requested is the status
// set in the same update, or "" when the update leaves it alone. A fully
// completed non-empty list forces "completed". An archived goal whose update
// does not name a status stays archived.
func ApplyMilestones(milestones []models.Milestone, stored, requested string) (int, string) {
	status := stored
	if requested != "" {
		status = requested
	}

	progress := Progress(milestones)
	done := countCompleted(milestones)
	if len(milestones) > 0 && done == len(milestones) {
		if requested == "" && stored == models.GoalStatusArchived {
			return progress, status
		}
		status = models.GoalStatusCompleted
	}
	return progress, status
}
