// strength.go
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

const maxStrength = 100

// StrengthScore maps an identity's evidence count onto 0-100, two points per vote.
func StrengthScore(evidenceCount int) int {
	if evidenceCount <= 0 {
		return 0
	}
	if score := evidenceCount * 2; score < maxStrength {
		return score
	}
	return maxStrength
}

// ChainStrength is the truncated success percentage of a habit chain.
func ChainStrength(successCount, totalAttempts int) int {
	return percentOf(successCount, totalAttempts)
}

// Coalesce prefers a non-empty update value over the stored one.
func Coalesce(update, stored *string) string {
	if update != nil && *update != "" {
		return *update
	}
	if stored != nil {
		return *stored
	}
	return ""
}

// Transforms reports whether an obstacle with the given merged reframing
// fields should move to "transformed" now. It is false once the obstacle is
// already transformed, so the transformation is stamped only once.
func Transforms(status, perception, action, will string) bool {
	if status == models.ObstacleStatusTransformed {
		return false
	}
	return perception != "" && action != "" && will != ""
}
