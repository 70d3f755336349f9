// streak.go
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
	"sort"

	"github.com/localnerve/growthdb/internal/types"
)

// Completion is the result of recording a completion for a given day.
type Completion struct {
	Dates      []string
	Streak     int
	BestStreak int
	// Recorded is false when the day was already present and nothing changed.
	Recorded bool
}

// RecordCompletion adds today to dates and recomputes the streak.
// Re-recording a day that is already present is a no-op that returns the
// stored streak and best streak unchanged.
func RecordCompletion(dates []string, today string, streak, bestStreak int) (Completion, error) {
	for _, d := range dates {
		if d == today {
			return Completion{Dates: dates, Streak: streak, BestStreak: bestStreak}, nil
		}
	}

	updated := make([]string, 0, len(dates)+1)
	updated = append(updated, dates...)
	updated = append(updated, today)

	current, err := Run(updated)
	if err != nil {
		return Completion{}, err
	}

	if current > bestStreak {
		bestStreak = current
	}
	return Completion{Dates: updated, Streak: current, BestStreak: bestStreak, Recorded: true}, nil
}

// Run counts consecutive calendar days ending at the most recent date in dates.
// Declared habit frequency is not considered; a weekly habit is still scored
// on daily gaps.
func Run(dates []string) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}

	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	streak := 1
	for i := 0; i < len(sorted)-1; i++ {
		current, err := types.ParseDate(sorted[i])
		if err != nil {
			return 0, err
		}
		previous, err := types.ParseDate(sorted[i+1])
		if err != nil {
			return 0, err
		}
		if types.DaysBetween(current, previous) != 1 {
			break
		}
		streak++
	}
	return streak, nil
}

// DailyStreak walks back from today and counts days that have a date in dates.
// Dates after today are skipped, a second date on a day already counted is
// ignored, and the walk stops at the first missing day.
func DailyStreak(dates []string, today string) int {
	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	streak := 0
	check := today
	for _, d := range sorted {
		if d == check {
			streak++
			prev, err := types.AddDays(check, -1)
			if err != nil {
				return streak
			}
			check = prev
		} else if d < check {
			break
		}
	}
	return streak
}

// AdvanceStreak moves a last-completed style streak forward to today.
// Completing the day after lastCompleted extends the streak, completing on
// the same day leaves it alone, and anything else starts over at 1.
func AdvanceStreak(lastCompleted *string, today string, streak, bestStreak int) (int, int, error) {
	if lastCompleted == nil || *lastCompleted == "" {
		streak = 1
	} else {
		last, err := types.ParseDate(*lastCompleted)
		if err != nil {
			return 0, 0, err
		}
		now, err := types.ParseDate(today)
		if err != nil {
			return 0, 0, err
		}
		switch types.DaysBetween(now, last) {
		case 1:
			streak++
		case 0:
		default:
			streak = 1
		}
	}

	if streak > bestStreak {
		bestStreak = streak
	}
	return streak, bestStreak, nil
}
