// streak_test.go
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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"single", []string{"2024-01-03"}, 1},
		{"three consecutive", []string{"2024-01-01", "2024-01-02", "2024-01-03"}, 3},
		{"unsorted input", []string{"2024-01-03", "2024-01-01", "2024-01-02"}, 3},
		{"gap before newest", []string{"2024-01-01", "2024-01-03"}, 1},
		{"run broken further back", []string{"2023-12-25", "2024-01-01", "2024-01-02", "2024-01-03"}, 3},
		{"month boundary", []string{"2024-01-31", "2024-02-01"}, 2},
		{"leap day", []string{"2024-02-28", "2024-02-29", "2024-03-01"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(tt.dates)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunRejectsMalformedDates(t *testing.T) {
	_, err := Run([]string{"2024-01-03", "yesterday"})
	assert.Error(t, err)
}

func TestRecordCompletion(t *testing.T) {
	t.Run("extends a run ending yesterday", func(t *testing.T) {
		c, err := RecordCompletion([]string{"2024-01-01", "2024-01-02"}, "2024-01-03", 2, 2)
		require.NoError(t, err)
		assert.True(t, c.Recorded)
		assert.Equal(t, 3, c.Streak)
		assert.Equal(t, 3, c.BestStreak)
		assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, c.Dates)
	})

	t.Run("gap resets to one", func(t *testing.T) {
		c, err := RecordCompletion([]string{"2024-01-01"}, "2024-01-03", 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Streak)
		assert.Equal(t, 1, c.BestStreak)
	})

	t.Run("best streak never decreases", func(t *testing.T) {
		c, err := RecordCompletion([]string{"2023-12-01"}, "2024-01-03", 1, 9)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Streak)
		assert.Equal(t, 9, c.BestStreak)
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		dates := []string{"2024-01-02", "2024-01-03"}
		c, err := RecordCompletion(dates, "2024-01-03", 2, 5)
		require.NoError(t, err)
		assert.False(t, c.Recorded)
		assert.Equal(t, 2, c.Streak)
		assert.Equal(t, 5, c.BestStreak)
		assert.Equal(t, dates, c.Dates)
	})

	t.Run("first completion", func(t *testing.T) {
		c, err := RecordCompletion(nil, "2024-01-03", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Streak)
		assert.Equal(t, 1, c.BestStreak)
	})
}

func TestDailyStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"none", nil, 0},
		{"today only", []string{"2024-01-03"}, 1},
		{"missing today", []string{"2024-01-02", "2024-01-01"}, 0},
		{"three days", []string{"2024-01-01", "2024-01-03", "2024-01-02"}, 3},
		{"two entries same day", []string{"2024-01-03", "2024-01-03", "2024-01-02"}, 2},
		{"future entry skipped", []string{"2024-01-05", "2024-01-03"}, 1},
		{"stops at gap", []string{"2024-01-03", "2024-01-02", "2023-12-30"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DailyStreak(tt.dates, "2024-01-03"))
		})
	}
}

func TestAdvanceStreak(t *testing.T) {
	day := func(s string) *string { return &s }

	tests := []struct {
		name               string
		last               *string
		streak, best       int
		wantStreak, wantBe int
	}{
		{"never completed", nil, 0, 0, 1, 1},
		{"yesterday", day("2024-01-02"), 4, 4, 5, 5},
		{"same day", day("2024-01-03"), 4, 6, 4, 6},
		{"broken", day("2023-12-31"), 4, 6, 1, 6},
		{"last in the future", day("2024-01-09"), 4, 6, 1, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak, best, err := AdvanceStreak(tt.last, "2024-01-03", tt.streak, tt.best)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStreak, streak)
			assert.Equal(t, tt.wantBe, best)
		})
	}
}
