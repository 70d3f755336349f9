// journal_service_test.go
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

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/localnerve/growthdb/internal/testhelpers"
	"github.com/localnerve/growthdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 10, 7, 15, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-10T07:15:00Z", want},
		{"2024-03-10T07:15:00.000Z", want},
		{"2024-03-10T09:15:00+02:00", want},
		{"2024-03-10T07:15:00", want},
		{"2024-03-10T07:15", want},
		{"2024-03-10", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	_, err := ParseTimestamp("tomorrow morning")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestJournalEntries(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	mood := "grateful"
	_, err := CreateJournalEntry(ctx, db, "u1", "2024-01-01", JournalInput{Content: "older"})
	require.NoError(t, err)
	entry, err := CreateJournalEntry(ctx, db, "u1", "2024-01-02", JournalInput{Content: "newer", Mood: &mood, Gratitude: types.StringList{"sun"}})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", entry.Date)

	entries, err := ListJournalEntries(ctx, db, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "newer", entries[0].Content)
	assert.Equal(t, []string{"sun"}, []string(entries[0].Gratitude))
	assert.Equal(t, []string{}, []string(entries[1].Gratitude))
}

func TestExercisesAreCompleted(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	exercise, err := CreateExercise(ctx, db, "u1", "2024-01-03", ExerciseInput{
		ExerciseType: "burning_desire",
		Content:      map[string]interface{}{"answer": "freedom"},
	})
	require.NoError(t, err)
	assert.True(t, exercise.Completed)

	list, err := ListExercises(ctx, db, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "freedom", list[0].Content["answer"])
}

func TestVisionBoard(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateVisionItem(ctx, db, "u1", VisionItemInput{Type: "quote", Content: "Keep going", Position: map[string]interface{}{"x": 10.0}})
	require.NoError(t, err)

	items, err := ListVisionItems(ctx, db, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "10", fmt.Sprint(items[0].Position["x"]))

	assert.ErrorIs(t, DeleteVisionItem(ctx, db, "u2", item.ID), types.ErrNotFound)
	require.NoError(t, DeleteVisionItem(ctx, db, "u1", item.ID))
}

func TestCompleteRitual(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	created, err := CompleteRitual(ctx, db, "u1", RitualInput{RitualType: "morning", CompletedAt: "2024-03-10T07:15:00Z"})
	require.NoError(t, err)
	assert.Equal(t, "Ritual completed", created.Message)
	assert.NotEmpty(t, created.ID)

	_, err = CompleteRitual(ctx, db, "u1", RitualInput{RitualType: "evening", CompletedAt: "2024-03-10T21:00:00"})
	require.NoError(t, err)

	rituals, err := ListRituals(ctx, db, "u1")
	require.NoError(t, err)
	require.Len(t, rituals, 2)
	assert.Equal(t, "evening", rituals[0].RitualType)

	_, err = CompleteRitual(ctx, db, "u1", RitualInput{RitualType: "morning", CompletedAt: "soon"})
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}
