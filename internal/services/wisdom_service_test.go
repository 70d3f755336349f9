// wisdom_service_test.go
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
	"testing"

	"github.com/localnerve/growthdb/data"
	"github.com/localnerve/growthdb/internal/models"
	"github.com/localnerve/growthdb/internal/testhelpers"
	"github.com/localnerve/growthdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadLibrary(t *testing.T) *QuoteLibrary {
	t.Helper()
	lib, err := LoadQuoteLibrary(data.WisdomQuotes)
	require.NoError(t, err)
	return lib
}

func TestQuoteLibrary(t *testing.T) {
	lib := loadLibrary(t)

	all := lib.Quotes("", "")
	assert.Len(t, all, 30)

	stoic := lib.Quotes("obstacle_is_the_way", "")
	assert.Len(t, stoic, 10)
	for _, q := range stoic {
		assert.Equal(t, "Ryan Holiday", q.Author)
		assert.Equal(t, "The Obstacle Is The Way", q.Book)
	}

	q, ok := lib.Lookup("think_and_grow_rich-0")
	require.True(t, ok)
	assert.Equal(t, "belief", q.Category)
	assert.Equal(t, "think_and_grow_rich", q.Philosophy)

	assert.Empty(t, lib.Quotes("unknown", ""))
	assert.NotNil(t, lib.Quotes("unknown", ""))

	byCategory := lib.Quotes("think_and_grow_rich", "belief")
	for _, q := range byCategory {
		assert.Equal(t, "belief", q.Category)
	}
}

func TestLoadQuoteLibraryRejects(t *testing.T) {
	_, err := LoadQuoteLibrary([]byte("philosophies: [ {name: x} ]"))
	assert.Error(t, err)

	_, err = LoadQuoteLibrary([]byte("philosophies: {"))
	assert.Error(t, err)
}

func TestFavorites(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	lib := loadLibrary(t)
	ctx := context.Background()

	created, err := AddFavorite(ctx, db, lib, "u1", FavoriteInput{QuoteID: "atomic_habits-1"})
	require.NoError(t, err)
	assert.Equal(t, "Added to favorites", created.Message)

	_, err = AddFavorite(ctx, db, lib, "u1", FavoriteInput{QuoteID: "atomic_habits-1"})
	assert.ErrorIs(t, err, types.ErrConflict)

	_, err = AddFavorite(ctx, db, lib, "u1", FavoriteInput{QuoteID: "made-up-9"})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	// another user may favorite the same quote
	_, err = AddFavorite(ctx, db, lib, "u2", FavoriteInput{QuoteID: "atomic_habits-1"})
	require.NoError(t, err)

	favs, err := ListFavorites(ctx, db, lib, "u1")
	require.NoError(t, err)
	require.Len(t, favs, 1)
	require.NotNil(t, favs[0].Quote)
	assert.Equal(t, "James Clear", favs[0].Quote.Author)

	require.NoError(t, RemoveFavorite(ctx, db, "u1", "atomic_habits-1"))
	assert.ErrorIs(t, RemoveFavorite(ctx, db, "u1", "atomic_habits-1"), types.ErrNotFound)
}

func TestSetWisdomNotifications(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	tokens := NewTokenIssuer("secret", 0)
	resp, err := Register(ctx, db, tokens, RegisterInput{Email: "a@example.com", Password: "pw", Name: "A"})
	require.NoError(t, err)

	require.NoError(t, SetWisdomNotifications(ctx, db, resp.User.ID, true))
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", resp.User.ID).Error)
	assert.True(t, user.WisdomNotifications)

	require.NoError(t, SetWisdomNotifications(ctx, db, resp.User.ID, false))
	require.NoError(t, db.First(&user, "id = ?", resp.User.ID).Error)
	assert.False(t, user.WisdomNotifications)
}
