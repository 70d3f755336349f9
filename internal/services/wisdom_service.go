// wisdom_service.go
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
	"errors"
	"fmt"

	"github.com/localnerve/growthdb/internal/models"
	"github.com/localnerve/growthdb/internal/types"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// QuoteLibrary is the read-only wisdom library, indexed by quote id.
type QuoteLibrary struct {
	quotes []models.Quote
	byID   map[string]models.Quote
}

type quoteFile struct {
	Philosophies []struct {
		Key    string `yaml:"key"`
		Name   string `yaml:"name"`
		Author string `yaml:"author"`
		Quotes []struct {
			Text     string `yaml:"text"`
			Category string `yaml:"category"`
		} `yaml:"quotes"`
	} `yaml:"philosophies"`
}

// LoadQuoteLibrary parses the YAML wisdom library. Quote ids are
// "<philosophy key>-<index within the philosophy>".
func LoadQuoteLibrary(raw []byte) (*QuoteLibrary, error) {
	var file quoteFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse wisdom library: %w", err)
	}

	lib := &QuoteLibrary{byID: make(map[string]models.Quote)}
	for _, p := range file.Philosophies {
		if p.Key == "" {
			return nil, errors.New("wisdom library philosophy without a key")
		}
		for i, q := range p.Quotes {
			quote := models.Quote{
				ID:         fmt.Sprintf("%s-%d", p.Key, i),
				Text:       q.Text,
				Category:   q.Category,
				Philosophy: p.Key,
				Book:       p.Name,
				Author:     p.Author,
			}
			if _, dup := lib.byID[quote.ID]; dup {
				return nil, fmt.Errorf("duplicate wisdom quote id %s", quote.ID)
			}
			lib.quotes = append(lib.quotes, quote)
			lib.byID[quote.ID] = quote
		}
	}
	return lib, nil
}

// Quotes returns the quotes matching the optional philosophy and category filters.
func (l *QuoteLibrary) Quotes(philosophy, category string) []models.Quote {
	out := make([]models.Quote, 0, len(l.quotes))
	for _, q := range l.quotes {
		if philosophy != "" && q.Philosophy != philosophy {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Lookup finds a quote by id.
func (l *QuoteLibrary) Lookup(id string) (models.Quote, bool) {
	q, ok := l.byID[id]
	return q, ok
}

// FavoriteInput is the body of POST /api/wisdom/favorites.
type FavoriteInput struct {
	QuoteID string `json:"quote_id" validate:"required"`
}

// NotificationInput is the body of POST /api/wisdom/notifications.
type NotificationInput struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// AddFavorite bookmarks a library quote. Unknown quotes are invalid input and
// a quote can be favorited once.
func AddFavorite(ctx context.Context, db *gorm.DB, lib *QuoteLibrary, userID string, in FavoriteInput) (Created, error) {
	if _, ok := lib.Lookup(in.QuoteID); !ok {
		return Created{}, types.Invalid("unknown quote %s", in.QuoteID)
	}

	var existing int64
	err := db.WithContext(ctx).Model(&models.WisdomFavorite{}).
		Where("user_id = ? AND quote_id = ?", userID, in.QuoteID).
		Count(&existing).Error
	if err != nil {
		return Created{}, fmt.Errorf("failed to check favorites: %w", err)
	}
	if existing > 0 {
		return Created{}, fmt.Errorf("quote already in favorites: %w", types.ErrConflict)
	}

	fav := &models.WisdomFavorite{UserID: userID, QuoteID: in.QuoteID}
	if err := db.WithContext(ctx).Create(fav).Error; err != nil {
		return Created{}, fmt.Errorf("failed to add favorite: %w", err)
	}
	return Created{Message: "Added to favorites", ID: fav.ID}, nil
}

// ListFavorites returns the user's favorites, newest first, with the quote attached.
func ListFavorites(ctx context.Context, db *gorm.DB, lib *QuoteLibrary, userID string) ([]models.WisdomFavorite, error) {
	favs, err := listOwned[models.WisdomFavorite](ctx, db, userID, "created_at desc", defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	for i := range favs {
		if q, ok := lib.Lookup(favs[i].QuoteID); ok {
			favs[i].Quote = &q
		}
	}
	return favs, nil
}

// RemoveFavorite deletes the favorite for a quote id.
func RemoveFavorite(ctx context.Context, db *gorm.DB, userID, quoteID string) error {
	result := db.WithContext(ctx).
		Where("user_id = ? AND quote_id = ?", userID, quoteID).
		Delete(&models.WisdomFavorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("favorite not found: %w", types.ErrNotFound)
	}
	return nil
}

// SetWisdomNotifications stores the user's daily wisdom notification preference.
func SetWisdomNotifications(ctx context.Context, db *gorm.DB, userID string, enabled bool) error {
	err := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("wisdom_notifications", enabled).Error
	if err != nil {
		return fmt.Errorf("failed to update notification preference: %w", err)
	}
	return nil
}
