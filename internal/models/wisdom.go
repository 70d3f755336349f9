// wisdom.go
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
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WisdomFavorite bookmarks a quote from the wisdom library, once per user.
type WisdomFavorite struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index:idx_user_quote,unique" json:"user_id"`
	QuoteID   string    `gorm:"size:128;not null;index:idx_user_quote,unique" json:"quote_id"`
	CreatedAt time.Time `json:"created_at"`
	Quote     *Quote    `gorm:"-" json:"quote,omitempty"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (f *WisdomFavorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Quote is an entry of the embedded wisdom library. It is not persisted.
type Quote struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Category   string `json:"category"`
	Philosophy string `json:"philosophy"`
	Book       string `json:"book"`
	Author     string `json:"author"`
}
