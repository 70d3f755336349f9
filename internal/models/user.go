// user.go
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

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	Email               string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name                string    `gorm:"size:255;not null" json:"name"`
	PasswordHash        string    `gorm:"size:255;not null" json:"-"`
	WisdomNotifications bool      `gorm:"not null;default:false" json:"wisdom_notifications"`
	CreatedAt           time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
